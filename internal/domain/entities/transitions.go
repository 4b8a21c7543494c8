package entities

// Command names a transition operation of the lifecycle. Each command owns a
// precondition table: the exact set of statuses from which it may fire.
// Concurrent actors can race a request into an unexpected status between read
// and write, so no operation ever assumes the entity is in the status it
// "normally" would be; the table is checked inside the same
// read-validate-write unit that performs the status write.

type Command string

const (
	CommandConfirmDownPayment    Command = "confirm_down_payment"
	CommandCreateInitialEstimate Command = "create_initial_estimate"
	CommandRespondToEstimate     Command = "respond_to_estimate"
	CommandArtisanRejectEstimate Command = "artisan_reject_estimate"
	CommandCreateRevisedEstimate Command = "create_revised_estimate"
	CommandRespondToRevision     Command = "respond_to_revision"
	CommandAcceptAssignment      Command = "accept_assignment"
	CommandDeclineAssignment     Command = "decline_assignment"
	CommandStartMission          Command = "start_mission"
	CommandValidate              Command = "validate"
	CommandRaiseDispute          Command = "raise_dispute"
	CommandResolveDispute        Command = "resolve_dispute"
)

var commandPreconditions = map[Command][]RequestStatus{
	CommandConfirmDownPayment:    {StatusAwaitingPayment},
	CommandCreateInitialEstimate: {StatusAwaitingEstimate},
	CommandRespondToEstimate:     {StatusAwaitingEstimateAcceptation},
	CommandArtisanRejectEstimate: {StatusInProgress},
	CommandCreateRevisedEstimate: {StatusAwaitingEstimateRevision},
	CommandRespondToRevision:     {StatusAwaitingDualAcceptance},
	CommandAcceptAssignment:      {StatusAwaitingAssignation},
	CommandDeclineAssignment:     {StatusAwaitingAssignation},
	CommandStartMission:          {StatusInProgress},
	CommandValidate: {
		StatusInProgress,
		StatusClientValidated,
		StatusArtisanValidated,
		StatusResolved, // post-dispute re-validation
	},
	CommandRaiseDispute: {
		StatusAwaitingEstimateRevision,
		StatusAwaitingDualAcceptance,
		StatusInProgress,
		StatusClientValidated,
		StatusArtisanValidated,
		StatusDisputedByClient,
		StatusDisputedByArtisan,
	},
	CommandResolveDispute: {
		StatusDisputedByClient,
		StatusDisputedByArtisan,
		StatusDisputedByBoth,
	},
}

// Preconditions returns the statuses from which cmd may fire.
func Preconditions(cmd Command) []RequestStatus {
	return commandPreconditions[cmd]
}

// Allows reports whether cmd may fire while the request is in current.
func Allows(cmd Command, current RequestStatus) bool {
	for _, s := range commandPreconditions[cmd] {
		if s == current {
			return true
		}
	}
	return false
}
