package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllows(t *testing.T) {
	cases := []struct {
		name    string
		cmd     Command
		current RequestStatus
		want    bool
	}{
		{"confirm payment from awaiting payment", CommandConfirmDownPayment, StatusAwaitingPayment, true},
		{"confirm payment from awaiting estimate", CommandConfirmDownPayment, StatusAwaitingEstimate, false},
		{"initial estimate from awaiting estimate", CommandCreateInitialEstimate, StatusAwaitingEstimate, true},
		{"initial estimate from in progress", CommandCreateInitialEstimate, StatusInProgress, false},
		{"respond to estimate from acceptation", CommandRespondToEstimate, StatusAwaitingEstimateAcceptation, true},
		{"respond to estimate from dual acceptance", CommandRespondToEstimate, StatusAwaitingDualAcceptance, false},
		{"artisan reject from in progress", CommandArtisanRejectEstimate, StatusInProgress, true},
		{"artisan reject from assignation", CommandArtisanRejectEstimate, StatusAwaitingAssignation, false},
		{"revised estimate from revision", CommandCreateRevisedEstimate, StatusAwaitingEstimateRevision, true},
		{"revised estimate from awaiting estimate", CommandCreateRevisedEstimate, StatusAwaitingEstimate, false},
		{"respond to revision from dual acceptance", CommandRespondToRevision, StatusAwaitingDualAcceptance, true},
		{"accept assignment from assignation", CommandAcceptAssignment, StatusAwaitingAssignation, true},
		{"accept assignment from in progress", CommandAcceptAssignment, StatusInProgress, false},
		{"decline assignment from assignation", CommandDeclineAssignment, StatusAwaitingAssignation, true},
		{"start mission from in progress", CommandStartMission, StatusInProgress, true},
		{"validate from in progress", CommandValidate, StatusInProgress, true},
		{"validate from client validated", CommandValidate, StatusClientValidated, true},
		{"validate from artisan validated", CommandValidate, StatusArtisanValidated, true},
		{"validate from resolved", CommandValidate, StatusResolved, true},
		{"validate from completed", CommandValidate, StatusCompleted, false},
		{"validate from cancelled", CommandValidate, StatusCancelled, false},
		{"dispute from in progress", CommandRaiseDispute, StatusInProgress, true},
		{"dispute from revision", CommandRaiseDispute, StatusAwaitingEstimateRevision, true},
		{"dispute from dual acceptance", CommandRaiseDispute, StatusAwaitingDualAcceptance, true},
		{"dispute from client validated", CommandRaiseDispute, StatusClientValidated, true},
		{"cross dispute from disputed by client", CommandRaiseDispute, StatusDisputedByClient, true},
		{"cross dispute from disputed by artisan", CommandRaiseDispute, StatusDisputedByArtisan, true},
		{"dispute from disputed by both", CommandRaiseDispute, StatusDisputedByBoth, false},
		{"dispute from resolved", CommandRaiseDispute, StatusResolved, false},
		{"dispute from completed", CommandRaiseDispute, StatusCompleted, false},
		{"dispute from cancelled", CommandRaiseDispute, StatusCancelled, false},
		{"resolve from disputed by client", CommandResolveDispute, StatusDisputedByClient, true},
		{"resolve from disputed by artisan", CommandResolveDispute, StatusDisputedByArtisan, true},
		{"resolve from disputed by both", CommandResolveDispute, StatusDisputedByBoth, true},
		{"resolve from in progress", CommandResolveDispute, StatusInProgress, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Allows(tc.cmd, tc.current))
		})
	}
}

func TestNoCommandLeavesTerminalStates(t *testing.T) {
	commands := []Command{
		CommandConfirmDownPayment,
		CommandCreateInitialEstimate,
		CommandRespondToEstimate,
		CommandArtisanRejectEstimate,
		CommandCreateRevisedEstimate,
		CommandRespondToRevision,
		CommandAcceptAssignment,
		CommandDeclineAssignment,
		CommandStartMission,
		CommandRaiseDispute,
		CommandResolveDispute,
	}

	for _, cmd := range commands {
		assert.False(t, Allows(cmd, StatusCompleted), "%s must not fire from COMPLETED", cmd)
		assert.False(t, Allows(cmd, StatusCancelled), "%s must not fire from CANCELLED", cmd)
	}

	// RESOLVED admits validation only.
	for _, cmd := range commands {
		assert.False(t, Allows(cmd, StatusResolved), "%s must not fire from RESOLVED", cmd)
	}
	assert.True(t, Allows(CommandValidate, StatusResolved))
}

func TestPreconditions(t *testing.T) {
	require.ElementsMatch(t,
		[]RequestStatus{StatusDisputedByClient, StatusDisputedByArtisan, StatusDisputedByBoth},
		Preconditions(CommandResolveDispute))
	require.Equal(t, []RequestStatus{StatusAwaitingPayment}, Preconditions(CommandConfirmDownPayment))
}
