package entities

import "time"

// RequestStatus is the lifecycle status of a ServiceRequest.
//
// Domain notes:
//   - The lifecycle service is the source of truth for request state.
//   - Status only changes through the guarded transition commands in
//     transitions.go; no call site writes the field directly.

type RequestStatus string

const (
	StatusAwaitingPayment             RequestStatus = "AWAITING_PAYMENT"
	StatusAwaitingEstimate            RequestStatus = "AWAITING_ESTIMATE"
	StatusAwaitingEstimateAcceptation RequestStatus = "AWAITING_ESTIMATE_ACCEPTATION"
	StatusAwaitingEstimateRevision    RequestStatus = "AWAITING_ESTIMATE_REVISION"
	StatusAwaitingDualAcceptance      RequestStatus = "AWAITING_DUAL_ACCEPTANCE"
	StatusAwaitingAssignation         RequestStatus = "AWAITING_ASSIGNATION"
	StatusInProgress                  RequestStatus = "IN_PROGRESS"
	StatusClientValidated             RequestStatus = "CLIENT_VALIDATED"
	StatusArtisanValidated            RequestStatus = "ARTISAN_VALIDATED"
	StatusCompleted                   RequestStatus = "COMPLETED"
	StatusDisputedByClient            RequestStatus = "DISPUTED_BY_CLIENT"
	StatusDisputedByArtisan           RequestStatus = "DISPUTED_BY_ARTISAN"
	StatusDisputedByBoth              RequestStatus = "DISPUTED_BY_BOTH"
	StatusResolved                    RequestStatus = "RESOLVED"
	StatusCancelled                   RequestStatus = "CANCELLED"
)

// IsTerminal reports whether no further transition can leave the status.
// RESOLVED still admits Validate (post-dispute re-validation) but nothing
// else; the per-command precondition tables are authoritative.
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusResolved:
		return true
	}
	return false
}

// IsDisputed reports whether at least one party has an open dispute.
func (s RequestStatus) IsDisputed() bool {
	switch s {
	case StatusDisputedByClient, StatusDisputedByArtisan, StatusDisputedByBoth:
		return true
	}
	return false
}

// ActorType identifies which side of the marketplace issued a command.

type ActorType string

const (
	ActorClient       ActorType = "client"
	ActorProfessional ActorType = "professional"
	ActorAdmin        ActorType = "admin"
)

func (a ActorType) Valid() bool {
	switch a {
	case ActorClient, ActorProfessional, ActorAdmin:
		return true
	}
	return false
}

// Actor is the identity attached to every transition command. Authentication
// happens upstream; the lifecycle service only checks the relationship between
// the actor and the request (owning client, assigned artisan, admin).
type Actor struct {
	ID   string
	Type ActorType
}

// ServiceRequest is the aggregate root of the lifecycle.
//
// Storage model (DynamoDB):
//   - PK: id
//   - version: monotonically increasing int used as the compare-and-swap
//     token for every status write (see the repository layer).
//
// AssignedArtisanID is empty until an artisan accepts the assignment and is
// cleared again when a revision refusal sends the request back to
// AWAITING_ASSIGNATION.
type ServiceRequest struct {
	ID                string        `json:"id"`
	ClientID          string        `json:"client_id"`
	AssignedArtisanID string        `json:"assigned_artisan_id,omitempty"`
	Status            RequestStatus `json:"status"`
	EstimatedPrice    float64       `json:"estimated_price,omitempty"`
	DownPaymentID     string        `json:"down_payment_id,omitempty"`
	Version           int           `json:"version"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// Assigned reports whether an artisan currently holds the request.
func (r ServiceRequest) Assigned() bool {
	return r.AssignedArtisanID != ""
}

// MergeValidation computes the status that results from one party confirming
// completed work while the request is in status current. The second return
// value reports whether this confirmation is the completing one.
//
// The merge is a pure function of the current status and the acting party;
// neither party's code path ever branches on the other party's path.
func MergeValidation(current RequestStatus, actor ActorType) (RequestStatus, bool) {
	switch {
	case current == StatusClientValidated && actor == ActorProfessional:
		return StatusCompleted, true
	case current == StatusArtisanValidated && actor == ActorClient:
		return StatusCompleted, true
	case actor == ActorClient:
		return StatusClientValidated, false
	default:
		return StatusArtisanValidated, false
	}
}

// MergeDispute computes the status that results from one party raising a
// dispute while the request is in status current.
func MergeDispute(current RequestStatus, actor ActorType) RequestStatus {
	if current == StatusDisputedByClient && actor == ActorProfessional {
		return StatusDisputedByBoth
	}
	if current == StatusDisputedByArtisan && actor == ActorClient {
		return StatusDisputedByBoth
	}
	if actor == ActorClient {
		return StatusDisputedByClient
	}
	return StatusDisputedByArtisan
}
