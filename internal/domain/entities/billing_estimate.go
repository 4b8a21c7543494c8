package entities

import "time"

// EstimateStatus represents the lifecycle of a billing estimate (devis).

type EstimateStatus string

const (
	EstimateStatusPending  EstimateStatus = "pending"
	EstimateStatusAccepted EstimateStatus = "accepted"
	EstimateStatusRejected EstimateStatus = "rejected"
	EstimateStatusExpired  EstimateStatus = "expired"
)

// MinRejectionReasonLen is the floor on an artisan's rejection reason.
// An accepted price is only reopened against a substantive justification.
const MinRejectionReasonLen = 50

// BillingEstimate is a priced proposal tied to one ServiceRequest.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (service_request_id-index): service_request_id
//   - version: compare-and-swap token, same discipline as ServiceRequest.
//
// Acceptance protocol:
//   - RevisionNumber 1 (the initial estimate) needs only the client's
//     acceptance; ArtisanAccepted stays nil.
//   - RevisionNumber > 1 needs both parties to accept independently before
//     the estimate becomes accepted. ClientAccepted/ArtisanAccepted are
//     tri-state: nil until the party responds.
//
// At most one estimate per ServiceRequest is pending at a time; the engine
// enforces this before creating a new one.
type BillingEstimate struct {
	ID               string         `json:"id"`
	ServiceRequestID string         `json:"service_request_id"`
	AuthorID         string         `json:"author_id"`
	EstimatedPrice   float64        `json:"estimated_price"`
	Description      string         `json:"description"`
	ValidUntil       time.Time      `json:"valid_until"`
	Status           EstimateStatus `json:"status"`
	RevisionNumber   int            `json:"revision_number"`

	ClientAccepted      *bool      `json:"client_accepted,omitempty"`
	ArtisanAccepted     *bool      `json:"artisan_accepted,omitempty"`
	ClientResponseDate  *time.Time `json:"client_response_date,omitempty"`
	ArtisanResponseDate *time.Time `json:"artisan_response_date,omitempty"`
	ClientResponse      string     `json:"client_response,omitempty"`

	ArtisanRejectionReason string     `json:"artisan_rejection_reason,omitempty"`
	RejectedByArtisanID    string     `json:"rejected_by_artisan_id,omitempty"`
	RejectedAt             *time.Time `json:"rejected_at,omitempty"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsRevision reports whether the estimate is under the dual-acceptance
// protocol rather than the single-party initial acceptance.
func (e BillingEstimate) IsRevision() bool {
	return e.RevisionNumber > 1
}

// ExpiredAt reports whether a pending estimate's validity window has lapsed
// at the given instant. Expiry is lazy: checked on access by every operation
// that touches the estimate, no background sweep needed for correctness.
func (e BillingEstimate) ExpiredAt(now time.Time) bool {
	return e.Status == EstimateStatusPending && !e.ValidUntil.IsZero() && e.ValidUntil.Before(now)
}

// RevisionOutcome is the merged result of the two parties' responses to a
// revised estimate.

type RevisionOutcome int

const (
	// RevisionPending: one party accepted, the other has not responded yet.
	RevisionPending RevisionOutcome = iota
	// RevisionAccepted: both parties accepted; work resumes.
	RevisionAccepted
	// RevisionReassign: one party refused after the other accepted; the
	// request goes back to assignment with the artisan released.
	RevisionReassign
	// RevisionCancelled: a party refused before the other responded, or
	// both refused.
	RevisionCancelled
)

// ResolveRevision computes the outcome of the dual-acceptance protocol as a
// pure function of both response flags. The order in which the parties
// responded is already encoded in the flags: a refusal landing after the
// other party's acceptance re-seeks an artisan, a refusal landing first
// cancels outright.
func ResolveRevision(clientAccepted, artisanAccepted *bool) RevisionOutcome {
	clientRefused := clientAccepted != nil && !*clientAccepted
	artisanRefused := artisanAccepted != nil && !*artisanAccepted

	switch {
	case clientRefused && artisanAccepted != nil && *artisanAccepted:
		return RevisionReassign
	case artisanRefused && clientAccepted != nil && *clientAccepted:
		return RevisionReassign
	case clientRefused || artisanRefused:
		return RevisionCancelled
	case clientAccepted != nil && artisanAccepted != nil:
		return RevisionAccepted
	default:
		return RevisionPending
	}
}
