package entities

import (
	"encoding/json"
	"time"
)

// StatusHistoryEntry is one immutable row per status transition. The history
// is the canonical timeline of a request; ServiceRequest.Status is a cached
// projection of the most recent entry. Entries are never updated or deleted.
type StatusHistoryEntry struct {
	ID               string        `json:"id"`
	ServiceRequestID string        `json:"service_request_id"`
	Status           RequestStatus `json:"status"`
	Timestamp        time.Time     `json:"timestamp"`
}

// ActionType classifies the actor intent behind an ActionRecord.

type ActionType string

const (
	ActionEstimateAcceptance  ActionType = "estimate_acceptance"
	ActionEstimateRefusal     ActionType = "estimate_refusal"
	ActionEstimateRejection   ActionType = "estimate_rejection"
	ActionRevisionResponse    ActionType = "revision_response"
	ActionAssignmentAccepted  ActionType = "assignment_acceptance"
	ActionAssignmentDeclined  ActionType = "assignment_refusal"
	ActionMissionStart        ActionType = "mission_start"
	ActionValidation          ActionType = "validation"
	ActionDispute             ActionType = "dispute"
	ActionDisputeResolution   ActionType = "dispute_resolution"
	ActionPaymentConfirmation ActionType = "payment_confirmation"
)

// DisputeReason is the closed enumeration accepted by RaiseDispute.

type DisputeReason string

const (
	DisputeReasonWorkQuality    DisputeReason = "work_quality"
	DisputeReasonIncompleteWork DisputeReason = "incomplete_work"
	DisputeReasonNoShow         DisputeReason = "no_show"
	DisputeReasonPricing        DisputeReason = "pricing_disagreement"
	DisputeReasonBehavior       DisputeReason = "behavior"
	DisputeReasonDamage         DisputeReason = "damage"
	DisputeReasonOther          DisputeReason = "other"
)

func (r DisputeReason) Valid() bool {
	switch r {
	case DisputeReasonWorkQuality, DisputeReasonIncompleteWork, DisputeReasonNoShow,
		DisputeReasonPricing, DisputeReasonBehavior, DisputeReasonDamage, DisputeReasonOther:
		return true
	}
	return false
}

// ActionRecord is one immutable row per actor-intent event. It is the durable
// evidence admin review and dispute adjudication rely on; never mutated.
//
// AdditionalData keeps caller-provided references (photo ids etc.) as an
// opaque JSON blob; file storage itself lives outside this service.
type ActionRecord struct {
	ID               string          `json:"id"`
	ServiceRequestID string          `json:"service_request_id"`
	ActorID          string          `json:"actor_id"`
	ActorType        ActorType       `json:"actor_type"`
	ActionType       ActionType      `json:"action_type"`
	Status           RequestStatus   `json:"status"`
	DisputeReason    DisputeReason   `json:"dispute_reason,omitempty"`
	DisputeDetails   string          `json:"dispute_details,omitempty"`
	CompletionNotes  string          `json:"completion_notes,omitempty"`
	AdditionalData   json.RawMessage `json:"additional_data,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ArtisanRefusal is an append-only pairing written whenever an artisan
// declines an assignment or refuses a revised estimate. The external matcher
// consults it to avoid re-offering the same request to that artisan.
type ArtisanRefusal struct {
	ArtisanID        string    `json:"artisan_id"`
	ServiceRequestID string    `json:"service_request_id"`
	CreatedAt        time.Time `json:"created_at"`
}
