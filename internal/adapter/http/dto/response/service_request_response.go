package response

import (
	"time"

	"artisanlink/internal/domain/entities"
	"artisanlink/internal/usecase"
)

type ServiceRequestResponse struct {
	ID                string    `json:"id"`
	ClientID          string    `json:"client_id"`
	AssignedArtisanID string    `json:"assigned_artisan_id,omitempty"`
	Status            string    `json:"status"`
	EstimatedPrice    float64   `json:"estimated_price,omitempty"`
	DownPaymentID     string    `json:"down_payment_id,omitempty"`
	Version           int       `json:"version"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromServiceRequest(sr entities.ServiceRequest) ServiceRequestResponse {
	return ServiceRequestResponse{
		ID:                sr.ID,
		ClientID:          sr.ClientID,
		AssignedArtisanID: sr.AssignedArtisanID,
		Status:            string(sr.Status),
		EstimatedPrice:    sr.EstimatedPrice,
		DownPaymentID:     sr.DownPaymentID,
		Version:           sr.Version,
		CreatedAt:         sr.CreatedAt,
		UpdatedAt:         sr.UpdatedAt,
	}
}

// TransitionResponse is the envelope every mutating endpoint returns: the
// request after the transition, plus the estimate when the operation touched
// one.
type TransitionResponse struct {
	Request         ServiceRequestResponse `json:"request"`
	Estimate        *EstimateResponse      `json:"estimate,omitempty"`
	StatusHistoryID string                 `json:"status_history_id,omitempty"`
	ActionRecordID  string                 `json:"action_record_id,omitempty"`
}

func FromTransition(res usecase.TransitionResult) TransitionResponse {
	out := TransitionResponse{
		Request:         FromServiceRequest(res.Request),
		StatusHistoryID: res.StatusHistoryID,
		ActionRecordID:  res.ActionRecordID,
	}
	if res.Estimate != nil {
		e := FromBillingEstimate(*res.Estimate)
		out.Estimate = &e
	}
	return out
}

type StatusHistoryResponse struct {
	ID               string    `json:"id"`
	ServiceRequestID string    `json:"service_request_id"`
	Status           string    `json:"status"`
	Timestamp        time.Time `json:"timestamp"`
}

func FromStatusHistory(entries []entities.StatusHistoryEntry) []StatusHistoryResponse {
	out := make([]StatusHistoryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, StatusHistoryResponse{
			ID:               e.ID,
			ServiceRequestID: e.ServiceRequestID,
			Status:           string(e.Status),
			Timestamp:        e.Timestamp,
		})
	}
	return out
}

type ActionRecordResponse struct {
	ID               string    `json:"id"`
	ServiceRequestID string    `json:"service_request_id"`
	ActorID          string    `json:"actor_id"`
	ActorType        string    `json:"actor_type"`
	ActionType       string    `json:"action_type"`
	Status           string    `json:"status"`
	DisputeReason    string    `json:"dispute_reason,omitempty"`
	DisputeDetails   string    `json:"dispute_details,omitempty"`
	CompletionNotes  string    `json:"completion_notes,omitempty"`
	AdditionalData   string    `json:"additional_data,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func FromActionRecords(records []entities.ActionRecord) []ActionRecordResponse {
	out := make([]ActionRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, ActionRecordResponse{
			ID:               r.ID,
			ServiceRequestID: r.ServiceRequestID,
			ActorID:          r.ActorID,
			ActorType:        string(r.ActorType),
			ActionType:       string(r.ActionType),
			Status:           string(r.Status),
			DisputeReason:    string(r.DisputeReason),
			DisputeDetails:   r.DisputeDetails,
			CompletionNotes:  r.CompletionNotes,
			AdditionalData:   string(r.AdditionalData),
			CreatedAt:        r.CreatedAt,
		})
	}
	return out
}
