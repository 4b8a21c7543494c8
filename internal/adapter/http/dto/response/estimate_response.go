package response

import (
	"time"

	"artisanlink/internal/domain/entities"
)

type EstimateResponse struct {
	ID               string    `json:"id"`
	ServiceRequestID string    `json:"service_request_id"`
	AuthorID         string    `json:"author_id"`
	Price            float64   `json:"price"`
	Description      string    `json:"description,omitempty"`
	ValidUntil       time.Time `json:"valid_until"`
	Status           string    `json:"status"`
	RevisionNumber   int       `json:"revision_number"`

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

func FromBillingEstimate(e entities.BillingEstimate) EstimateResponse {
	return EstimateResponse{
		ID:               e.ID,
		ServiceRequestID: e.ServiceRequestID,
		AuthorID:         e.AuthorID,
		Price:            e.EstimatedPrice,
		Description:      e.Description,
		ValidUntil:       e.ValidUntil,
		Status:           string(e.Status),
		RevisionNumber:   e.RevisionNumber,

		ClientAccepted:      e.ClientAccepted,
		ArtisanAccepted:     e.ArtisanAccepted,
		ClientResponseDate:  e.ClientResponseDate,
		ArtisanResponseDate: e.ArtisanResponseDate,
		ClientResponse:      e.ClientResponse,

		ArtisanRejectionReason: e.ArtisanRejectionReason,
		RejectedByArtisanID:    e.RejectedByArtisanID,
		RejectedAt:             e.RejectedAt,

		Version:   e.Version,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func FromBillingEstimates(estimates []entities.BillingEstimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(estimates))
	for _, e := range estimates {
		out = append(out, FromBillingEstimate(e))
	}
	return out
}
