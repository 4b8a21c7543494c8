package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus mirrors the provider-side outcome of a down payment.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// DownPayment records the provider payment that gated the
// AWAITING_PAYMENT -> AWAITING_ESTIMATE edge of a request.
//
// Storage model (DynamoDB):
//   - PK: id (the provider payment id)
//   - GSI1 (service_request_id-index): service_request_id
//
// ProviderPayloadRaw keeps the original provider body (JSON) for
// traceability/audit; ProviderPayload is an optional parsed representation.
type DownPayment struct {
	ID               string        `json:"id"`
	ServiceRequestID string        `json:"service_request_id"`
	Date             time.Time     `json:"date"`
	Status           PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
