package request

import "strings"

// CreateServiceRequestRequest opens a new service request for the calling
// client. The matching and scheduling details live in the marketplace core;
// this service only needs to know whether a down payment gates estimation.
type CreateServiceRequestRequest struct {
	DownPaymentRequired bool `json:"down_payment_required"`
}

// ConfirmDownPaymentRequest confirms the client's down payment against the
// payment provider before the request is released for estimation.
type ConfirmDownPaymentRequest struct {
	ProviderPaymentID string `json:"provider_payment_id" binding:"required"`
}

func (r ConfirmDownPaymentRequest) ResolveProviderPaymentID() string {
	return strings.TrimSpace(r.ProviderPaymentID)
}
