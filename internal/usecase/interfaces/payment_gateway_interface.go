package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the external payment provider (e.g. Mercado
// Pago). The lifecycle service never computes or reconciles money; it only
// verifies the binary "down payment captured" fact that gates the
// AWAITING_PAYMENT -> AWAITING_ESTIMATE edge.
type IPaymentGateway interface {
	// GetPayment fetches the provider payment and returns its status plus
	// the raw provider response for traceability.
	GetPayment(ctx context.Context, providerPaymentID string) (providerStatus string, providerResponse json.RawMessage, err error)
}
