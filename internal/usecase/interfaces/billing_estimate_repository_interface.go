package interfaces

import (
	"context"

	"artisanlink/internal/domain/entities"
)

// IBillingEstimateRepository abstracts DynamoDB persistence for
// BillingEstimate.
//
// The negotiation engine must be able to:
//   - create a new estimate (initial or revision)
//   - resolve the single currently pending estimate of a request
//   - resolve the latest estimate of a request (revision numbering)
//   - update an estimate under a version check (acceptance flags, expiry,
//     rejection bookkeeping)
type IBillingEstimateRepository interface {
	Create(ctx context.Context, e entities.BillingEstimate) (entities.BillingEstimate, error)
	GetByID(ctx context.Context, id string) (entities.BillingEstimate, error)
	GetPendingByRequestID(ctx context.Context, serviceRequestID string) (entities.BillingEstimate, error)
	GetLatestByRequestID(ctx context.Context, serviceRequestID string) (entities.BillingEstimate, error)
	ListByRequestID(ctx context.Context, serviceRequestID string) ([]entities.BillingEstimate, error)

	// Update writes e iff the stored version equals expectedVersion.
	Update(ctx context.Context, e entities.BillingEstimate, expectedVersion int) (entities.BillingEstimate, error)

	// CreateWithRequest atomically puts a new estimate and writes the
	// request in one transaction, the request side guarded by srVersion.
	// A request never moves into an estimate-awaiting status without the
	// estimate row existing.
	CreateWithRequest(ctx context.Context, e entities.BillingEstimate, sr entities.ServiceRequest, srVersion int) (entities.BillingEstimate, entities.ServiceRequest, error)
}
