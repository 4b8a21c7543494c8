package interfaces

import (
	"context"
	"errors"

	"artisanlink/internal/domain/entities"
)

// ErrVersionConflict is returned by compare-and-swap writes when the stored
// version no longer matches the expected one, i.e. a concurrent transition
// won the race. Callers re-read and re-evaluate their guard.
var ErrVersionConflict = errors.New("version conflict")

// IServiceRequestRepository abstracts DynamoDB persistence for the
// ServiceRequest aggregate.
//
// Every mutation is a version-conditioned write: the update only lands when
// the stored version equals expectedVersion, and the write bumps the version.
// This gives the read-validate-write discipline the lifecycle depends on:
// no interleaving write from a concurrent transition is ever visible between
// an operation's guard check and its status write.
type IServiceRequestRepository interface {
	Create(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)

	// Update writes sr iff the stored version equals expectedVersion.
	Update(ctx context.Context, sr entities.ServiceRequest, expectedVersion int) (entities.ServiceRequest, error)

	// UpdateWithEstimate atomically writes the request and its estimate in
	// one transaction, each guarded by its own expected version. Estimate
	// operations (dual acceptance, rejection of an accepted estimate) need
	// the pair to move together or not at all.
	UpdateWithEstimate(ctx context.Context, sr entities.ServiceRequest, srVersion int, est entities.BillingEstimate, estVersion int) (entities.ServiceRequest, entities.BillingEstimate, error)
}
