package interfaces

import (
	"context"

	"artisanlink/internal/domain/entities"
)

// IAuditRepository abstracts the append-only log tables. All rows are
// write-once and therefore race-free: they are written after the status
// write they describe has committed, outside the critical section.
type IAuditRepository interface {
	AppendStatusHistory(ctx context.Context, entry entities.StatusHistoryEntry) (entities.StatusHistoryEntry, error)
	AppendAction(ctx context.Context, rec entities.ActionRecord) (entities.ActionRecord, error)
	AppendRefusal(ctx context.Context, ref entities.ArtisanRefusal) error

	ListStatusHistory(ctx context.Context, serviceRequestID string) ([]entities.StatusHistoryEntry, error)
	ListActions(ctx context.Context, serviceRequestID string) ([]entities.ActionRecord, error)

	// HasPassedThrough scans the timeline for a status the request has ever
	// been in. The history is canonical; current status is a projection.
	HasPassedThrough(ctx context.Context, serviceRequestID string, status entities.RequestStatus) (bool, error)

	// HasRefused reports whether the artisan already refused this request.
	HasRefused(ctx context.Context, artisanID, serviceRequestID string) (bool, error)
}
