package interfaces

import (
	"context"

	"artisanlink/internal/domain/entities"
)

// INotifier informs the notification collaborator of a committed transition.
// Delivery is fire-and-forget: a publish failure is logged by the caller and
// never rolls back the transition it describes.
type INotifier interface {
	NotifyTransition(ctx context.Context, serviceRequestID string, newStatus entities.RequestStatus, actor entities.ActorType) error
}
