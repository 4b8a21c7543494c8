package interfaces

import (
	"context"

	"artisanlink/internal/domain/entities"
)

// IDownPaymentRepository abstracts DynamoDB persistence for DownPayment.
type IDownPaymentRepository interface {
	Create(ctx context.Context, p entities.DownPayment) (entities.DownPayment, error)
	GetByID(ctx context.Context, id string) (entities.DownPayment, error)
	GetByRequestID(ctx context.Context, serviceRequestID string) (entities.DownPayment, error)
}
