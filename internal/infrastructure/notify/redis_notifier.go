package notify

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"artisanlink/internal/domain/entities"
	"artisanlink/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultTransitionsChannel = "service_request.transitions"

type transitionEvent struct {
	ServiceRequestID string `json:"service_request_id"`
	Status           string `json:"status"`
	Actor            string `json:"actor"`
	OccurredAt       string `json:"occurred_at"`
}

// RedisNotifier publishes committed status transitions to a Redis channel
// consumed by the notification service.
type RedisNotifier struct {
	rdb     *redis.Client
	channel string
	log     *zap.Logger
}

var _ interfaces.INotifier = (*RedisNotifier)(nil)

// NewRedisNotifier builds a notifier from environment configuration:
//   - REDIS_ADDR (default: localhost:6379)
//   - REDIS_PASSWORD (optional)
//   - TRANSITIONS_CHANNEL (default: service_request.transitions)
func NewRedisNotifier(log *zap.Logger) *RedisNotifier {
	rdb := redis.NewClient(&redis.Options{
		Addr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	return &RedisNotifier{
		rdb:     rdb,
		channel: getenvDefault("TRANSITIONS_CHANNEL", defaultTransitionsChannel),
		log:     log,
	}
}

func (n *RedisNotifier) NotifyTransition(ctx context.Context, serviceRequestID string, newStatus entities.RequestStatus, actor entities.ActorType) error {
	payload, err := json.Marshal(transitionEvent{
		ServiceRequestID: serviceRequestID,
		Status:           string(newStatus),
		Actor:            string(actor),
		OccurredAt:       time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	if err := n.rdb.Publish(ctx, n.channel, payload).Err(); err != nil {
		n.log.Warn("transition publish failed",
			zap.String("service_request_id", serviceRequestID),
			zap.String("status", string(newStatus)),
			zap.Error(err))
		return err
	}
	return nil
}

func (n *RedisNotifier) Close() error {
	return n.rdb.Close()
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
