package usecase

import (
	"context"
	"errors"
	"time"

	"artisanlink/internal/domain/entities"
	"artisanlink/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// casAttempts bounds the read-validate-write retry loop. A version conflict
// means a concurrent transition won the race; the loser re-reads and
// re-evaluates its guard against the fresh state.
const casAttempts = 3

// TransitionResult is what every transition operation returns: the request
// after the committed write plus the audit record ids created for it.
type TransitionResult struct {
	Request         entities.ServiceRequest   `json:"request"`
	Estimate        *entities.BillingEstimate `json:"estimate,omitempty"`
	StatusHistoryID string                    `json:"status_history_id,omitempty"`
	ActionRecordID  string                    `json:"action_record_id,omitempty"`
}

// auditor bundles the side effects performed after a transition commits:
// one status-history row, optionally one action record, one notification.
// All three happen outside the critical section; the status write they
// describe has already committed, so failures are logged, never rolled back.
type auditor struct {
	audit    interfaces.IAuditRepository
	notifier interfaces.INotifier
	log      *zap.Logger
}

func (a *auditor) recordTransition(ctx context.Context, sr entities.ServiceRequest, actor entities.Actor, action *entities.ActionRecord) (historyID, actionID string) {
	now := time.Now().UTC()

	entry := entities.StatusHistoryEntry{
		ID:               uuid.NewString(),
		ServiceRequestID: sr.ID,
		Status:           sr.Status,
		Timestamp:        now,
	}
	if saved, err := a.audit.AppendStatusHistory(ctx, entry); err != nil {
		a.log.Warn("status history append failed",
			zap.String("service_request_id", sr.ID),
			zap.String("status", string(sr.Status)),
			zap.Error(err))
	} else {
		historyID = saved.ID
	}

	actionID = a.recordAction(ctx, sr, action)

	if a.notifier != nil {
		if err := a.notifier.NotifyTransition(ctx, sr.ID, sr.Status, actor.Type); err != nil {
			a.log.Warn("transition notification failed",
				zap.String("service_request_id", sr.ID),
				zap.String("status", string(sr.Status)),
				zap.Error(err))
		}
	}
	return historyID, actionID
}

// recordAction appends an action record alone, for actor-intent events that
// do not change the request status (decline, informational revision
// response, mission start).
func (a *auditor) recordAction(ctx context.Context, sr entities.ServiceRequest, action *entities.ActionRecord) string {
	if action == nil {
		return ""
	}
	action.ID = uuid.NewString()
	action.ServiceRequestID = sr.ID
	action.Status = sr.Status
	action.CreatedAt = time.Now().UTC()
	saved, err := a.audit.AppendAction(ctx, *action)
	if err != nil {
		a.log.Warn("action record append failed",
			zap.String("service_request_id", sr.ID),
			zap.String("action_type", string(action.ActionType)),
			zap.Error(err))
		return ""
	}
	return saved.ID
}

func isVersionConflict(err error) bool {
	return errors.Is(err, interfaces.ErrVersionConflict)
}

func persistErr(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// conflictErr is returned when casAttempts races were all lost. Retriable:
// the critical section guarantees no partial write is observable.
func conflictErr(op string) error {
	return &PersistenceError{Op: op, Err: interfaces.ErrVersionConflict}
}
