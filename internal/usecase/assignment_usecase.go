package usecase

import (
	"context"
	"strings"
	"time"

	"artisanlink/internal/domain/entities"
	"artisanlink/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IAssignmentUseCase tracks artisan assignment, refusal bookkeeping and
// mission start.

type IAssignmentUseCase interface {
	AcceptAssignment(ctx context.Context, actor entities.Actor, requestID string) (TransitionResult, error)
	DeclineAssignment(ctx context.Context, actor entities.Actor, requestID string) (TransitionResult, error)
	StartMission(ctx context.Context, actor entities.Actor, requestID string) (TransitionResult, error)
}

type AssignmentUseCase struct {
	requests interfaces.IServiceRequestRepository
	auditor
}

var _ IAssignmentUseCase = (*AssignmentUseCase)(nil)

func NewAssignmentUseCase(
	requests interfaces.IServiceRequestRepository,
	audit interfaces.IAuditRepository,
	notifier interfaces.INotifier,
	log *zap.Logger,
) *AssignmentUseCase {
	return &AssignmentUseCase{
		requests: requests,
		auditor:  auditor{audit: audit, notifier: notifier, log: log},
	}
}

func (u *AssignmentUseCase) AcceptAssignment(ctx context.Context, actor entities.Actor, requestID string) (TransitionResult, error) {
	const cmd = entities.CommandAcceptAssignment
	if actor.Type != entities.ActorProfessional {
		return TransitionResult{}, &AuthorizationError{Reason: "only an artisan accepts an assignment"}
	}
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return TransitionResult{}, &ValidationError{Field: "request_id", Reason: "required"}
	}

	refused, err := u.audit.HasRefused(ctx, actor.ID, requestID)
	if err != nil {
		return TransitionResult{}, persistErr("check artisan refusal", err)
	}
	if refused {
		return TransitionResult{}, &AuthorizationError{Reason: "artisan previously refused this request"}
	}

	for attempt := 0; attempt < casAttempts; attempt++ {
		sr, err := u.requests.GetByID(ctx, requestID)
		if err != nil {
			return TransitionResult{}, persistErr("get service request", err)
		}
		if sr.ID == "" {
			return TransitionResult{}, ErrRequestNotFound
		}
		if !entities.Allows(cmd, sr.Status) {
			return TransitionResult{}, newInvalidState(cmd, sr.Status)
		}
		if sr.Assigned() {
			return TransitionResult{}, &InvalidStateError{Op: cmd, Current: sr.Status, Reason: "request is already assigned"}
		}

		sr.AssignedArtisanID = actor.ID
		sr.Status = entities.StatusInProgress
		sr.UpdatedAt = time.Now().UTC()

		updated, err := u.requests.Update(ctx, sr, sr.Version)
		if isVersionConflict(err) {
			continue
		}
		if err != nil {
			return TransitionResult{}, persistErr(string(cmd), err)
		}

		historyID, actionID := u.recordTransition(ctx, updated, actor, &entities.ActionRecord{
			ActorID:    actor.ID,
			ActorType:  actor.Type,
			ActionType: entities.ActionAssignmentAccepted,
		})
		return TransitionResult{Request: updated, StatusHistoryID: historyID, ActionRecordID: actionID}, nil
	}
	return TransitionResult{}, conflictErr(string(cmd))
}

// DeclineAssignment records the refusal without moving the request: it stays
// in AWAITING_ASSIGNATION for the matcher to offer elsewhere.
func (u *AssignmentUseCase) DeclineAssignment(ctx context.Context, actor entities.Actor, requestID string) (TransitionResult, error) {
	const cmd = entities.CommandDeclineAssignment
	if actor.Type != entities.ActorProfessional {
		return TransitionResult{}, &AuthorizationError{Reason: "only an artisan declines an assignment"}
	}
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return TransitionResult{}, &ValidationError{Field: "request_id", Reason: "required"}
	}

	sr, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return TransitionResult{}, persistErr("get service request", err)
	}
	if sr.ID == "" {
		return TransitionResult{}, ErrRequestNotFound
	}
	if !entities.Allows(cmd, sr.Status) {
		return TransitionResult{}, newInvalidState(cmd, sr.Status)
	}

	if err := u.audit.AppendRefusal(ctx, entities.ArtisanRefusal{
		ArtisanID:        actor.ID,
		ServiceRequestID: sr.ID,
		CreatedAt:        time.Now().UTC(),
	}); err != nil {
		return TransitionResult{}, persistErr("append artisan refusal", err)
	}

	actionID := u.recordAction(ctx, sr, &entities.ActionRecord{
		ActorID:    actor.ID,
		ActorType:  actor.Type,
		ActionType: entities.ActionAssignmentDeclined,
	})
	return TransitionResult{Request: sr, ActionRecordID: actionID}, nil
}

// StartMission is an idempotent confirmation that work has begun. It never
// changes the status beyond checking the request is IN_PROGRESS, and a
// repeated call does not append a second mission-start record.
func (u *AssignmentUseCase) StartMission(ctx context.Context, actor entities.Actor, requestID string) (TransitionResult, error) {
	const cmd = entities.CommandStartMission
	if actor.Type != entities.ActorProfessional {
		return TransitionResult{}, &AuthorizationError{Reason: "only an artisan starts a mission"}
	}
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return TransitionResult{}, &ValidationError{Field: "request_id", Reason: "required"}
	}

	sr, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return TransitionResult{}, persistErr("get service request", err)
	}
	if sr.ID == "" {
		return TransitionResult{}, ErrRequestNotFound
	}
	if sr.AssignedArtisanID != actor.ID {
		return TransitionResult{}, &AuthorizationError{Reason: "actor is not the assigned artisan"}
	}
	if !entities.Allows(cmd, sr.Status) {
		return TransitionResult{}, newInvalidState(cmd, sr.Status)
	}

	actions, err := u.audit.ListActions(ctx, sr.ID)
	if err != nil {
		return TransitionResult{}, persistErr("list actions", err)
	}
	for _, a := range actions {
		if a.ActionType == entities.ActionMissionStart && a.ActorID == actor.ID {
			return TransitionResult{Request: sr, ActionRecordID: a.ID}, nil
		}
	}

	actionID := u.recordAction(ctx, sr, &entities.ActionRecord{
		ActorID:    actor.ID,
		ActorType:  actor.Type,
		ActionType: entities.ActionMissionStart,
	})
	return TransitionResult{Request: sr, ActionRecordID: actionID}, nil
}
