package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"artisanlink/internal/domain/entities"
	"artisanlink/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IValidationUseCase is the dual validation protocol: either party confirms
// completed work independently, and the two confirmations merge into a single
// COMPLETED outcome.

type IValidationUseCase interface {
	Validate(ctx context.Context, actor entities.Actor, requestID, notes string, photos json.RawMessage) (TransitionResult, error)
}

type ValidationUseCase struct {
	requests interfaces.IServiceRequestRepository
	auditor
}

var _ IValidationUseCase = (*ValidationUseCase)(nil)

func NewValidationUseCase(
	requests interfaces.IServiceRequestRepository,
	audit interfaces.IAuditRepository,
	notifier interfaces.INotifier,
	log *zap.Logger,
) *ValidationUseCase {
	return &ValidationUseCase{
		requests: requests,
		auditor:  auditor{audit: audit, notifier: notifier, log: log},
	}
}

func (u *ValidationUseCase) Validate(ctx context.Context, actor entities.Actor, requestID, notes string, photos json.RawMessage) (TransitionResult, error) {
	const cmd = entities.CommandValidate
	if actor.Type != entities.ActorClient && actor.Type != entities.ActorProfessional {
		return TransitionResult{}, &AuthorizationError{Reason: "only the client or the assigned artisan validates work"}
	}
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return TransitionResult{}, &ValidationError{Field: "request_id", Reason: "required"}
	}
	if len(photos) > 0 && !json.Valid(photos) {
		return TransitionResult{}, &ValidationError{Field: "photos", Reason: "must be valid JSON"}
	}

	for attempt := 0; attempt < casAttempts; attempt++ {
		sr, err := u.requests.GetByID(ctx, requestID)
		if err != nil {
			return TransitionResult{}, persistErr("get service request", err)
		}
		if sr.ID == "" {
			return TransitionResult{}, ErrRequestNotFound
		}
		if actor.Type == entities.ActorClient && sr.ClientID != actor.ID {
			return TransitionResult{}, &AuthorizationError{Reason: "actor is not the owning client"}
		}
		if actor.Type == entities.ActorProfessional && sr.AssignedArtisanID != actor.ID {
			return TransitionResult{}, &AuthorizationError{Reason: "actor is not the assigned artisan"}
		}
		if !entities.Allows(cmd, sr.Status) {
			return TransitionResult{}, newInvalidState(cmd, sr.Status)
		}

		// Idempotent per actor: a repeat validation without an intervening
		// state change neither moves the request nor appends evidence that
		// could trigger a second completion merge.
		if (sr.Status == entities.StatusClientValidated && actor.Type == entities.ActorClient) ||
			(sr.Status == entities.StatusArtisanValidated && actor.Type == entities.ActorProfessional) {
			return TransitionResult{Request: sr}, nil
		}

		newStatus, _ := entities.MergeValidation(sr.Status, actor.Type)
		sr.Status = newStatus
		sr.UpdatedAt = time.Now().UTC()

		updated, err := u.requests.Update(ctx, sr, sr.Version)
		if isVersionConflict(err) {
			continue
		}
		if err != nil {
			return TransitionResult{}, persistErr(string(cmd), err)
		}

		historyID, actionID := u.recordTransition(ctx, updated, actor, &entities.ActionRecord{
			ActorID:         actor.ID,
			ActorType:       actor.Type,
			ActionType:      entities.ActionValidation,
			CompletionNotes: notes,
			AdditionalData:  photos,
		})
		return TransitionResult{Request: updated, StatusHistoryID: historyID, ActionRecordID: actionID}, nil
	}
	return TransitionResult{}, conflictErr(string(cmd))
}
