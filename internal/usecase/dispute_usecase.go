package usecase

import (
	"context"
	"strings"
	"time"

	"artisanlink/internal/domain/entities"
	"artisanlink/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IDisputeUseCase raises, classifies and administratively resolves
// disagreements between the two parties.

type IDisputeUseCase interface {
	RaiseDispute(ctx context.Context, actor entities.Actor, requestID string, reason entities.DisputeReason, details string) (TransitionResult, error)
	ResolveDispute(ctx context.Context, actor entities.Actor, requestID, resolutionNotes string) (TransitionResult, error)
}

type DisputeUseCase struct {
	requests interfaces.IServiceRequestRepository
	auditor
}

var _ IDisputeUseCase = (*DisputeUseCase)(nil)

func NewDisputeUseCase(
	requests interfaces.IServiceRequestRepository,
	audit interfaces.IAuditRepository,
	notifier interfaces.INotifier,
	log *zap.Logger,
) *DisputeUseCase {
	return &DisputeUseCase{
		requests: requests,
		auditor:  auditor{audit: audit, notifier: notifier, log: log},
	}
}

func (u *DisputeUseCase) RaiseDispute(ctx context.Context, actor entities.Actor, requestID string, reason entities.DisputeReason, details string) (TransitionResult, error) {
	const cmd = entities.CommandRaiseDispute
	if actor.Type != entities.ActorClient && actor.Type != entities.ActorProfessional {
		return TransitionResult{}, &AuthorizationError{Reason: "only the client or the assigned artisan raises a dispute"}
	}
	if !reason.Valid() {
		return TransitionResult{}, &ValidationError{Field: "reason", Reason: "must be one of the dispute reasons"}
	}
	if strings.TrimSpace(details) == "" {
		return TransitionResult{}, &ValidationError{Field: "details", Reason: "required"}
	}
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return TransitionResult{}, &ValidationError{Field: "request_id", Reason: "required"}
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
		if (sr.Status == entities.StatusDisputedByClient && actor.Type == entities.ActorClient) ||
			(sr.Status == entities.StatusDisputedByArtisan && actor.Type == entities.ActorProfessional) {
			return TransitionResult{}, &InvalidStateError{Op: cmd, Current: sr.Status, Reason: "party already has an open dispute"}
		}

		sr.Status = entities.MergeDispute(sr.Status, actor.Type)
		sr.UpdatedAt = time.Now().UTC()

		updated, err := u.requests.Update(ctx, sr, sr.Version)
		if isVersionConflict(err) {
			continue
		}
		if err != nil {
			return TransitionResult{}, persistErr(string(cmd), err)
		}

		historyID, actionID := u.recordTransition(ctx, updated, actor, &entities.ActionRecord{
			ActorID:        actor.ID,
			ActorType:      actor.Type,
			ActionType:     entities.ActionDispute,
			DisputeReason:  reason,
			DisputeDetails: details,
		})
		return TransitionResult{Request: updated, StatusHistoryID: historyID, ActionRecordID: actionID}, nil
	}
	return TransitionResult{}, conflictErr(string(cmd))
}

// ResolveDispute returns the request to RESOLVED, a state from which
// validation or further admin action can proceed. Resolution itself does not
// decide a winner.
func (u *DisputeUseCase) ResolveDispute(ctx context.Context, actor entities.Actor, requestID, resolutionNotes string) (TransitionResult, error) {
	const cmd = entities.CommandResolveDispute
	if actor.Type != entities.ActorAdmin {
		return TransitionResult{}, &AuthorizationError{Reason: "only an admin resolves disputes"}
	}
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return TransitionResult{}, &ValidationError{Field: "request_id", Reason: "required"}
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

		sr.Status = entities.StatusResolved
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
			ActionType:      entities.ActionDisputeResolution,
			CompletionNotes: resolutionNotes,
		})
		return TransitionResult{Request: updated, StatusHistoryID: historyID, ActionRecordID: actionID}, nil
	}
	return TransitionResult{}, conflictErr(string(cmd))
}
