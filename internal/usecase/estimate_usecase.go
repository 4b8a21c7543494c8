package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"artisanlink/internal/domain/entities"
	"artisanlink/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IEstimateUseCase is the estimate negotiation engine: it owns the
// pending -> accepted/rejected/expired lifecycle of billing estimates,
// including the revision and dual-acceptance sub-protocol.

type IEstimateUseCase interface {
	CreateInitialEstimate(ctx context.Context, actor entities.Actor, requestID string, price float64, description string, validUntil time.Time) (TransitionResult, error)
	RespondToEstimate(ctx context.Context, actor entities.Actor, requestID, estimateID string, accept bool, response string) (TransitionResult, error)
	ArtisanRejectEstimate(ctx context.Context, actor entities.Actor, requestID, estimateID, reason string) (TransitionResult, error)
	CreateRevisedEstimate(ctx context.Context, actor entities.Actor, requestID string, price float64, description string, validUntil time.Time) (TransitionResult, error)
	RespondToRevision(ctx context.Context, actor entities.Actor, requestID, estimateID string, accept bool, response string) (TransitionResult, error)
}

type EstimateUseCase struct {
	requests  interfaces.IServiceRequestRepository
	estimates interfaces.IBillingEstimateRepository
	auditor
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	requests interfaces.IServiceRequestRepository,
	estimates interfaces.IBillingEstimateRepository,
	audit interfaces.IAuditRepository,
	notifier interfaces.INotifier,
	log *zap.Logger,
) *EstimateUseCase {
	return &EstimateUseCase{
		requests:  requests,
		estimates: estimates,
		auditor:   auditor{audit: audit, notifier: notifier, log: log},
	}
}

func (u *EstimateUseCase) CreateInitialEstimate(ctx context.Context, actor entities.Actor, requestID string, price float64, description string, validUntil time.Time) (TransitionResult, error) {
	if actor.Type != entities.ActorAdmin {
		return TransitionResult{}, &AuthorizationError{Reason: "only an admin can create estimates"}
	}
	if err := validateEstimatePayload(price, description, validUntil); err != nil {
		return TransitionResult{}, err
	}

	return u.createEstimate(ctx, actor, requestID, price, description, validUntil, entities.CommandCreateInitialEstimate)
}

func (u *EstimateUseCase) CreateRevisedEstimate(ctx context.Context, actor entities.Actor, requestID string, price float64, description string, validUntil time.Time) (TransitionResult, error) {
	if actor.Type != entities.ActorAdmin {
		return TransitionResult{}, &AuthorizationError{Reason: "only an admin can create estimates"}
	}
	if err := validateEstimatePayload(price, description, validUntil); err != nil {
		return TransitionResult{}, err
	}

	return u.createEstimate(ctx, actor, requestID, price, description, validUntil, entities.CommandCreateRevisedEstimate)
}

// createEstimate is the shared read-validate-write loop for both create
// operations. The driving command decides the precondition, the revision
// number and the destination status.
func (u *EstimateUseCase) createEstimate(ctx context.Context, actor entities.Actor, requestID string, price float64, description string, validUntil time.Time, cmd entities.Command) (TransitionResult, error) {
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

		// At most one pending estimate per request, ever.
		if pending, err := u.estimates.GetPendingByRequestID(ctx, requestID); err != nil {
			return TransitionResult{}, persistErr("get pending estimate", err)
		} else if pending.ID != "" && !u.expireIfDue(ctx, &pending) {
			return TransitionResult{}, &InvalidStateError{Op: cmd, Current: sr.Status, Reason: "an estimate is already pending for this request"}
		}

		revision := 1
		newStatus := entities.StatusAwaitingEstimateAcceptation
		if cmd == entities.CommandCreateRevisedEstimate {
			// A revision only makes sense once work has actually started;
			// the canonical timeline decides, not the cached status.
			passed, err := u.audit.HasPassedThrough(ctx, requestID, entities.StatusInProgress)
			if err != nil {
				return TransitionResult{}, persistErr("scan status history", err)
			}
			if !passed {
				return TransitionResult{}, &InvalidStateError{Op: cmd, Current: sr.Status, Reason: "request has never been in progress"}
			}

			latest, err := u.estimates.GetLatestByRequestID(ctx, requestID)
			if err != nil {
				return TransitionResult{}, persistErr("get latest estimate", err)
			}
			if latest.ID == "" {
				return TransitionResult{}, ErrEstimateNotFound
			}
			revision = latest.RevisionNumber + 1
			newStatus = entities.StatusAwaitingDualAcceptance
		}

		now := time.Now().UTC()
		est := entities.BillingEstimate{
			ID:               uuid.NewString(),
			ServiceRequestID: requestID,
			AuthorID:         actor.ID,
			EstimatedPrice:   price,
			Description:      description,
			ValidUntil:       validUntil,
			Status:           entities.EstimateStatusPending,
			RevisionNumber:   revision,
			Version:          1,
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		sr.Status = newStatus
		sr.UpdatedAt = now

		created, updated, err := u.estimates.CreateWithRequest(ctx, est, sr, sr.Version)
		if isVersionConflict(err) {
			continue
		}
		if err != nil {
			return TransitionResult{}, persistErr("create estimate", err)
		}

		historyID, actionID := u.recordTransition(ctx, updated, actor, nil)
		return TransitionResult{Request: updated, Estimate: &created, StatusHistoryID: historyID, ActionRecordID: actionID}, nil
	}
	return TransitionResult{}, conflictErr(string(cmd))
}

func (u *EstimateUseCase) RespondToEstimate(ctx context.Context, actor entities.Actor, requestID, estimateID string, accept bool, response string) (TransitionResult, error) {
	const cmd = entities.CommandRespondToEstimate
	if actor.Type != entities.ActorClient {
		return TransitionResult{}, &AuthorizationError{Reason: "only the client responds to an initial estimate"}
	}

	for attempt := 0; attempt < casAttempts; attempt++ {
		sr, est, err := u.loadPair(ctx, requestID, estimateID)
		if err != nil {
			return TransitionResult{}, err
		}
		if sr.ClientID != actor.ID {
			return TransitionResult{}, &AuthorizationError{Reason: "actor is not the owning client"}
		}
		if !entities.Allows(cmd, sr.Status) {
			return TransitionResult{}, newInvalidState(cmd, sr.Status)
		}
		if est.IsRevision() {
			return TransitionResult{}, &InvalidStateError{Op: cmd, Current: sr.Status, Reason: "estimate is a revision; use the revision response"}
		}
		if u.expireIfDue(ctx, &est) {
			return TransitionResult{}, &InvalidStateError{Op: cmd, Current: sr.Status, Reason: "estimate has expired"}
		}
		if est.Status != entities.EstimateStatusPending {
			return TransitionResult{}, &InvalidStateError{Op: cmd, Current: sr.Status, Reason: "estimate is not pending"}
		}

		now := time.Now().UTC()
		accepted := accept
		est.ClientAccepted = &accepted
		est.ClientResponse = response
		est.ClientResponseDate = &now
		est.UpdatedAt = now

		actionType := entities.ActionEstimateAcceptance
		if accept {
			est.Status = entities.EstimateStatusAccepted
			sr.Status = entities.StatusAwaitingAssignation
			sr.EstimatedPrice = est.EstimatedPrice
		} else {
			est.Status = entities.EstimateStatusRejected
			sr.Status = entities.StatusCancelled
			actionType = entities.ActionEstimateRefusal
		}
		sr.UpdatedAt = now

		updatedSR, updatedEst, err := u.requests.UpdateWithEstimate(ctx, sr, sr.Version, est, est.Version)
		if isVersionConflict(err) {
			continue
		}
		if err != nil {
			return TransitionResult{}, persistErr(string(cmd), err)
		}

		historyID, actionID := u.recordTransition(ctx, updatedSR, actor, &entities.ActionRecord{
			ActorID:    actor.ID,
			ActorType:  actor.Type,
			ActionType: actionType,
		})
		return TransitionResult{Request: updatedSR, Estimate: &updatedEst, StatusHistoryID: historyID, ActionRecordID: actionID}, nil
	}
	return TransitionResult{}, conflictErr(string(cmd))
}

func (u *EstimateUseCase) ArtisanRejectEstimate(ctx context.Context, actor entities.Actor, requestID, estimateID, reason string) (TransitionResult, error) {
	const cmd = entities.CommandArtisanRejectEstimate
	if actor.Type != entities.ActorProfessional {
		return TransitionResult{}, &AuthorizationError{Reason: "only the assigned artisan rejects an accepted estimate"}
	}
	if len(strings.TrimSpace(reason)) < entities.MinRejectionReasonLen {
		return TransitionResult{}, &ValidationError{Field: "reason", Reason: "a substantive justification of at least 50 characters is required"}
	}

	for attempt := 0; attempt < casAttempts; attempt++ {
		sr, est, err := u.loadPair(ctx, requestID, estimateID)
		if err != nil {
			return TransitionResult{}, err
		}
		if sr.AssignedArtisanID != actor.ID {
			return TransitionResult{}, &AuthorizationError{Reason: "actor is not the assigned artisan"}
		}
		if !entities.Allows(cmd, sr.Status) {
			return TransitionResult{}, newInvalidState(cmd, sr.Status)
		}
		if est.Status == entities.EstimateStatusRejected {
			return TransitionResult{}, &InvalidStateError{Op: cmd, Current: sr.Status, Reason: "estimate is already rejected"}
		}
		if est.Status != entities.EstimateStatusAccepted {
			return TransitionResult{}, &InvalidStateError{Op: cmd, Current: sr.Status, Reason: "only an accepted estimate can be rejected"}
		}

		now := time.Now().UTC()
		est.Status = entities.EstimateStatusRejected
		est.ArtisanRejectionReason = reason
		est.RejectedByArtisanID = actor.ID
		est.RejectedAt = &now
		est.UpdatedAt = now

		sr.Status = entities.StatusAwaitingEstimateRevision
		sr.UpdatedAt = now

		updatedSR, updatedEst, err := u.requests.UpdateWithEstimate(ctx, sr, sr.Version, est, est.Version)
		if isVersionConflict(err) {
			continue
		}
		if err != nil {
			return TransitionResult{}, persistErr(string(cmd), err)
		}

		historyID, actionID := u.recordTransition(ctx, updatedSR, actor, &entities.ActionRecord{
			ActorID:    actor.ID,
			ActorType:  actor.Type,
			ActionType: entities.ActionEstimateRejection,
		})
		return TransitionResult{Request: updatedSR, Estimate: &updatedEst, StatusHistoryID: historyID, ActionRecordID: actionID}, nil
	}
	return TransitionResult{}, conflictErr(string(cmd))
}

func (u *EstimateUseCase) RespondToRevision(ctx context.Context, actor entities.Actor, requestID, estimateID string, accept bool, response string) (TransitionResult, error) {
	const cmd = entities.CommandRespondToRevision
	if actor.Type != entities.ActorClient && actor.Type != entities.ActorProfessional {
		return TransitionResult{}, &AuthorizationError{Reason: "only the client or the assigned artisan responds to a revision"}
	}

	for attempt := 0; attempt < casAttempts; attempt++ {
		sr, est, err := u.loadPair(ctx, requestID, estimateID)
		if err != nil {
			return TransitionResult{}, err
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
		if !est.IsRevision() {
			return TransitionResult{}, &InvalidStateError{Op: cmd, Current: sr.Status, Reason: "estimate is not a revision"}
		}
		if u.expireIfDue(ctx, &est) {
			return TransitionResult{}, &InvalidStateError{Op: cmd, Current: sr.Status, Reason: "estimate has expired"}
		}
		if est.Status != entities.EstimateStatusPending {
			return TransitionResult{}, &InvalidStateError{Op: cmd, Current: sr.Status, Reason: "estimate is not pending"}
		}

		now := time.Now().UTC()
		accepted := accept
		if actor.Type == entities.ActorClient {
			if est.ClientAccepted != nil {
				return TransitionResult{}, &InvalidStateError{Op: cmd, Current: sr.Status, Reason: "client already responded to this revision"}
			}
			est.ClientAccepted = &accepted
			est.ClientResponse = response
			est.ClientResponseDate = &now
		} else {
			if est.ArtisanAccepted != nil {
				return TransitionResult{}, &InvalidStateError{Op: cmd, Current: sr.Status, Reason: "artisan already responded to this revision"}
			}
			est.ArtisanAccepted = &accepted
			est.ArtisanResponseDate = &now
		}
		est.UpdatedAt = now

		refusingArtisanID := ""
		if actor.Type == entities.ActorProfessional && !accept {
			refusingArtisanID = actor.ID
		}

		outcome := entities.ResolveRevision(est.ClientAccepted, est.ArtisanAccepted)
		action := &entities.ActionRecord{
			ActorID:        actor.ID,
			ActorType:      actor.Type,
			ActionType:     entities.ActionRevisionResponse,
			AdditionalData: revisionResponseData(accept, outcome),
		}

		if outcome == entities.RevisionPending {
			// One party accepted, the other has not responded yet.
			// Informational only: the estimate records the flag, the
			// request does not move.
			updatedEst, err := u.estimates.Update(ctx, est, est.Version)
			if isVersionConflict(err) {
				continue
			}
			if err != nil {
				return TransitionResult{}, persistErr(string(cmd), err)
			}
			actionID := u.recordAction(ctx, sr, action)
			return TransitionResult{Request: sr, Estimate: &updatedEst, ActionRecordID: actionID}, nil
		}

		switch outcome {
		case entities.RevisionAccepted:
			est.Status = entities.EstimateStatusAccepted
			sr.Status = entities.StatusInProgress
			sr.EstimatedPrice = est.EstimatedPrice
		case entities.RevisionReassign:
			est.Status = entities.EstimateStatusRejected
			sr.Status = entities.StatusAwaitingAssignation
			sr.AssignedArtisanID = ""
		case entities.RevisionCancelled:
			est.Status = entities.EstimateStatusRejected
			sr.Status = entities.StatusCancelled
		}
		sr.UpdatedAt = now

		updatedSR, updatedEst, err := u.requests.UpdateWithEstimate(ctx, sr, sr.Version, est, est.Version)
		if isVersionConflict(err) {
			continue
		}
		if err != nil {
			return TransitionResult{}, persistErr(string(cmd), err)
		}

		if refusingArtisanID != "" {
			if err := u.audit.AppendRefusal(ctx, entities.ArtisanRefusal{
				ArtisanID:        refusingArtisanID,
				ServiceRequestID: updatedSR.ID,
				CreatedAt:        now,
			}); err != nil {
				u.log.Warn("artisan refusal append failed",
					zap.String("service_request_id", updatedSR.ID),
					zap.String("artisan_id", refusingArtisanID),
					zap.Error(err))
			}
		}

		historyID, actionID := u.recordTransition(ctx, updatedSR, actor, action)
		return TransitionResult{Request: updatedSR, Estimate: &updatedEst, StatusHistoryID: historyID, ActionRecordID: actionID}, nil
	}
	return TransitionResult{}, conflictErr(string(cmd))
}

// loadPair fetches the request and estimate and checks they belong together.
func (u *EstimateUseCase) loadPair(ctx context.Context, requestID, estimateID string) (entities.ServiceRequest, entities.BillingEstimate, error) {
	requestID = strings.TrimSpace(requestID)
	estimateID = strings.TrimSpace(estimateID)
	if requestID == "" {
		return entities.ServiceRequest{}, entities.BillingEstimate{}, &ValidationError{Field: "request_id", Reason: "required"}
	}
	if estimateID == "" {
		return entities.ServiceRequest{}, entities.BillingEstimate{}, &ValidationError{Field: "estimate_id", Reason: "required"}
	}

	sr, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return entities.ServiceRequest{}, entities.BillingEstimate{}, persistErr("get service request", err)
	}
	if sr.ID == "" {
		return entities.ServiceRequest{}, entities.BillingEstimate{}, ErrRequestNotFound
	}

	est, err := u.estimates.GetByID(ctx, estimateID)
	if err != nil {
		return entities.ServiceRequest{}, entities.BillingEstimate{}, persistErr("get estimate", err)
	}
	if est.ID == "" {
		return entities.ServiceRequest{}, entities.BillingEstimate{}, ErrEstimateNotFound
	}
	if est.ServiceRequestID != sr.ID {
		return entities.ServiceRequest{}, entities.BillingEstimate{}, &ValidationError{Field: "estimate_id", Reason: "estimate does not belong to this request"}
	}
	return sr, est, nil
}

// expireIfDue applies lazy expiry: a pending estimate whose validity window
// has lapsed is written expired (best effort) before the caller evaluates
// its own precondition. Reports whether the estimate is expired.
func (u *EstimateUseCase) expireIfDue(ctx context.Context, est *entities.BillingEstimate) bool {
	if est.Status == entities.EstimateStatusExpired {
		return true
	}
	if !est.ExpiredAt(time.Now().UTC()) {
		return false
	}
	expired := *est
	expired.Status = entities.EstimateStatusExpired
	expired.UpdatedAt = time.Now().UTC()
	if updated, err := u.estimates.Update(ctx, expired, est.Version); err != nil {
		u.log.Warn("lazy expiry write failed",
			zap.String("estimate_id", est.ID),
			zap.Error(err))
	} else {
		*est = updated
	}
	return true
}

func validateEstimatePayload(price float64, description string, validUntil time.Time) error {
	if price <= 0 {
		return &ValidationError{Field: "estimated_price", Reason: "must be positive"}
	}
	if strings.TrimSpace(description) == "" {
		return &ValidationError{Field: "description", Reason: "required"}
	}
	if validUntil.IsZero() || validUntil.Before(time.Now().UTC()) {
		return &ValidationError{Field: "valid_until", Reason: "must be in the future"}
	}
	return nil
}

func revisionResponseData(accepted bool, outcome entities.RevisionOutcome) json.RawMessage {
	b, _ := json.Marshal(map[string]any{
		"accepted": accepted,
		"outcome":  int(outcome),
	})
	return b
}
