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

// IRequestUseCase covers request intake, the down-payment gate and the read
// surface (the request itself, its estimates, its canonical timeline and its
// action records).

type IRequestUseCase interface {
	Create(ctx context.Context, actor entities.Actor, downPaymentRequired bool) (TransitionResult, error)
	ConfirmDownPayment(ctx context.Context, actor entities.Actor, requestID, providerPaymentID string) (TransitionResult, error)

	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	ListEstimates(ctx context.Context, requestID string) ([]entities.BillingEstimate, error)
	ListStatusHistory(ctx context.Context, requestID string) ([]entities.StatusHistoryEntry, error)
	ListActions(ctx context.Context, requestID string) ([]entities.ActionRecord, error)
}

type RequestUseCase struct {
	requests  interfaces.IServiceRequestRepository
	estimates interfaces.IBillingEstimateRepository
	payments  interfaces.IDownPaymentRepository
	gateway   interfaces.IPaymentGateway
	auditor
}

var _ IRequestUseCase = (*RequestUseCase)(nil)

func NewRequestUseCase(
	requests interfaces.IServiceRequestRepository,
	estimates interfaces.IBillingEstimateRepository,
	payments interfaces.IDownPaymentRepository,
	gateway interfaces.IPaymentGateway,
	audit interfaces.IAuditRepository,
	notifier interfaces.INotifier,
	log *zap.Logger,
) *RequestUseCase {
	return &RequestUseCase{
		requests:  requests,
		estimates: estimates,
		payments:  payments,
		gateway:   gateway,
		auditor:   auditor{audit: audit, notifier: notifier, log: log},
	}
}

// Create seeds a request on behalf of the client intake. A request needing a
// down payment starts in AWAITING_PAYMENT and only reaches AWAITING_ESTIMATE
// through ConfirmDownPayment; otherwise it starts in AWAITING_ESTIMATE
// directly.
func (u *RequestUseCase) Create(ctx context.Context, actor entities.Actor, downPaymentRequired bool) (TransitionResult, error) {
	if actor.Type != entities.ActorClient {
		return TransitionResult{}, &AuthorizationError{Reason: "only a client creates a service request"}
	}

	now := time.Now().UTC()
	status := entities.StatusAwaitingEstimate
	if downPaymentRequired {
		status = entities.StatusAwaitingPayment
	}

	sr := entities.ServiceRequest{
		ID:        uuid.NewString(),
		ClientID:  actor.ID,
		Status:    status,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.requests.Create(ctx, sr)
	if err != nil {
		return TransitionResult{}, persistErr("create service request", err)
	}

	historyID, _ := u.recordTransition(ctx, created, actor, nil)
	return TransitionResult{Request: created, StatusHistoryID: historyID}, nil
}

// ConfirmDownPayment verifies the captured payment with the provider and
// fires the AWAITING_PAYMENT -> AWAITING_ESTIMATE edge. The lifecycle never
// computes money; it only consumes the binary captured fact.
func (u *RequestUseCase) ConfirmDownPayment(ctx context.Context, actor entities.Actor, requestID, providerPaymentID string) (TransitionResult, error) {
	const cmd = entities.CommandConfirmDownPayment
	if actor.Type != entities.ActorClient && actor.Type != entities.ActorAdmin {
		return TransitionResult{}, &AuthorizationError{Reason: "only the client or an admin confirms a down payment"}
	}
	requestID = strings.TrimSpace(requestID)
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	if requestID == "" {
		return TransitionResult{}, &ValidationError{Field: "request_id", Reason: "required"}
	}
	if providerPaymentID == "" {
		return TransitionResult{}, &ValidationError{Field: "payment_id", Reason: "required"}
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
		if !entities.Allows(cmd, sr.Status) {
			return TransitionResult{}, newInvalidState(cmd, sr.Status)
		}

		providerStatus, providerResp, err := u.gateway.GetPayment(ctx, providerPaymentID)
		if err != nil {
			return TransitionResult{}, persistErr("verify payment", err)
		}
		if providerStatus != "approved" {
			return TransitionResult{}, ErrPaymentNotCaptured
		}

		var parsed map[string]interface{}
		if len(providerResp) > 0 {
			if err := json.Unmarshal(providerResp, &parsed); err != nil {
				u.log.Warn("provider payload unmarshal failed",
					zap.String("payment_id", providerPaymentID),
					zap.Error(err))
			}
		}
		if _, err := u.payments.Create(ctx, entities.DownPayment{
			ID:                 providerPaymentID,
			ServiceRequestID:   sr.ID,
			Date:               time.Now().UTC(),
			Status:             entities.PaymentStatusApproved,
			ProviderPayloadRaw: providerResp,
			ProviderPayload:    parsed,
		}); err != nil {
			return TransitionResult{}, persistErr("store down payment", err)
		}

		sr.Status = entities.StatusAwaitingEstimate
		sr.DownPaymentID = providerPaymentID
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
			ActionType: entities.ActionPaymentConfirmation,
		})
		return TransitionResult{Request: updated, StatusHistoryID: historyID, ActionRecordID: actionID}, nil
	}
	return TransitionResult{}, conflictErr(string(cmd))
}

func (u *RequestUseCase) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRequest{}, &ValidationError{Field: "request_id", Reason: "required"}
	}
	sr, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, persistErr("get service request", err)
	}
	if sr.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	return sr, nil
}

func (u *RequestUseCase) ListEstimates(ctx context.Context, requestID string) ([]entities.BillingEstimate, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, &ValidationError{Field: "request_id", Reason: "required"}
	}
	ests, err := u.estimates.ListByRequestID(ctx, requestID)
	if err != nil {
		return nil, persistErr("list estimates", err)
	}
	return ests, nil
}

func (u *RequestUseCase) ListStatusHistory(ctx context.Context, requestID string) ([]entities.StatusHistoryEntry, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, &ValidationError{Field: "request_id", Reason: "required"}
	}
	entries, err := u.audit.ListStatusHistory(ctx, requestID)
	if err != nil {
		return nil, persistErr("list status history", err)
	}
	return entries, nil
}

func (u *RequestUseCase) ListActions(ctx context.Context, requestID string) ([]entities.ActionRecord, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, &ValidationError{Field: "request_id", Reason: "required"}
	}
	actions, err := u.audit.ListActions(ctx, requestID)
	if err != nil {
		return nil, persistErr("list actions", err)
	}
	return actions, nil
}
