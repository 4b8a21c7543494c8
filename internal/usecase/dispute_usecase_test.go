package usecase

import (
	"context"
	"errors"
	"testing"

	"artisanlink/internal/domain/entities"
	mock_interfaces "artisanlink/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type disputeFixture struct {
	requests *mock_interfaces.MockIServiceRequestRepository
	audit    *mock_interfaces.MockIAuditRepository
	notifier *mock_interfaces.MockINotifier
	uc       *DisputeUseCase
}

func newDisputeFixture(t *testing.T) *disputeFixture {
	ctrl := gomock.NewController(t)
	f := &disputeFixture{
		requests: mock_interfaces.NewMockIServiceRequestRepository(ctrl),
		audit:    mock_interfaces.NewMockIAuditRepository(ctrl),
		notifier: mock_interfaces.NewMockINotifier(ctrl),
	}
	f.uc = NewDisputeUseCase(f.requests, f.audit, f.notifier, zap.NewNop())
	return f
}

func (f *disputeFixture) expectTransition(t *testing.T, action entities.ActionType) {
	f.audit.EXPECT().AppendStatusHistory(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.StatusHistoryEntry) (entities.StatusHistoryEntry, error) {
			return e, nil
		},
	)
	f.audit.EXPECT().AppendAction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a entities.ActionRecord) (entities.ActionRecord, error) {
			if a.ActionType != action {
				t.Fatalf("expected %s action, got %s", action, a.ActionType)
			}
			return a, nil
		},
	)
	f.notifier.EXPECT().NotifyTransition(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
}

func TestDisputeUseCase_RaiseDispute(t *testing.T) {
	inProgress := entities.ServiceRequest{
		ID:                "req-1",
		ClientID:          "client-1",
		AssignedArtisanID: "artisan-1",
		Status:            entities.StatusInProgress,
		Version:           5,
	}

	t.Run("admin cannot raise a dispute", func(t *testing.T) {
		f := newDisputeFixture(t)
		_, err := f.uc.RaiseDispute(context.Background(), adminActor, "req-1", entities.DisputeReasonWorkQuality, "shoddy work")
		var authz *AuthorizationError
		if !errors.As(err, &authz) {
			t.Fatalf("expected AuthorizationError, got %v", err)
		}
	})

	t.Run("unknown reason", func(t *testing.T) {
		f := newDisputeFixture(t)
		_, err := f.uc.RaiseDispute(context.Background(), clientActor, "req-1", "bad_weather", "details")
		var validation *ValidationError
		if !errors.As(err, &validation) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("empty details", func(t *testing.T) {
		f := newDisputeFixture(t)
		_, err := f.uc.RaiseDispute(context.Background(), clientActor, "req-1", entities.DisputeReasonNoShow, "   ")
		var validation *ValidationError
		if !errors.As(err, &validation) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("client dispute from in-progress", func(t *testing.T) {
		f := newDisputeFixture(t)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(inProgress, nil)
		f.requests.EXPECT().Update(gomock.Any(), gomock.Any(), 5).DoAndReturn(
			func(_ context.Context, sr entities.ServiceRequest, _ int) (entities.ServiceRequest, error) {
				if sr.Status != entities.StatusDisputedByClient {
					t.Fatalf("expected DISPUTED_BY_CLIENT, got %s", sr.Status)
				}
				return sr, nil
			},
		)
		f.expectTransition(t, entities.ActionDispute)

		res, err := f.uc.RaiseDispute(context.Background(), clientActor, "req-1", entities.DisputeReasonIncompleteWork, "half the tiles missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Request.Status != entities.StatusDisputedByClient {
			t.Fatalf("unexpected status: %s", res.Request.Status)
		}
	})

	t.Run("cross dispute escalates to both", func(t *testing.T) {
		f := newDisputeFixture(t)
		disputed := inProgress
		disputed.Status = entities.StatusDisputedByClient
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(disputed, nil)
		f.requests.EXPECT().Update(gomock.Any(), gomock.Any(), 5).DoAndReturn(
			func(_ context.Context, sr entities.ServiceRequest, _ int) (entities.ServiceRequest, error) {
				if sr.Status != entities.StatusDisputedByBoth {
					t.Fatalf("expected DISPUTED_BY_BOTH, got %s", sr.Status)
				}
				return sr, nil
			},
		)
		f.expectTransition(t, entities.ActionDispute)

		_, err := f.uc.RaiseDispute(context.Background(), artisanActor, "req-1", entities.DisputeReasonBehavior, "client blocked site access")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("same party cannot dispute twice", func(t *testing.T) {
		f := newDisputeFixture(t)
		disputed := inProgress
		disputed.Status = entities.StatusDisputedByClient
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(disputed, nil)

		_, err := f.uc.RaiseDispute(context.Background(), clientActor, "req-1", entities.DisputeReasonOther, "still unhappy")
		var invalid *InvalidStateError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected InvalidStateError, got %v", err)
		}
	})

	t.Run("disputes are closed to strangers", func(t *testing.T) {
		f := newDisputeFixture(t)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(inProgress, nil)

		other := entities.Actor{ID: "artisan-9", Type: entities.ActorProfessional}
		_, err := f.uc.RaiseDispute(context.Background(), other, "req-1", entities.DisputeReasonPricing, "price dispute")
		var authz *AuthorizationError
		if !errors.As(err, &authz) {
			t.Fatalf("expected AuthorizationError, got %v", err)
		}
	})
}

func TestDisputeUseCase_ResolveDispute(t *testing.T) {
	disputed := entities.ServiceRequest{
		ID:                "req-1",
		ClientID:          "client-1",
		AssignedArtisanID: "artisan-1",
		Status:            entities.StatusDisputedByBoth,
		Version:           8,
	}

	t.Run("only admin resolves", func(t *testing.T) {
		f := newDisputeFixture(t)
		_, err := f.uc.ResolveDispute(context.Background(), clientActor, "req-1", "settled")
		var authz *AuthorizationError
		if !errors.As(err, &authz) {
			t.Fatalf("expected AuthorizationError, got %v", err)
		}
	})

	t.Run("request must be disputed", func(t *testing.T) {
		f := newDisputeFixture(t)
		calm := disputed
		calm.Status = entities.StatusInProgress
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(calm, nil)

		_, err := f.uc.ResolveDispute(context.Background(), adminActor, "req-1", "settled")
		var invalid *InvalidStateError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected InvalidStateError, got %v", err)
		}
	})

	t.Run("resolution moves to RESOLVED", func(t *testing.T) {
		f := newDisputeFixture(t)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(disputed, nil)
		f.requests.EXPECT().Update(gomock.Any(), gomock.Any(), 8).DoAndReturn(
			func(_ context.Context, sr entities.ServiceRequest, _ int) (entities.ServiceRequest, error) {
				if sr.Status != entities.StatusResolved {
					t.Fatalf("expected RESOLVED, got %s", sr.Status)
				}
				return sr, nil
			},
		)
		f.audit.EXPECT().AppendStatusHistory(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.StatusHistoryEntry) (entities.StatusHistoryEntry, error) {
				return e, nil
			},
		)
		f.audit.EXPECT().AppendAction(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.ActionRecord) (entities.ActionRecord, error) {
				if a.ActionType != entities.ActionDisputeResolution || a.CompletionNotes != "split the invoice" {
					t.Fatalf("unexpected action: %+v", a)
				}
				return a, nil
			},
		)
		f.notifier.EXPECT().NotifyTransition(gomock.Any(), "req-1", entities.StatusResolved, entities.ActorAdmin).Return(nil)

		res, err := f.uc.ResolveDispute(context.Background(), adminActor, "req-1", "split the invoice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Request.Status != entities.StatusResolved {
			t.Fatalf("unexpected status: %s", res.Request.Status)
		}
	})
}
