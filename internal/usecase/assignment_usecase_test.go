package usecase

import (
	"context"
	"errors"
	"testing"

	"artisanlink/internal/domain/entities"
	"artisanlink/internal/usecase/interfaces"
	mock_interfaces "artisanlink/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type assignmentFixture struct {
	requests *mock_interfaces.MockIServiceRequestRepository
	audit    *mock_interfaces.MockIAuditRepository
	notifier *mock_interfaces.MockINotifier
	uc       *AssignmentUseCase
}

func newAssignmentFixture(t *testing.T) *assignmentFixture {
	ctrl := gomock.NewController(t)
	f := &assignmentFixture{
		requests: mock_interfaces.NewMockIServiceRequestRepository(ctrl),
		audit:    mock_interfaces.NewMockIAuditRepository(ctrl),
		notifier: mock_interfaces.NewMockINotifier(ctrl),
	}
	f.uc = NewAssignmentUseCase(f.requests, f.audit, f.notifier, zap.NewNop())
	return f
}

func TestAssignmentUseCase_AcceptAssignment(t *testing.T) {
	unassigned := entities.ServiceRequest{
		ID:       "req-1",
		ClientID: "client-1",
		Status:   entities.StatusAwaitingAssignation,
		Version:  3,
	}

	t.Run("not an artisan", func(t *testing.T) {
		f := newAssignmentFixture(t)
		_, err := f.uc.AcceptAssignment(context.Background(), clientActor, "req-1")
		var authz *AuthorizationError
		if !errors.As(err, &authz) {
			t.Fatalf("expected AuthorizationError, got %v", err)
		}
	})

	t.Run("previously refused artisan is barred", func(t *testing.T) {
		f := newAssignmentFixture(t)
		f.audit.EXPECT().HasRefused(gomock.Any(), "artisan-1", "req-1").Return(true, nil)

		_, err := f.uc.AcceptAssignment(context.Background(), artisanActor, "req-1")
		var authz *AuthorizationError
		if !errors.As(err, &authz) {
			t.Fatalf("expected AuthorizationError, got %v", err)
		}
	})

	t.Run("already assigned", func(t *testing.T) {
		f := newAssignmentFixture(t)
		taken := unassigned
		taken.AssignedArtisanID = "artisan-9"
		f.audit.EXPECT().HasRefused(gomock.Any(), "artisan-1", "req-1").Return(false, nil)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(taken, nil)

		_, err := f.uc.AcceptAssignment(context.Background(), artisanActor, "req-1")
		var invalid *InvalidStateError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected InvalidStateError, got %v", err)
		}
	})

	t.Run("wrong state", func(t *testing.T) {
		f := newAssignmentFixture(t)
		early := unassigned
		early.Status = entities.StatusAwaitingEstimate
		f.audit.EXPECT().HasRefused(gomock.Any(), "artisan-1", "req-1").Return(false, nil)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(early, nil)

		_, err := f.uc.AcceptAssignment(context.Background(), artisanActor, "req-1")
		var invalid *InvalidStateError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected InvalidStateError, got %v", err)
		}
	})

	t.Run("success starts the work", func(t *testing.T) {
		f := newAssignmentFixture(t)
		f.audit.EXPECT().HasRefused(gomock.Any(), "artisan-1", "req-1").Return(false, nil)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(unassigned, nil)
		f.requests.EXPECT().Update(gomock.Any(), gomock.Any(), 3).DoAndReturn(
			func(_ context.Context, sr entities.ServiceRequest, _ int) (entities.ServiceRequest, error) {
				if sr.Status != entities.StatusInProgress || sr.AssignedArtisanID != "artisan-1" {
					t.Fatalf("unexpected request: %+v", sr)
				}
				sr.Version++
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
				if a.ActionType != entities.ActionAssignmentAccepted {
					t.Fatalf("expected assignment_acceptance action, got %s", a.ActionType)
				}
				return a, nil
			},
		)
		f.notifier.EXPECT().NotifyTransition(gomock.Any(), "req-1", entities.StatusInProgress, entities.ActorProfessional).Return(nil)

		res, err := f.uc.AcceptAssignment(context.Background(), artisanActor, "req-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Request.Status != entities.StatusInProgress {
			t.Fatalf("unexpected status: %s", res.Request.Status)
		}
	})

	t.Run("version conflict exhausts retries", func(t *testing.T) {
		f := newAssignmentFixture(t)
		f.audit.EXPECT().HasRefused(gomock.Any(), "artisan-1", "req-1").Return(false, nil)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(unassigned, nil).Times(3)
		f.requests.EXPECT().Update(gomock.Any(), gomock.Any(), 3).
			Return(entities.ServiceRequest{}, interfaces.ErrVersionConflict).Times(3)

		_, err := f.uc.AcceptAssignment(context.Background(), artisanActor, "req-1")
		var persistence *PersistenceError
		if !errors.As(err, &persistence) {
			t.Fatalf("expected PersistenceError, got %v", err)
		}
	})
}

func TestAssignmentUseCase_DeclineAssignment(t *testing.T) {
	sr := entities.ServiceRequest{
		ID:       "req-1",
		ClientID: "client-1",
		Status:   entities.StatusAwaitingAssignation,
		Version:  3,
	}

	t.Run("refusal is recorded and the request stays put", func(t *testing.T) {
		f := newAssignmentFixture(t)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(sr, nil)
		f.audit.EXPECT().AppendRefusal(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ref entities.ArtisanRefusal) error {
				if ref.ArtisanID != "artisan-1" || ref.ServiceRequestID != "req-1" {
					t.Fatalf("unexpected refusal: %+v", ref)
				}
				return nil
			},
		)
		f.audit.EXPECT().AppendAction(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.ActionRecord) (entities.ActionRecord, error) {
				if a.ActionType != entities.ActionAssignmentDeclined {
					t.Fatalf("expected assignment_refusal action, got %s", a.ActionType)
				}
				return a, nil
			},
		)

		res, err := f.uc.DeclineAssignment(context.Background(), artisanActor, "req-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Request.Status != entities.StatusAwaitingAssignation {
			t.Fatalf("request must not move, got %s", res.Request.Status)
		}
		if res.ActionRecordID == "" {
			t.Fatalf("expected action record id")
		}
	})

	t.Run("refusal write failure is fatal", func(t *testing.T) {
		f := newAssignmentFixture(t)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(sr, nil)
		f.audit.EXPECT().AppendRefusal(gomock.Any(), gomock.Any()).Return(errors.New("dynamo down"))

		_, err := f.uc.DeclineAssignment(context.Background(), artisanActor, "req-1")
		var persistence *PersistenceError
		if !errors.As(err, &persistence) {
			t.Fatalf("expected PersistenceError, got %v", err)
		}
	})

	t.Run("wrong state", func(t *testing.T) {
		f := newAssignmentFixture(t)
		working := sr
		working.Status = entities.StatusInProgress
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(working, nil)

		_, err := f.uc.DeclineAssignment(context.Background(), artisanActor, "req-1")
		var invalid *InvalidStateError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected InvalidStateError, got %v", err)
		}
	})
}

func TestAssignmentUseCase_StartMission(t *testing.T) {
	assigned := entities.ServiceRequest{
		ID:                "req-1",
		ClientID:          "client-1",
		AssignedArtisanID: "artisan-1",
		Status:            entities.StatusInProgress,
		Version:           4,
	}

	t.Run("not the assigned artisan", func(t *testing.T) {
		f := newAssignmentFixture(t)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(assigned, nil)

		other := entities.Actor{ID: "artisan-2", Type: entities.ActorProfessional}
		_, err := f.uc.StartMission(context.Background(), other, "req-1")
		var authz *AuthorizationError
		if !errors.As(err, &authz) {
			t.Fatalf("expected AuthorizationError, got %v", err)
		}
	})

	t.Run("first start appends a mission record", func(t *testing.T) {
		f := newAssignmentFixture(t)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(assigned, nil)
		f.audit.EXPECT().ListActions(gomock.Any(), "req-1").Return(nil, nil)
		f.audit.EXPECT().AppendAction(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.ActionRecord) (entities.ActionRecord, error) {
				if a.ActionType != entities.ActionMissionStart {
					t.Fatalf("expected mission_start action, got %s", a.ActionType)
				}
				return a, nil
			},
		)

		res, err := f.uc.StartMission(context.Background(), artisanActor, "req-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ActionRecordID == "" {
			t.Fatalf("expected action record id")
		}
	})

	t.Run("repeated start is idempotent", func(t *testing.T) {
		f := newAssignmentFixture(t)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(assigned, nil)
		f.audit.EXPECT().ListActions(gomock.Any(), "req-1").Return([]entities.ActionRecord{
			{ID: "act-7", ActorID: "artisan-1", ActionType: entities.ActionMissionStart},
		}, nil)

		res, err := f.uc.StartMission(context.Background(), artisanActor, "req-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ActionRecordID != "act-7" {
			t.Fatalf("expected the existing record id, got %q", res.ActionRecordID)
		}
	})
}
