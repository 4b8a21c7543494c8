package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"artisanlink/internal/adapter/http/handlers/mocks"
	"artisanlink/internal/domain/entities"
	"artisanlink/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAssignmentHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssignmentUseCase(ctrl)
		h := NewAssignmentHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:request_id/assignment/acceptance", h.AcceptAssignment)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/assignment/acceptance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("accept succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssignmentUseCase(ctrl)
		h := NewAssignmentHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:request_id/assignment/acceptance", h.AcceptAssignment)

		uc.EXPECT().AcceptAssignment(gomock.Any(), entities.Actor{ID: "artisan-1", Type: entities.ActorProfessional}, "req-1").
			Return(usecase.TransitionResult{
				Request: entities.ServiceRequest{ID: "req-1", AssignedArtisanID: "artisan-1", Status: entities.StatusInProgress},
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/assignment/acceptance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, withActor(req, "artisan-1", "professional"))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("refused artisan is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssignmentUseCase(ctrl)
		h := NewAssignmentHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:request_id/assignment/acceptance", h.AcceptAssignment)

		uc.EXPECT().AcceptAssignment(gomock.Any(), gomock.Any(), "req-1").
			Return(usecase.TransitionResult{}, &usecase.AuthorizationError{Reason: "artisan previously refused this request"})

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/assignment/acceptance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, withActor(req, "artisan-1", "professional"))

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("decline succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssignmentUseCase(ctrl)
		h := NewAssignmentHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:request_id/assignment/refusal", h.DeclineAssignment)

		uc.EXPECT().DeclineAssignment(gomock.Any(), gomock.Any(), "req-1").
			Return(usecase.TransitionResult{
				Request: entities.ServiceRequest{ID: "req-1", Status: entities.StatusAwaitingAssignation},
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/assignment/refusal", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, withActor(req, "artisan-1", "professional"))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("mission start on an unassigned request conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssignmentUseCase(ctrl)
		h := NewAssignmentHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:request_id/mission-start", h.StartMission)

		uc.EXPECT().StartMission(gomock.Any(), gomock.Any(), "req-1").
			Return(usecase.TransitionResult{}, &usecase.InvalidStateError{
				Op:      entities.CommandStartMission,
				Current: entities.StatusAwaitingAssignation,
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/mission-start", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, withActor(req, "artisan-1", "professional"))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
