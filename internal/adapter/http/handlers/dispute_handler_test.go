package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"artisanlink/internal/adapter/http/handlers/mocks"
	"artisanlink/internal/domain/entities"
	"artisanlink/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDisputeHandler_RaiseDispute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing details fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDisputeUseCase(ctrl)
		h := NewDisputeHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:request_id/disputes", h.RaiseDispute)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/disputes", bytes.NewBufferString(`{"reason":"no_show"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, withActor(req, "client-1", "client"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown reason maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDisputeUseCase(ctrl)
		h := NewDisputeHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:request_id/disputes", h.RaiseDispute)

		uc.EXPECT().RaiseDispute(gomock.Any(), gomock.Any(), "req-1", entities.DisputeReason("bad_weather"), "could not work").
			Return(usecase.TransitionResult{}, &usecase.ValidationError{Field: "reason", Reason: "must be one of the dispute reasons"})

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/disputes", bytes.NewBufferString(`{"reason":"bad_weather","details":"could not work"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, withActor(req, "client-1", "client"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDisputeUseCase(ctrl)
		h := NewDisputeHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:request_id/disputes", h.RaiseDispute)

		uc.EXPECT().RaiseDispute(gomock.Any(), entities.Actor{ID: "client-1", Type: entities.ActorClient}, "req-1", entities.DisputeReasonWorkQuality, "tiles are crooked").
			Return(usecase.TransitionResult{
				Request: entities.ServiceRequest{ID: "req-1", Status: entities.StatusDisputedByClient},
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/disputes", bytes.NewBufferString(`{"reason":"work_quality","details":"tiles are crooked"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, withActor(req, "client-1", "client"))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestDisputeHandler_ResolveDispute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non-admin is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDisputeUseCase(ctrl)
		h := NewDisputeHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:request_id/disputes/resolution", h.ResolveDispute)

		uc.EXPECT().ResolveDispute(gomock.Any(), entities.Actor{ID: "client-1", Type: entities.ActorClient}, "req-1", "").
			Return(usecase.TransitionResult{}, &usecase.AuthorizationError{Reason: "only an admin resolves disputes"})

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/disputes/resolution", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, withActor(req, "client-1", "client"))

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("undisputed request maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDisputeUseCase(ctrl)
		h := NewDisputeHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:request_id/disputes/resolution", h.ResolveDispute)

		uc.EXPECT().ResolveDispute(gomock.Any(), gomock.Any(), "req-1", "settled").
			Return(usecase.TransitionResult{}, &usecase.InvalidStateError{
				Op:      entities.CommandResolveDispute,
				Current: entities.StatusInProgress,
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/disputes/resolution", bytes.NewBufferString(`{"resolution_notes":"settled"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, withActor(req, "admin-1", "admin"))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDisputeUseCase(ctrl)
		h := NewDisputeHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:request_id/disputes/resolution", h.ResolveDispute)

		uc.EXPECT().ResolveDispute(gomock.Any(), entities.Actor{ID: "admin-1", Type: entities.ActorAdmin}, "req-1", "split the invoice").
			Return(usecase.TransitionResult{
				Request: entities.ServiceRequest{ID: "req-1", Status: entities.StatusResolved},
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/disputes/resolution", bytes.NewBufferString(`{"resolution_notes":"split the invoice"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, withActor(req, "admin-1", "admin"))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
