package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"artisanlink/internal/adapter/http/handlers/mocks"
	"artisanlink/internal/domain/entities"
	"artisanlink/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestValidationHandler_Validate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIValidationUseCase(ctrl)
		h := NewValidationHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:request_id/validation", h.Validate)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/validation", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, withActor(req, "client-1", "client"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("notes and photos are forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIValidationUseCase(ctrl)
		h := NewValidationHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:request_id/validation", h.Validate)

		uc.EXPECT().Validate(gomock.Any(), entities.Actor{ID: "client-1", Type: entities.ActorClient}, "req-1", "well done", gomock.Any()).
			DoAndReturn(func(_ any, _ entities.Actor, _ string, _ string, photos json.RawMessage) (usecase.TransitionResult, error) {
				if string(photos) != `["a.jpg","b.jpg"]` {
					t.Fatalf("unexpected photos payload: %s", photos)
				}
				return usecase.TransitionResult{
					Request: entities.ServiceRequest{ID: "req-1", Status: entities.StatusClientValidated},
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/validation", bytes.NewBufferString(`{"notes":"well done","photos":["a.jpg","b.jpg"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, withActor(req, "client-1", "client"))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("terminal request maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIValidationUseCase(ctrl)
		h := NewValidationHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:request_id/validation", h.Validate)

		uc.EXPECT().Validate(gomock.Any(), gomock.Any(), "req-1", "", gomock.Any()).
			Return(usecase.TransitionResult{}, &usecase.InvalidStateError{
				Op:      entities.CommandValidate,
				Current: entities.StatusCompleted,
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/validation", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, withActor(req, "artisan-1", "professional"))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
