package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"artisanlink/internal/adapter/http/handlers/mocks"
	"artisanlink/internal/domain/entities"
	"artisanlink/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func withActor(req *http.Request, id string, role string) *http.Request {
	req.Header.Set(HeaderActorID, id)
	req.Header.Set(HeaderActorRole, role)
	return req
}

func TestServiceRequestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing actor headers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unknown actor role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, withActor(req, "u-1", "superuser"))

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, withActor(req, "client-1", "client"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.Create)

		uc.EXPECT().Create(gomock.Any(), entities.Actor{ID: "artisan-1", Type: entities.ActorProfessional}, false).
			Return(usecase.TransitionResult{}, &usecase.AuthorizationError{Reason: "only a client creates a service request"})

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, withActor(req, "artisan-1", "professional"))

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.Create)

		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), entities.Actor{ID: "client-1", Type: entities.ActorClient}, true).
			Return(usecase.TransitionResult{
				Request: entities.ServiceRequest{
					ID: "req-1", ClientID: "client-1",
					Status: entities.StatusAwaitingPayment, Version: 1,
					CreatedAt: now, UpdatedAt: now,
				},
				StatusHistoryID: "h-1",
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(`{"down_payment_required":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, withActor(req, "client-1", "client"))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestServiceRequestHandler_ConfirmDownPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("blank payment id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:request_id/payment-confirmation", h.ConfirmDownPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/payment-confirmation", bytes.NewBufferString(`{"provider_payment_id":"   "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, withActor(req, "client-1", "client"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("uncaptured payment maps to 402", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:request_id/payment-confirmation", h.ConfirmDownPayment)

		uc.EXPECT().ConfirmDownPayment(gomock.Any(), gomock.Any(), "req-1", "pay-1").
			Return(usecase.TransitionResult{}, usecase.ErrPaymentNotCaptured)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/payment-confirmation", bytes.NewBufferString(`{"provider_payment_id":"pay-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, withActor(req, "client-1", "client"))

		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests/:request_id/payment-confirmation", h.ConfirmDownPayment)

		uc.EXPECT().ConfirmDownPayment(gomock.Any(), entities.Actor{ID: "client-1", Type: entities.ActorClient}, "req-1", "pay-1").
			Return(usecase.TransitionResult{
				Request: entities.ServiceRequest{ID: "req-1", Status: entities.StatusAwaitingEstimate, DownPaymentID: "pay-1"},
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/payment-confirmation", bytes.NewBufferString(`{"provider_payment_id":"pay-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, withActor(req, "client-1", "client"))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestServiceRequestHandler_Reads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get by id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.GET("/v1/requests/:request_id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "req-404").Return(entities.ServiceRequest{}, usecase.ErrRequestNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/req-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get by id success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.GET("/v1/requests/:request_id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "req-1").Return(
			entities.ServiceRequest{ID: "req-1", Status: entities.StatusInProgress}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/req-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("list status history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.GET("/v1/requests/:request_id/history", h.ListStatusHistory)

		uc.EXPECT().ListStatusHistory(gomock.Any(), "req-1").Return(
			[]entities.StatusHistoryEntry{{ID: "h-1", ServiceRequestID: "req-1", Status: entities.StatusAwaitingEstimate}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/req-1/history", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("persistence failure maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.GET("/v1/requests/:request_id/actions", h.ListActions)

		uc.EXPECT().ListActions(gomock.Any(), "req-1").Return(nil, &usecase.PersistenceError{Op: "list actions", Err: errors.New("dynamo down")})

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/req-1/actions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
