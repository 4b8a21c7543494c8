package handlers

import (
	"net/http"

	request "artisanlink/internal/adapter/http/dto/request"
	response "artisanlink/internal/adapter/http/dto/response"
	"artisanlink/internal/usecase"
	"artisanlink/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid request payload", http.StatusBadRequest)

// ServiceRequestHandler handles intake, payment confirmation and the read
// surface of a service request.

type ServiceRequestHandler struct {
	usecase usecase.IRequestUseCase
}

func NewServiceRequestHandler(uc usecase.IRequestUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{usecase: uc}
}

// Create opens a new service request for the calling client.
func (h *ServiceRequestHandler) Create(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		abortWith(c, appErr)
		return
	}

	var payload request.CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequestPayload)
		return
	}

	res, err := h.usecase.Create(c.Request.Context(), actor, payload.DownPaymentRequired)
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromTransition(res))
}

// ConfirmDownPayment verifies the client's down payment with the provider and
// releases the request for estimation.
func (h *ServiceRequestHandler) ConfirmDownPayment(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		abortWith(c, appErr)
		return
	}

	var payload request.ConfirmDownPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequestPayload)
		return
	}

	providerPaymentID := payload.ResolveProviderPaymentID()
	if providerPaymentID == "" {
		abortWith(c, errInvalidRequestPayload)
		return
	}

	res, err := h.usecase.ConfirmDownPayment(c.Request.Context(), actor, c.Param("request_id"), providerPaymentID)
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromTransition(res))
}

// GetByID returns the current snapshot of a service request.
func (h *ServiceRequestHandler) GetByID(c *gin.Context) {
	sr, err := h.usecase.GetByID(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(sr))
}

// ListEstimates returns every estimate issued for a request, revisions
// included.
func (h *ServiceRequestHandler) ListEstimates(c *gin.Context) {
	estimates, err := h.usecase.ListEstimates(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromBillingEstimates(estimates))
}

// ListStatusHistory returns the status trail oldest-first.
func (h *ServiceRequestHandler) ListStatusHistory(c *gin.Context) {
	entries, err := h.usecase.ListStatusHistory(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromStatusHistory(entries))
}

// ListActions returns the action log oldest-first.
func (h *ServiceRequestHandler) ListActions(c *gin.Context) {
	records, err := h.usecase.ListActions(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromActionRecords(records))
}
