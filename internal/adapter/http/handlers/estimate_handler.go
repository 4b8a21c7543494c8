package handlers

import (
	"context"
	"net/http"
	"time"

	request "artisanlink/internal/adapter/http/dto/request"
	response "artisanlink/internal/adapter/http/dto/response"
	"artisanlink/internal/domain/entities"
	"artisanlink/internal/usecase"
	"artisanlink/pkg"

	"github.com/gin-gonic/gin"
)

type createEstimateFunc func(ctx context.Context, actor entities.Actor, requestID string, price float64, description string, validUntil time.Time) (usecase.TransitionResult, error)

type respondFunc func(ctx context.Context, actor entities.Actor, requestID, estimateID string, accept bool, response string) (usecase.TransitionResult, error)

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// defaultEstimateValidity is applied when the back office omits valid_until.
const defaultEstimateValidity = 7 * 24 * time.Hour

// EstimateHandler handles estimate creation and the accept/refuse protocol.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate issues the initial estimate for a request.
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	h.createEstimate(c, h.usecase.CreateInitialEstimate)
}

// CreateRevisedEstimate issues a revision after the artisan rejected the
// accepted price mid-mission.
func (h *EstimateHandler) CreateRevisedEstimate(c *gin.Context) {
	h.createEstimate(c, h.usecase.CreateRevisedEstimate)
}

func (h *EstimateHandler) createEstimate(c *gin.Context, create createEstimateFunc) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		abortWith(c, appErr)
		return
	}

	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidEstimatePayload)
		return
	}

	price, err := payload.ResolvePrice()
	if err != nil {
		abortWith(c, errInvalidEstimatePayload)
		return
	}
	validUntil := payload.ResolveValidUntil(time.Now().UTC(), defaultEstimateValidity)

	res, err := create(c.Request.Context(), actor, c.Param("request_id"), price, payload.Description, validUntil)
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromTransition(res))
}

// RespondToEstimate records the client's answer to the initial estimate.
func (h *EstimateHandler) RespondToEstimate(c *gin.Context) {
	h.respond(c, h.usecase.RespondToEstimate)
}

// RespondToRevision records either party's answer to a revised estimate.
func (h *EstimateHandler) RespondToRevision(c *gin.Context) {
	h.respond(c, h.usecase.RespondToRevision)
}

func (h *EstimateHandler) respond(c *gin.Context, respond respondFunc) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		abortWith(c, appErr)
		return
	}

	var payload request.RespondToEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidEstimatePayload)
		return
	}

	accept, err := payload.ResolveAccept()
	if err != nil {
		abortWith(c, errInvalidEstimatePayload)
		return
	}

	res, err := respond(c.Request.Context(), actor, c.Param("request_id"), c.Param("estimate_id"), accept, payload.Response)
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromTransition(res))
}

// RejectEstimate reopens an accepted estimate on the artisan's initiative.
func (h *EstimateHandler) RejectEstimate(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		abortWith(c, appErr)
		return
	}

	var payload request.RejectEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidEstimatePayload)
		return
	}

	res, err := h.usecase.ArtisanRejectEstimate(c.Request.Context(), actor, c.Param("request_id"), c.Param("estimate_id"), payload.ResolveReason())
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromTransition(res))
}
