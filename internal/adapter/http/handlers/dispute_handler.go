package handlers

import (
	"net/http"

	request "artisanlink/internal/adapter/http/dto/request"
	response "artisanlink/internal/adapter/http/dto/response"
	"artisanlink/internal/domain/entities"
	"artisanlink/internal/usecase"
	"artisanlink/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDisputePayload = pkg.NewDomainErrorSimple("INVALID_DISPUTE_INPUT", "Invalid dispute payload", http.StatusBadRequest)

// DisputeHandler handles dispute escalation and admin resolution.

type DisputeHandler struct {
	usecase usecase.IDisputeUseCase
}

func NewDisputeHandler(uc usecase.IDisputeUseCase) *DisputeHandler {
	return &DisputeHandler{usecase: uc}
}

// RaiseDispute opens a dispute on behalf of the calling party.
func (h *DisputeHandler) RaiseDispute(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		abortWith(c, appErr)
		return
	}

	var payload request.RaiseDisputeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidDisputePayload)
		return
	}

	res, err := h.usecase.RaiseDispute(c.Request.Context(), actor, c.Param("request_id"),
		entities.DisputeReason(payload.Reason), payload.ResolveDetails())
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromTransition(res))
}

// ResolveDispute closes the open dispute with the admin's ruling.
func (h *DisputeHandler) ResolveDispute(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		abortWith(c, appErr)
		return
	}

	var payload request.ResolveDisputeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidDisputePayload)
		return
	}

	res, err := h.usecase.ResolveDispute(c.Request.Context(), actor, c.Param("request_id"), payload.ResolutionNotes)
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromTransition(res))
}
