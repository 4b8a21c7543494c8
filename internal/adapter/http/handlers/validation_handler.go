package handlers

import (
	"net/http"

	request "artisanlink/internal/adapter/http/dto/request"
	response "artisanlink/internal/adapter/http/dto/response"
	"artisanlink/internal/usecase"
	"artisanlink/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidValidationPayload = pkg.NewDomainErrorSimple("INVALID_VALIDATION_INPUT", "Invalid validation payload", http.StatusBadRequest)

// ValidationHandler handles a party's sign-off on finished work.

type ValidationHandler struct {
	usecase usecase.IValidationUseCase
}

func NewValidationHandler(uc usecase.IValidationUseCase) *ValidationHandler {
	return &ValidationHandler{usecase: uc}
}

// Validate records the caller's validation; the second party's validation
// completes the request.
func (h *ValidationHandler) Validate(c *gin.Context) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		abortWith(c, appErr)
		return
	}

	var payload request.ValidateCompletionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidValidationPayload)
		return
	}

	res, err := h.usecase.Validate(c.Request.Context(), actor, c.Param("request_id"), payload.Notes, payload.Photos)
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromTransition(res))
}
