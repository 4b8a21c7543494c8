package handlers

import (
	"context"
	"net/http"

	response "artisanlink/internal/adapter/http/dto/response"
	"artisanlink/internal/domain/entities"
	"artisanlink/internal/usecase"

	"github.com/gin-gonic/gin"
)

type assignmentFunc func(ctx context.Context, actor entities.Actor, requestID string) (usecase.TransitionResult, error)

// AssignmentHandler handles the artisan's side of the assignment protocol.

type AssignmentHandler struct {
	usecase usecase.IAssignmentUseCase
}

func NewAssignmentHandler(uc usecase.IAssignmentUseCase) *AssignmentHandler {
	return &AssignmentHandler{usecase: uc}
}

// AcceptAssignment binds the calling artisan to the request and starts work.
func (h *AssignmentHandler) AcceptAssignment(c *gin.Context) {
	h.run(c, h.usecase.AcceptAssignment, http.StatusOK)
}

// DeclineAssignment records the artisan's refusal without moving the request;
// the matcher uses the refusal log to skip them on the next proposal.
func (h *AssignmentHandler) DeclineAssignment(c *gin.Context) {
	h.run(c, h.usecase.DeclineAssignment, http.StatusOK)
}

// StartMission marks the on-site start of work.
func (h *AssignmentHandler) StartMission(c *gin.Context) {
	h.run(c, h.usecase.StartMission, http.StatusOK)
}

func (h *AssignmentHandler) run(c *gin.Context, op assignmentFunc, okStatus int) {
	actor, appErr := actorFromHeaders(c)
	if appErr != nil {
		abortWith(c, appErr)
		return
	}

	res, err := op(c.Request.Context(), actor, c.Param("request_id"))
	if err != nil {
		abortWith(c, mapDomainError(err))
		return
	}

	c.JSON(okStatus, response.FromTransition(res))
}
