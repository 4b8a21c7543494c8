package routes

import (
	"artisanlink/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests = "/requests"
)

func addServiceRequestRoutes(
	rg *gin.RouterGroup,
	requestHandler *handlers.ServiceRequestHandler,
	estimateHandler *handlers.EstimateHandler,
	assignmentHandler *handlers.AssignmentHandler,
	validationHandler *handlers.ValidationHandler,
	disputeHandler *handlers.DisputeHandler,
) {
	requests := rg.Group(PathRequests)
	{
		requests.POST("", requestHandler.Create)
		requests.GET("/:request_id", requestHandler.GetByID)
		requests.GET("/:request_id/history", requestHandler.ListStatusHistory)
		requests.GET("/:request_id/actions", requestHandler.ListActions)
		requests.POST("/:request_id/payment-confirmation", requestHandler.ConfirmDownPayment)

		requests.GET("/:request_id/estimates", requestHandler.ListEstimates)
		requests.POST("/:request_id/estimates", estimateHandler.CreateEstimate)
		requests.POST("/:request_id/estimates/revision", estimateHandler.CreateRevisedEstimate)
		requests.POST("/:request_id/estimates/:estimate_id/response", estimateHandler.RespondToEstimate)
		requests.POST("/:request_id/estimates/:estimate_id/rejection", estimateHandler.RejectEstimate)
		requests.POST("/:request_id/estimates/:estimate_id/revision-response", estimateHandler.RespondToRevision)

		requests.POST("/:request_id/assignment/acceptance", assignmentHandler.AcceptAssignment)
		requests.POST("/:request_id/assignment/refusal", assignmentHandler.DeclineAssignment)
		requests.POST("/:request_id/mission-start", assignmentHandler.StartMission)

		requests.POST("/:request_id/validation", validationHandler.Validate)

		requests.POST("/:request_id/disputes", disputeHandler.RaiseDispute)
		requests.POST("/:request_id/disputes/resolution", disputeHandler.ResolveDispute)
	}
}
