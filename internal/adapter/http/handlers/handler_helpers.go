package handlers

import (
	"errors"
	"net/http"
	"strings"

	"artisanlink/internal/domain/entities"
	"artisanlink/internal/usecase"
	"artisanlink/pkg"

	"github.com/gin-gonic/gin"
)

// Actor identity headers set by the auth gateway in front of this service.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
)

var errMissingActor = pkg.NewDomainErrorSimple("MISSING_ACTOR", "Missing or invalid actor headers", http.StatusUnauthorized)

// actorFromHeaders resolves the calling party from the gateway headers.
// There is no token validation here: authentication happens upstream and the
// headers are trusted inside the service mesh.
func actorFromHeaders(c *gin.Context) (entities.Actor, *pkg.AppError) {
	id := strings.TrimSpace(c.GetHeader(HeaderActorID))
	role := entities.ActorType(strings.TrimSpace(strings.ToLower(c.GetHeader(HeaderActorRole))))
	if id == "" || !role.Valid() {
		return entities.Actor{}, errMissingActor
	}
	return entities.Actor{ID: id, Type: role}, nil
}

// mapDomainError translates the use case error taxonomy into HTTP envelopes.
// Conflict (409) marks transitions refused by the state machine; callers are
// expected to re-fetch and re-decide rather than blindly retry.
func mapDomainError(err error) *pkg.AppError {
	var invalidState *usecase.InvalidStateError
	var authz *usecase.AuthorizationError
	var validation *usecase.ValidationError
	var persistence *usecase.PersistenceError

	switch {
	case errors.As(err, &validation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", validation.Error(), http.StatusBadRequest)
	case errors.As(err, &authz):
		return pkg.NewDomainErrorSimple("FORBIDDEN", authz.Error(), http.StatusForbidden)
	case errors.As(err, &invalidState):
		return pkg.NewDomainErrorSimple("INVALID_STATE", invalidState.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Service request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Down payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotCaptured):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_CAPTURED", "Down payment not captured by the provider", http.StatusPaymentRequired)
	case errors.As(err, &persistence):
		return pkg.NewDomainError("PERSISTENCE_ERROR", "Storage failure, safe to retry", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
