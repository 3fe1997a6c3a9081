package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"livemarket/internal/commerceerrors"
	"livemarket/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, commerceerrors.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, commerceerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, commerceerrors.ErrPreconditionFailed):
		return http.StatusUnprocessableEntity, "operation precondition not met"
	case errors.Is(err, commerceerrors.ErrInvalidTransition):
		return http.StatusConflict, "illegal state transition"
	case errors.Is(err, commerceerrors.ErrAuctionInProgress):
		return http.StatusConflict, "an auction is already running on this stream"
	case errors.Is(err, commerceerrors.ErrAlreadySettled):
		return http.StatusConflict, "auction already settled"
	case errors.Is(err, commerceerrors.ErrAlreadyAccepted):
		return http.StatusConflict, "offer already accepted"
	case errors.Is(err, commerceerrors.ErrStaleState):
		return http.StatusConflict, "state changed concurrently, retry"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
