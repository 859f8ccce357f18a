package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-engine/internal/auctionerrors"
	"auction-engine/utils"

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
	case errors.Is(err, auctionerrors.ErrNullInput):
		return http.StatusBadRequest, "missing input"
	case errors.Is(err, auctionerrors.ErrValidation):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, auctionerrors.ErrNotFound):
		return http.StatusNotFound, "entity not found"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found for product"
	case errors.Is(err, auctionerrors.ErrDuplicate):
		return http.StatusConflict, "entity already exists"
	case errors.Is(err, auctionerrors.ErrLimitExceeded):
		return http.StatusConflict, "limit exceeded"
	case errors.Is(err, auctionerrors.ErrSimilarDescription):
		return http.StatusConflict, "description too similar to an existing product"
	case errors.Is(err, auctionerrors.ErrOutsideTimeWindow):
		return http.StatusConflict, "outside the auction time window"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrCurrencyMismatch):
		return http.StatusConflict, "currency mismatch"
	case errors.Is(err, auctionerrors.ErrSelfBid):
		return http.StatusForbidden, "seller cannot bid on own auction"
	case errors.Is(err, auctionerrors.ErrRoleMismatch):
		return http.StatusForbidden, "rating outside the seller-winner pair"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError writes the mapped error response for a failed service call.
func RespondError(c *gin.Context, handlerName string, err error) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	utils.Warn(handlerName+": request failed", map[string]any{"error": err.Error(), "status": status})
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
