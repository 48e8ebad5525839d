package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"aspcare/middleware"
	"aspcare/models"
	"aspcare/services/auth"
	"aspcare/services/booking"
	"aspcare/services/payment"
	"aspcare/services/remote"
	"aspcare/services/session"
	"aspcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error codes the browser switches on.
const (
	CodeValidation       = "validation"
	CodeAbsent           = "absent"
	CodeNoCheckout       = "no_checkout"
	CodeRetry            = "retry"
	CodeOffline          = "offline"
	CodeRelogin          = "relogin"
	CodeLoginRejected    = "login_rejected"
	CodePaymentsDisabled = "payments_disabled"
	CodeInternal         = "internal"
)

const (
	msgRetry   = "Something went wrong. Please try again."
	msgOffline = "Unable to reach the server. Please check your connection."
	msgRelogin = "Unauthorized. Please login again."
)

// respondServiceError writes the response for an error returned by a service call.
// Superseded and cancelled requests produce an empty 204.
func respondServiceError(c *gin.Context, err error, action string) {
	logger := getLogger(c)

	var ve *booking.ValidationError
	var le *auth.LoginError
	var rf *remote.RequestFailedError
	var ne *remote.NetworkError

	switch {
	case errors.Is(err, booking.ErrSuperseded), remote.IsCancelled(err), errors.Is(err, context.Canceled):
		logger.Debug("Request dropped", zap.String("action", action), zap.Error(err))
		c.Status(http.StatusNoContent)
	case errors.As(err, &ve):
		utils.JSONErrorCode(c, http.StatusBadRequest, CodeValidation, ve.Message, ve.Field)
	case errors.As(err, &le):
		utils.JSONErrorCode(c, http.StatusUnauthorized, CodeLoginRejected, le.Message, "")
	case errors.Is(err, booking.ErrCheckoutNotFound):
		utils.JSONErrorCode(c, http.StatusNotFound, CodeNoCheckout, "No checkout in progress", "")
	case errors.Is(err, session.ErrNotFound):
		utils.JSONErrorCode(c, http.StatusUnauthorized, CodeRelogin, msgRelogin, "")
	case remote.IsNotFound(err):
		utils.JSONErrorCode(c, http.StatusNotFound, CodeAbsent, action+": not found", "")
	case errors.As(err, &rf):
		if rf.Status == http.StatusUnauthorized || rf.Status == http.StatusForbidden {
			utils.JSONErrorCode(c, http.StatusUnauthorized, CodeRelogin, msgRelogin, "")
			return
		}
		msg := rf.Message
		if msg == "" {
			msg = msgRetry
		}
		utils.JSONErrorCode(c, http.StatusBadGateway, CodeRetry, msg, action)
	case errors.As(err, &ne):
		utils.JSONErrorCode(c, http.StatusServiceUnavailable, CodeOffline, msgOffline, action)
	case errors.Is(err, payment.ErrPaymentsDisabled):
		utils.JSONErrorCode(c, http.StatusServiceUnavailable, CodePaymentsDisabled, "Online payment is not available", "")
	default:
		logger.Error("Unhandled service error", zap.String("action", action), zap.Error(err))
		utils.JSONErrorCode(c, http.StatusInternalServerError, CodeInternal, msgRetry, action)
	}
}

// requireSession fetches the session set by middleware.SessionAuth.
func requireSession(c *gin.Context) (*models.Session, bool) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization", "code": 0})
		return nil, false
	}
	return sess, true
}

// bookingIDParam reads the numeric :id path parameter.
func bookingIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.JSONErrorCode(c, http.StatusBadRequest, CodeValidation, "Invalid booking id", "id")
		return 0, false
	}
	return id, true
}

func badRequest(c *gin.Context, err error) {
	getLogger(c).Debug("Invalid request payload", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
}
