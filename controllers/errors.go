package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"backend/pkg/resp"
	"backend/services"
)

var log = zap.NewNop()

// UseLogger routes unexpected-error logging through the given logger.
func UseLogger(l *zap.Logger) {
	log = l
}

// fail maps service errors onto the response envelope. Unexpected errors
// are logged with their cause and hidden behind a generic message.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrCustomQuote),
		errors.Is(err, services.ErrInvalidCategory):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrPendingApproval),
		errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrConflict),
		errors.Is(err, services.ErrDuplicateEmail):
		resp.Conflict(c, err.Error())
	default:
		log.Error("unhandled service error",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		resp.ServerError(c, "internal server error")
	}
}
