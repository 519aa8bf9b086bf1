package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/accounts"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/catalog"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/notifications"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/tutoring"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/logger"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/validators"

	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, validators.ErrValidation),
		errors.Is(err, tutoring.ErrSubjectNotTaught):
		return http.StatusBadRequest
	case errors.Is(err, accounts.ErrInvalidCredentials),
		errors.Is(err, accounts.ErrInvalidToken),
		errors.Is(err, accounts.ErrRevokedToken):
		return http.StatusUnauthorized
	case errors.Is(err, accounts.ErrInactiveUser),
		errors.Is(err, tutoring.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, accounts.ErrNotFound),
		errors.Is(err, tutoring.ErrNotFound),
		errors.Is(err, notifications.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrConflict),
		errors.Is(err, accounts.ErrEmailExists),
		errors.Is(err, tutoring.ErrInvalidState),
		errors.Is(err, tutoring.ErrExpired):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError answers with the status mapped from err. Unmapped errors
// are logged and answered with action alone.
func respondError(ctx *gin.Context, log logger.Logger, action string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error(action, "error", err, "path", ctx.Request.URL.Path)
		ctx.JSON(status, ErrorResponse{Message: action})
		return
	}
	ctx.JSON(status, ErrorResponse{Message: fmt.Sprintf("%s: %v", action, err)})
}

func badRequest(ctx *gin.Context, format string, args ...any) {
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf(format, args...)})
}
