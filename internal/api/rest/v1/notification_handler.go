package v1

import (
	"net/http"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/notifications"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// NotificationHandler lists the caller's notifications and marks them read
type NotificationHandler interface {
	List(ctx *gin.Context)
	MarkRead(ctx *gin.Context)
}

type notificationHandler struct {
	notificationService notifications.NotificationService
	logger              logger.Logger
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService notifications.NotificationService, logger logger.Logger) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
		logger:              logger,
	}
}

func (handler *notificationHandler) List(ctx *gin.Context) {
	claims := sessionClaims(ctx)

	notices, err := handler.notificationService.ListForUser(ctx.Request.Context(), claims.UserID)
	if err != nil {
		respondError(ctx, handler.logger, "failed to list notifications", err)
		return
	}

	response := make([]NotificationResponse, 0, len(notices))
	for _, notice := range notices {
		response = append(response, newNotificationResponse(notice))
	}

	ctx.JSON(http.StatusOK, response)
}

func (handler *notificationHandler) MarkRead(ctx *gin.Context) {
	claims := sessionClaims(ctx)

	var payload MarkReadPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		badRequest(ctx, "invalid notification data: %v", err)
		return
	}

	if err := payload.Validate(); err != nil {
		badRequest(ctx, "%v", err)
		return
	}

	notice, err := handler.notificationService.MarkRead(ctx.Request.Context(), claims.UserID, payload.NotificationID)
	if err != nil {
		respondError(ctx, handler.logger, "failed to mark notification read", err)
		return
	}

	ctx.JSON(http.StatusOK, newNotificationResponse(notice))
}
