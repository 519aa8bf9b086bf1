package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/notifications"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/infrastructure/persistence/models"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormNotificationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormNotificationRepository creates a new GORM-based notifications Repository implementation
func NewGormNotificationRepository(db *gorm.DB, logger logger.Logger) (notifications.Repository, error) {
	return &gormNotificationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormNotificationRepository) Create(ctx context.Context, notification *notifications.Notification) error {
	if err := notification.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.NotificationModel{}
	model.FromDomain(notification)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	r.logger.Debug("Created notification", "id", notification.ID, "user_id", notification.UserID)
	return nil
}

func (r *gormNotificationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*notifications.Notification, error) {
	var modelList []*models.NotificationModel
	dbQuery := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_time_created desc")
	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	list := make([]*notifications.Notification, len(modelList))
	for i, model := range modelList {
		list[i] = model.ToDomain()
	}
	return list, nil
}

func (r *gormNotificationRepository) GetByID(ctx context.Context, notificationID string) (*notifications.Notification, error) {
	var model models.NotificationModel
	if err := r.db.WithContext(ctx).Where("id = ?", notificationID).First(&model).Error; err != nil {
		return nil, notFound(err, "notification", notificationID, notifications.ErrNotFound)
	}
	return model.ToDomain(), nil
}

func (r *gormNotificationRepository) MarkRead(ctx context.Context, notificationID string, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("id = ?", notificationID).
		Updates(map[string]any{"is_read": true, "read_at": at})
	if result.Error != nil {
		return fmt.Errorf("failed to update notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification %s: %w", notificationID, notifications.ErrNotFound)
	}
	return nil
}
