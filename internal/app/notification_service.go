package app

import (
	"context"
	"fmt"
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/notifications"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/logger"

	"github.com/google/uuid"
)

// notificationService implements the NotificationService interface
type notificationService struct {
	repo   notifications.Repository
	logger logger.Logger
	now    func() time.Time
}

// NewNotificationService creates a new instance of NotificationService
func NewNotificationService(repo notifications.Repository, logger logger.Logger) (notifications.NotificationService, error) {
	return &notificationService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}, nil
}

func (s *notificationService) Notify(ctx context.Context, userID, notificationType, title, message string) (*notifications.Notification, error) {
	n := &notifications.Notification{
		ID:              uuid.NewString(),
		UserID:          userID,
		Title:           title,
		Message:         message,
		Type:            notificationType,
		DateTimeCreated: s.now(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to store notification: %w", err)
	}
	return n, nil
}

func (s *notificationService) ListForUser(ctx context.Context, userID string) ([]*notifications.Notification, error) {
	list, err := s.repo.ListByUser(ctx, userID, notifications.DefaultListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return list, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID string) (*notifications.Notification, error) {
	n, err := s.repo.GetByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	// other users' notifications are indistinguishable from missing ones
	if n.UserID != userID {
		return nil, fmt.Errorf("notification %s: %w", notificationID, notifications.ErrNotFound)
	}
	if n.IsRead {
		return n, nil
	}

	at := s.now()
	if err := s.repo.MarkRead(ctx, notificationID, at); err != nil {
		return nil, err
	}
	n.IsRead = true
	n.ReadAt = &at
	return n, nil
}
