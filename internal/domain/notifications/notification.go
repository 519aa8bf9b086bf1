// Package notifications defines the in-app notices users receive when a
// tutoring request addressed to them is filed, accepted or rejected.
package notifications

import (
	"context"
	"errors"
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/validators"
)

// Notification types
const (
	TypeTutoringRequest  = "tutoring_request"
	TypeTutoringAccepted = "tutoring_accepted"
	TypeTutoringRejected = "tutoring_rejected"
)

// DefaultListLimit is how many notifications a listing returns.
const DefaultListLimit = 10

var ErrNotFound = errors.New("notification not found")

// Notification is a message addressed to one user.
type Notification struct {
	ID              string     `validate:"required,uuid4"`
	UserID          string     `validate:"required,uuid4"`
	Title           string     `validate:"required,max=200"`
	Message         string     `validate:"required,max=1000"`
	Type            string     `validate:"required,oneof=tutoring_request tutoring_accepted tutoring_rejected"`
	IsRead          bool
	ReadAt          *time.Time
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Notification struct
func (n *Notification) Validate() error {
	return validators.Struct(n)
}

// NotificationService stores and lists notifications.
type NotificationService interface {
	Notify(ctx context.Context, userID, notificationType, title, message string) (*Notification, error)
	// ListForUser returns the latest DefaultListLimit notifications of userID, newest first.
	ListForUser(ctx context.Context, userID string) ([]*Notification, error)
	// MarkRead flags a notification of userID as read. Notifications of
	// other users are reported as ErrNotFound.
	MarkRead(ctx context.Context, userID, notificationID string) (*Notification, error)
}

// Repository defines persistence for notifications
type Repository interface {
	Create(ctx context.Context, notification *Notification) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*Notification, error)
	GetByID(ctx context.Context, notificationID string) (*Notification, error)
	MarkRead(ctx context.Context, notificationID string, at time.Time) error
}
