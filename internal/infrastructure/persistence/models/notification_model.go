package models

import (
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/notifications"
)

// NotificationModel is the GORM database model for notifications
type NotificationModel struct {
	ID              string     `gorm:"primaryKey;type:uuid"`
	UserID          string     `gorm:"not null;index;type:uuid"`
	Title           string     `gorm:"not null;type:varchar(200)"`
	Message         string     `gorm:"not null;type:varchar(1000)"`
	Type            string     `gorm:"not null;type:varchar(30)"`
	IsRead          bool       `gorm:"not null;default:false"`
	ReadAt          *time.Time
	DateTimeCreated time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (NotificationModel) TableName() string {
	return "notifications"
}

func (m *NotificationModel) ToDomain() *notifications.Notification {
	return &notifications.Notification{
		ID:              m.ID,
		UserID:          m.UserID,
		Title:           m.Title,
		Message:         m.Message,
		Type:            m.Type,
		IsRead:          m.IsRead,
		ReadAt:          m.ReadAt,
		DateTimeCreated: m.DateTimeCreated,
	}
}

func (m *NotificationModel) FromDomain(n *notifications.Notification) {
	m.ID = n.ID
	m.UserID = n.UserID
	m.Title = n.Title
	m.Message = n.Message
	m.Type = n.Type
	m.IsRead = n.IsRead
	m.ReadAt = n.ReadAt
	m.DateTimeCreated = n.DateTimeCreated
}
