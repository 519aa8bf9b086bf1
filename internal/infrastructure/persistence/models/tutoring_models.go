package models

import (
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/tutoring"
)

// TutoringRequestModel is the GORM database model for tutoring requests
type TutoringRequestModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	StudentID       string    `gorm:"not null;index;type:uuid"`
	InstructorID    string    `gorm:"not null;index;type:uuid"`
	SubjectID       string    `gorm:"not null;index;type:uuid"`
	PreferredDate   string    `gorm:"not null;type:varchar(10)"`
	PreferredTime   string    `gorm:"not null;type:varchar(5)"`
	Message         string    `gorm:"type:text"`
	UrgencyLevel    string    `gorm:"not null;type:varchar(10);default:medium"`
	Status          string    `gorm:"not null;index;type:varchar(10);default:pending"`
	DateTimeCreated time.Time `gorm:"not null"`
	ExpiresAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (TutoringRequestModel) TableName() string {
	return "tutoring_requests"
}

// ToDomain converts GORM model to domain entity
func (m *TutoringRequestModel) ToDomain() *tutoring.Request {
	return &tutoring.Request{
		ID:              m.ID,
		StudentID:       m.StudentID,
		InstructorID:    m.InstructorID,
		SubjectID:       m.SubjectID,
		PreferredDate:   m.PreferredDate,
		PreferredTime:   m.PreferredTime,
		Message:         m.Message,
		UrgencyLevel:    m.UrgencyLevel,
		Status:          m.Status,
		DateTimeCreated: m.DateTimeCreated,
		ExpiresAt:       m.ExpiresAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TutoringRequestModel) FromDomain(r *tutoring.Request) {
	m.ID = r.ID
	m.StudentID = r.StudentID
	m.InstructorID = r.InstructorID
	m.SubjectID = r.SubjectID
	m.PreferredDate = r.PreferredDate
	m.PreferredTime = r.PreferredTime
	m.Message = r.Message
	m.UrgencyLevel = r.UrgencyLevel
	m.Status = r.Status
	m.DateTimeCreated = r.DateTimeCreated
	m.ExpiresAt = r.ExpiresAt
}

// TutoringSessionModel is the GORM database model for tutoring sessions.
// A request yields at most one session.
type TutoringSessionModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	RequestID       string    `gorm:"not null;uniqueIndex;type:uuid"`
	StudentID       string    `gorm:"not null;index;type:uuid"`
	InstructorID    string    `gorm:"not null;index;type:uuid"`
	SubjectID       string    `gorm:"not null;type:uuid"`
	Title           string    `gorm:"not null;type:varchar(200)"`
	Description     string    `gorm:"type:text"`
	ScheduledDate   string    `gorm:"not null;type:varchar(10)"`
	StartTime       string    `gorm:"not null;type:varchar(5)"`
	EndTime         string    `gorm:"not null;type:varchar(5)"`
	DurationMinutes int       `gorm:"not null"`
	Status          string    `gorm:"not null;type:varchar(20)"`
	LocationType    string    `gorm:"not null;type:varchar(20)"`
	LocationDetails string    `gorm:"type:varchar(500)"`
	Price           float64   `gorm:"not null;default:0"`
	DateTimeCreated time.Time `gorm:"not null"`
}

func (TutoringSessionModel) TableName() string {
	return "tutoring_sessions"
}

func (m *TutoringSessionModel) ToDomain() *tutoring.Session {
	return &tutoring.Session{
		ID:              m.ID,
		RequestID:       m.RequestID,
		StudentID:       m.StudentID,
		InstructorID:    m.InstructorID,
		SubjectID:       m.SubjectID,
		Title:           m.Title,
		Description:     m.Description,
		ScheduledDate:   m.ScheduledDate,
		StartTime:       m.StartTime,
		EndTime:         m.EndTime,
		DurationMinutes: m.DurationMinutes,
		Status:          m.Status,
		LocationType:    m.LocationType,
		LocationDetails: m.LocationDetails,
		Price:           m.Price,
		DateTimeCreated: m.DateTimeCreated,
	}
}

func (m *TutoringSessionModel) FromDomain(s *tutoring.Session) {
	m.ID = s.ID
	m.RequestID = s.RequestID
	m.StudentID = s.StudentID
	m.InstructorID = s.InstructorID
	m.SubjectID = s.SubjectID
	m.Title = s.Title
	m.Description = s.Description
	m.ScheduledDate = s.ScheduledDate
	m.StartTime = s.StartTime
	m.EndTime = s.EndTime
	m.DurationMinutes = s.DurationMinutes
	m.Status = s.Status
	m.LocationType = s.LocationType
	m.LocationDetails = s.LocationDetails
	m.Price = s.Price
	m.DateTimeCreated = s.DateTimeCreated
}
