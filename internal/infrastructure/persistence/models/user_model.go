package models

import (
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/accounts"
)

// UserModel is the GORM database model for login accounts
type UserModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Email           string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	PasswordHash    string    `gorm:"not null;type:varchar(100)"`
	FirstName       string    `gorm:"not null;type:varchar(100)"`
	LastName        string    `gorm:"not null;type:varchar(100)"`
	Role            string    `gorm:"not null;index;type:varchar(20)"`
	IsActive        bool      `gorm:"not null;default:true"`
	StudentCode     string    `gorm:"type:varchar(30)"`
	ProgramID       *string   `gorm:"type:uuid;index"`
	Semester        int       `gorm:"not null;default:0"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *accounts.User {
	return &accounts.User{
		ID:              m.ID,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Role:            m.Role,
		IsActive:        m.IsActive,
		StudentCode:     m.StudentCode,
		ProgramID:       m.ProgramID,
		Semester:        m.Semester,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *accounts.User) {
	m.ID = u.ID
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.FirstName = u.FirstName
	m.LastName = u.LastName
	m.Role = u.Role
	m.IsActive = u.IsActive
	m.StudentCode = u.StudentCode
	m.ProgramID = u.ProgramID
	m.Semester = u.Semester
	m.DateTimeCreated = u.DateTimeCreated
}
