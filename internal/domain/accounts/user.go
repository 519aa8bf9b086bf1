package accounts

import (
	"strings"
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/validators"
)

// Roles
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// User is a login account. Student fields are only set for RoleStudent.
type User struct {
	ID              string    `validate:"required,uuid4"`
	Email           string    `validate:"required,email,max=255"`
	PasswordHash    string    `validate:"required"`
	FirstName       string    `validate:"required,max=100"`
	LastName        string    `validate:"required,max=100"`
	Role            string    `validate:"required,oneof=student teacher admin"`
	IsActive        bool
	StudentCode     string    `validate:"required_if=Role student,max=30"`
	ProgramID       *string   `validate:"omitempty,uuid4"`
	Semester        int       `validate:"min=0,max=12"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating User struct
func (u *User) Validate() error {
	return validators.Struct(u)
}

// RegisterInput carries a public signup. Admin accounts cannot be created this way.
type RegisterInput struct {
	Email     string `validate:"required,email,max=255"`
	Password  string `validate:"required,min=8,bcrypt_password"`
	FirstName string `validate:"required,max=100"`
	LastName  string `validate:"required,max=100"`
	Role      string `validate:"required,oneof=student teacher"`

	StudentCode string  `validate:"required_if=Role student,max=30"`
	ProgramID   *string `validate:"omitempty,uuid4"`
	Semester    int     `validate:"min=0,max=12"`

	Department      string `validate:"required_if=Role teacher,max=150"`
	Specialization  string `validate:"max=150"`
	Bio             string `validate:"max=2000"`
	ExperienceYears int    `validate:"min=0,max=60"`
}

// Validate for validating RegisterInput struct
func (in *RegisterInput) Validate() error {
	return validators.Struct(in)
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
