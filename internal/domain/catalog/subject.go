package catalog

import (
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/validators"
)

// Subject is a course (asignatura) taught within a program.
type Subject struct {
	ID              string    `validate:"required,uuid4"`
	Code            string    `validate:"required,academic_code"`
	Name            string    `validate:"required,min=3,max=150"`
	Description     string    `validate:"omitempty,max=1000"`
	Department      string    `validate:"omitempty,max=150"`
	Credits         int       `validate:"min=1,max=12"`
	ProgramID       string    `validate:"required,uuid4"`
	Semester        int       `validate:"min=1,max=12"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Subject struct
func (s *Subject) Validate() error {
	return validators.Struct(s)
}
