package tutoring

import (
	"fmt"
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/validators"
)

// Session is a scheduled tutoring session created from an accepted request.
type Session struct {
	ID              string    `validate:"required,uuid4"`
	RequestID       string    `validate:"required,uuid4"`
	StudentID       string    `validate:"required,uuid4"`
	InstructorID    string    `validate:"required,uuid4"`
	SubjectID       string    `validate:"required,uuid4"`
	Title           string    `validate:"required,max=200"`
	Description     string    `validate:"max=2000"`
	ScheduledDate   string    `validate:"required,isodate"`
	StartTime       string    `validate:"required,clock"`
	EndTime         string    `validate:"required,clock"`
	DurationMinutes int       `validate:"min=1,max=600"`
	Status          string    `validate:"required,oneof=pending confirmed in_progress completed cancelled"`
	LocationType    string    `validate:"required,oneof=virtual in_person"`
	LocationDetails string    `validate:"max=500"`
	Price           float64   `validate:"gte=0"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Session struct
func (s *Session) Validate() error {
	return validators.Struct(s)
}

// AcceptInput is what an instructor submits to accept a request.
// Description defaults to the request message and LocationType to virtual.
type AcceptInput struct {
	RequestID       string  `validate:"required,uuid4"`
	Title           string  `validate:"required,max=200"`
	Description     string  `validate:"max=2000"`
	ScheduledDate   string  `validate:"required,isodate"`
	StartTime       string  `validate:"required,clock"`
	EndTime         string  `validate:"required,clock"`
	DurationMinutes int     `validate:"min=1,max=600"`
	LocationType    string  `validate:"omitempty,oneof=virtual in_person"`
	LocationDetails string  `validate:"max=500"`
	Price           float64 `validate:"gte=0"`
}

// Validate for validating AcceptInput struct. EndTime must follow StartTime.
func (in *AcceptInput) Validate() error {
	if err := validators.Struct(in); err != nil {
		return err
	}
	// zero-padded HH:MM strings order like the times they denote
	if in.EndTime <= in.StartTime {
		return fmt.Errorf("%w: [Field: EndTime, Tag: after_start]", validators.ErrValidation)
	}
	return nil
}
