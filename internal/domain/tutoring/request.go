package tutoring

import (
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/validators"
)

// Request is a student's ask for a tutoring session with an instructor.
type Request struct {
	ID              string    `validate:"required,uuid4"`
	StudentID       string    `validate:"required,uuid4"`
	InstructorID    string    `validate:"required,uuid4"`
	SubjectID       string    `validate:"required,uuid4"`
	PreferredDate   string    `validate:"required,isodate"`
	PreferredTime   string    `validate:"required,clock"`
	Message         string    `validate:"max=2000"`
	UrgencyLevel    string    `validate:"required,oneof=low medium high"`
	Status          string    `validate:"required,oneof=pending accepted rejected expired"`
	DateTimeCreated time.Time `validate:"required"`
	ExpiresAt       time.Time `validate:"required,gtfield=DateTimeCreated"`
}

// Validate for validating Request struct
func (r *Request) Validate() error {
	return validators.Struct(r)
}

// IsExpired reports whether the request is still pending past its expiry.
func (r *Request) IsExpired(now time.Time) bool {
	return r.Status == RequestPending && !now.Before(r.ExpiresAt)
}

// RequestInput is what a student submits to ask for tutoring.
type RequestInput struct {
	InstructorID  string `validate:"required,uuid4"`
	SubjectID     string `validate:"required,uuid4"`
	PreferredDate string `validate:"required,isodate"`
	PreferredTime string `validate:"required,clock"`
	Message       string `validate:"max=2000"`
	UrgencyLevel  string `validate:"omitempty,oneof=low medium high"`
}

// Validate for validating RequestInput struct
func (in *RequestInput) Validate() error {
	return validators.Struct(in)
}

// RequestQuery filters request listings. Empty fields match everything.
type RequestQuery struct {
	StudentID    string
	InstructorID string
	Status       string
}
