package catalog

import (
	"slices"
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/validators"
)

// Instructor is a tutor (docente). UserID links the profile to a login
// account once the instructor has signed up.
type Instructor struct {
	ID              string    `validate:"required,uuid4"`
	FirstName       string    `validate:"required,max=100"`
	LastName        string    `validate:"required,max=100"`
	Email           string    `validate:"required,email,max=255"`
	Department      string    `validate:"required,max=150"`
	Specialization  string    `validate:"omitempty,max=150"`
	Bio             string    `validate:"omitempty,max=2000"`
	ExperienceYears int       `validate:"min=0,max=60"`
	HourlyRate      float64   `validate:"gte=0"`
	SubjectIDs      []string  `validate:"dive,uuid4"`
	UserID          *string   `validate:"omitempty,uuid4"`
	IsVerified      bool
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Instructor struct
func (i *Instructor) Validate() error {
	return validators.Struct(i)
}

// FullName returns "FirstName LastName".
func (i *Instructor) FullName() string {
	return i.FirstName + " " + i.LastName
}

// Teaches reports whether the instructor can tutor subjectID. An instructor
// without listed subjects is treated as teaching any subject.
func (i *Instructor) Teaches(subjectID string) bool {
	return len(i.SubjectIDs) == 0 || slices.Contains(i.SubjectIDs, subjectID)
}

// IsOwnedBy reports whether userID is the account linked to this profile.
func (i *Instructor) IsOwnedBy(userID string) bool {
	return i.UserID != nil && *i.UserID == userID
}
