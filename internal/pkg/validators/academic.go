// Package validators holds the custom validation tags shared by domain
// entities and request payloads.
package validators

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var academicCodePattern = regexp.MustCompile(`^[A-Z0-9]+(-[A-Z0-9]+)*$`)

// AcademicCodeValidation accepts upper-case program and subject codes such as "ING-SW" or "MAT101".
func AcademicCodeValidation(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	return len(code) >= 2 && len(code) <= 20 && academicCodePattern.MatchString(code)
}

// DateValidation accepts calendar dates in YYYY-MM-DD form.
func DateValidation(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}

// ClockValidation accepts zero-padded 24h wall-clock times in HH:MM form.
func ClockValidation(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) != len("15:04") {
		return false
	}
	_, err := time.Parse("15:04", value)
	return err == nil
}

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// PasswordValidation rejects passwords bcrypt cannot hash. The limit is in bytes, not characters.
func PasswordValidation(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= MaxPasswordBytes
}
