package validators

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is wrapped by every error Struct reports for invalid field values.
var ErrValidation = errors.New("validation failed")

// New returns a validator with the custom tags registered:
// academic_code, isodate, clock and bcrypt_password.
func New() (*validator.Validate, error) {
	validate := validator.New()

	custom := map[string]validator.Func{
		"academic_code":   AcademicCodeValidation,
		"isodate":         DateValidation,
		"clock":           ClockValidation,
		"bcrypt_password": PasswordValidation,
	}
	for tag, fn := range custom {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("failed to register custom validator %s: %w", tag, err)
		}
	}

	return validate, nil
}

// Struct validates s and flattens field errors into a single message.
func Struct(s any) error {
	validate, err := New()
	if err != nil {
		return err
	}

	err = validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: %v", ErrValidation, messages)
	}
	return fmt.Errorf("validation error: %w", err)
}
