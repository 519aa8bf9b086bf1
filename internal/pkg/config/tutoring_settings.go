package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// TutoringSettings holds the tunables of the tutoring workflow.
type TutoringSettings struct {
	RequestTTL        time.Duration `mapstructure:"request_ttl" validate:"required,min=1h"`
	DefaultHourlyRate float64       `mapstructure:"default_hourly_rate" validate:"gte=0"`
}

// Validate checks that all fields in TutoringSettings are valid
func (s *TutoringSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for TutoringSettings: %w", err)
	}

	return nil
}
