package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Session store types
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// AuthSettings configures session tokens handed out on login and signup.
type AuthSettings struct {
	JWTSecret    string        `mapstructure:"jwt_secret" validate:"required,min=32"`
	Issuer       string        `mapstructure:"issuer" validate:"required"`
	TokenTTL     time.Duration `mapstructure:"token_ttl" validate:"required,min=1m"`
	CookieName   string        `mapstructure:"cookie_name" validate:"required,max=64"`
	SecureCookie bool          `mapstructure:"secure_cookie"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	return nil
}

// SessionStoreSettings selects where revoked session tokens are remembered.
type SessionStoreSettings struct {
	Type     string `mapstructure:"type" validate:"required,oneof=memory redis"`
	Addr     string `mapstructure:"addr" validate:"required_if=Type redis"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"min=0,max=15"`
}

// Validate checks that all fields in SessionStoreSettings are valid
func (s *SessionStoreSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for SessionStoreSettings: %w", err)
	}

	return nil
}
