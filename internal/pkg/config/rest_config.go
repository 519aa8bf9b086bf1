package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variables overriding file settings,
// e.g. TUTORIA_DATABASE_DSN overrides database.dsn.
const EnvPrefix = "TUTORIA"

// RestConfig is the configuration of the REST API process.
type RestConfig struct {
	Port         string               `mapstructure:"port" validate:"required,numeric"`
	AllowOrigins []string             `mapstructure:"allow_origins" validate:"required,min=1"`
	Database     DatabaseSettings     `mapstructure:"database"`
	Logger       LoggerSettings       `mapstructure:"logger"`
	Auth         AuthSettings         `mapstructure:"auth"`
	SessionStore SessionStoreSettings `mapstructure:"session_store"`
	Tutoring     TutoringSettings     `mapstructure:"tutoring"`
}

// Validate checks the top-level fields and every nested settings block
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	nested := []interface{ Validate() error }{
		&c.Database,
		&c.Logger,
		&c.Auth,
		&c.SessionStore,
		&c.Tutoring,
	}
	for _, s := range nested {
		if err := s.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// InitializeRestConfig reads the YAML file at path, applies environment
// overrides and defaults, and returns the validated configuration.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("allow_origins", []string{"*"})
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "tutoria.db")
	v.SetDefault("database.name", "")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "tutoria")
	v.SetDefault("auth.token_ttl", "24h")
	v.SetDefault("auth.cookie_name", "tutoria_session")
	v.SetDefault("auth.secure_cookie", false)
	v.SetDefault("session_store.type", SessionStoreMemory)
	v.SetDefault("session_store.addr", "")
	v.SetDefault("session_store.password", "")
	v.SetDefault("session_store.db", 0)
	v.SetDefault("tutoring.request_ttl", "168h")
	v.SetDefault("tutoring.default_hourly_rate", 25.0)

	return v
}
