package commands

import (
	"fmt"
	"os"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/infrastructure/persistence"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/config"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const (
	configFlag        = "config"
	defaultConfigPath = "configs/rest-app.yaml"
)

// AddConfigFlag registers the persistent --config flag on root
func AddConfigFlag(root *cobra.Command) {
	root.PersistentFlags().String(configFlag, "", "Path to the YAML configuration (defaults to CONFIG_PATH, then "+defaultConfigPath+")")
}

func configPath(cmd *cobra.Command) string {
	if path, err := cmd.Flags().GetString(configFlag); err == nil && path != "" {
		return path
	}
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return defaultConfigPath
}

// environment is what every database-backed command needs
type environment struct {
	cfg    *config.RestConfig
	db     *gorm.DB
	logger logger.Logger
}

// openEnvironment loads the configuration, initializes the logger and
// opens the database, migrating the schema first.
func openEnvironment(cmd *cobra.Command) (*environment, error) {
	cfg, err := config.InitializeRestConfig(configPath(cmd))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		_ = persistence.CloseDB(db)
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &environment{cfg: cfg, db: db, logger: log}, nil
}

func (e *environment) close() {
	if err := persistence.CloseDB(e.db); err != nil {
		e.logger.Warn("Failed to close database", "error", err)
	}
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}
