package session

import (
	"context"
	"fmt"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/accounts"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/config"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/logger"
)

// NewRevocationStore builds the store selected by settings.Type
func NewRevocationStore(ctx context.Context, settings *config.SessionStoreSettings, logger logger.Logger) (accounts.RevocationStore, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.Type {
	case config.SessionStoreMemory:
		return NewMemoryRevocationStore(), nil
	case config.SessionStoreRedis:
		return NewRedisRevocationStore(ctx, settings, logger)
	default:
		return nil, fmt.Errorf("unsupported session store type: %s", settings.Type)
	}
}
