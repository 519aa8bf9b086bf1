//go:build integration
// +build integration

package session

import (
	"context"
	"testing"
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/config"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRevocationStore_RevokeAndExpire(t *testing.T) {
	ctx := context.Background()
	settings := &config.SessionStoreSettings{
		Type: config.SessionStoreRedis,
		Addr: "localhost:6379",
	}

	store, err := NewRevocationStore(ctx, settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	tokenID := uuid.NewString()
	require.NoError(t, store.Revoke(ctx, tokenID, time.Now().Add(2*time.Second)))

	revoked, err := store.IsRevoked(ctx, tokenID)
	require.NoError(t, err)
	assert.True(t, revoked)

	time.Sleep(3 * time.Second)

	revoked, err = store.IsRevoked(ctx, tokenID)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, uuid.NewString(), time.Now().Add(-time.Minute)))
}
