//go:build unit
// +build unit

package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/config"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRevocationStore_ExpiresEntries(t *testing.T) {
	store := NewMemoryRevocationStore().(*memoryRevocationStore)
	ctx := context.Background()
	now := time.Now()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Revoke(ctx, "a", now.Add(time.Minute)))

	revoked, err := store.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "b")
	require.NoError(t, err)
	assert.False(t, revoked)

	now = now.Add(2 * time.Minute)
	revoked, err = store.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.Empty(t, store.revoked)
}

func TestMemoryRevocationStore_Concurrent(t *testing.T) {
	store := NewMemoryRevocationStore()
	ctx := context.Background()
	until := time.Now().Add(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_ = store.Revoke(ctx, id, until)
			_, _ = store.IsRevoked(ctx, id)
		}(string(rune('a' + i%26)))
	}
	wg.Wait()

	revoked, err := store.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestNewRevocationStore(t *testing.T) {
	log := testutil.SetupTestLogger(t)

	store, err := NewRevocationStore(context.Background(), &config.SessionStoreSettings{Type: config.SessionStoreMemory}, log)
	require.NoError(t, err)
	assert.IsType(t, &memoryRevocationStore{}, store)

	_, err = NewRevocationStore(context.Background(), &config.SessionStoreSettings{Type: config.SessionStoreRedis}, log)
	assert.Error(t, err, "redis store requires an address")
}
