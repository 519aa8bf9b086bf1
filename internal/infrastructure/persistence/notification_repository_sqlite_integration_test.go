//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/notifications"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationSqliteRepository_ListLatest(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	userID := uuid.NewString()
	base := time.Now().Add(-time.Hour)
	var last *notifications.Notification
	for i := 0; i < 12; i++ {
		last = &notifications.Notification{
			ID:              uuid.NewString(),
			UserID:          userID,
			Title:           "Nueva solicitud",
			Message:         "Tienes una nueva solicitud de tutoría",
			Type:            notifications.TypeTutoringRequest,
			DateTimeCreated: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, tc.NotificationRepo.Create(ctx, last))
	}

	list, err := tc.NotificationRepo.ListByUser(ctx, userID, notifications.DefaultListLimit)
	require.NoError(t, err)
	require.Len(t, list, notifications.DefaultListLimit)
	assert.Equal(t, last.ID, list[0].ID)

	other, err := tc.NotificationRepo.ListByUser(ctx, uuid.NewString(), notifications.DefaultListLimit)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestNotificationSqliteRepository_MarkRead(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	n := &notifications.Notification{
		ID:              uuid.NewString(),
		UserID:          uuid.NewString(),
		Title:           "Solicitud aceptada",
		Message:         "Tu tutoría fue confirmada",
		Type:            notifications.TypeTutoringAccepted,
		DateTimeCreated: time.Now(),
	}
	require.NoError(t, tc.NotificationRepo.Create(ctx, n))

	readAt := time.Now()
	require.NoError(t, tc.NotificationRepo.MarkRead(ctx, n.ID, readAt))

	stored, err := tc.NotificationRepo.GetByID(ctx, n.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsRead)
	require.NotNil(t, stored.ReadAt)

	err = tc.NotificationRepo.MarkRead(ctx, uuid.NewString(), readAt)
	assert.ErrorIs(t, err, notifications.ErrNotFound)
}
