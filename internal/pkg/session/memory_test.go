package session

import (
	"context"
	"testing"
	"time"

	"github.com/gastrodesk/backoffice-api/internal/domain/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sess := auth.Session{ID: "s1", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}

	require.NoError(t, store.Create(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestMemoryStore_ExpiredSessionIsGone(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Create(ctx, auth.Session{ID: "old", ExpiresAt: now.Add(-time.Second)}))
	require.NoError(t, store.Create(ctx, auth.Session{ID: "live", ExpiresAt: now.Add(time.Hour)}))

	_, err := store.Get(ctx, "old")
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)

	require.NoError(t, store.Create(ctx, auth.Session{ID: "stale", ExpiresAt: now}))
	assert.Equal(t, 1, store.Sweep(ctx))
	assert.Equal(t, 1, store.Len())
}
