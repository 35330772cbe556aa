package session

import (
	"context"
	"testing"
	"time"

	"github.com/Tharusha999/isdn-sub001/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeIdentity() auth.Identity {
	return auth.Identity{
		ID:       "0c7f3f52-93dd-4a52-8f71-000000000001",
		Username: "john",
		Email:    "john@example.com",
		FullName: "John Silva",
		Role:     auth.RoleAdmin,
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	s := Session{
		SessionID: "sid-1",
		Identity:  completeIdentity(),
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	require.NoError(t, store.Create(ctx, s))

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, s.Identity, got.Identity)

	require.NoError(t, store.Delete(ctx, "sid-1"))

	got, err = store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreRejectsPartialSession(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	partial := completeIdentity()
	partial.Email = ""

	err := store.Create(ctx, Session{
		SessionID: "sid-1",
		Identity:  partial,
		ExpiresAt: time.Now().Add(time.Hour),
	})
	assert.Error(t, err)

	// Nothing was persisted.
	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreRejectsPastExpiry(t *testing.T) {
	store := NewMemoryStore()

	err := store.Create(context.Background(), Session{
		SessionID: "sid-1",
		Identity:  completeIdentity(),
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	assert.Error(t, err)
}

func TestMemoryStoreExpiresSessions(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, Session{
		SessionID: "sid-1",
		Identity:  completeIdentity(),
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(5 * time.Millisecond),
	}))

	time.Sleep(20 * time.Millisecond)

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreDeleteIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	assert.NoError(t, store.Delete(context.Background(), "never-existed"))
}

func TestSessionValid(t *testing.T) {
	now := time.Now()

	valid := Session{
		SessionID: "sid-1",
		Identity:  completeIdentity(),
		ExpiresAt: now.Add(time.Hour),
	}
	assert.True(t, valid.Valid(now))

	expired := valid
	expired.ExpiresAt = now.Add(-time.Second)
	assert.False(t, expired.Valid(now))

	partial := valid
	partial.Identity.Role = ""
	assert.False(t, partial.Valid(now))

	anonymous := valid
	anonymous.SessionID = ""
	assert.False(t, anonymous.Valid(now))
}

func TestGenerateID(t *testing.T) {
	a, err := GenerateID()
	require.NoError(t, err)

	b, err := GenerateID()
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
