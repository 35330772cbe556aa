package nav

import (
	"context"
	"testing"
	"time"

	"github.com/Tharusha999/isdn-sub001/internal/auth"
	"github.com/Tharusha999/isdn-sub001/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIdentity(role auth.Role) auth.Identity {
	return auth.Identity{
		ID:       "3f1c2b6a-0000-0000-0000-000000000001",
		Username: "john",
		Email:    "john@example.com",
		FullName: "John Silva",
		Role:     role,
	}
}

func storeWithSession(t *testing.T, identity auth.Identity) (session.Store, string) {
	t.Helper()

	store := session.NewMemoryStore()
	sessionID, err := session.GenerateID()
	require.NoError(t, err)

	require.NoError(t, store.Create(context.Background(), session.Session{
		SessionID: sessionID,
		Identity:  identity,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	return store, sessionID
}

func TestRouterStartsUnresolved(t *testing.T) {
	router := NewRouter(session.NewMemoryStore())

	assert.Equal(t, StateUnresolved, router.State())

	// Nothing may render before the persisted state is read.
	assert.Empty(t, router.Visible())

	_, ok := router.Redirect()
	assert.False(t, ok)

	_, ok = router.Identity()
	assert.False(t, ok)
}

func TestRouterResolve(t *testing.T) {
	t.Run("no session id resolves to anonymous", func(t *testing.T) {
		router := NewRouter(session.NewMemoryStore())

		state, err := router.Resolve(context.Background(), "")
		require.NoError(t, err)

		assert.Equal(t, StateAnonymous, state)
		assert.Empty(t, router.Visible())
	})

	t.Run("unknown session id resolves to anonymous", func(t *testing.T) {
		router := NewRouter(session.NewMemoryStore())

		state, err := router.Resolve(context.Background(), "no-such-session")
		require.NoError(t, err)

		assert.Equal(t, StateAnonymous, state)
	})

	t.Run("persisted session resolves to authenticated with its role", func(t *testing.T) {
		store, sessionID := storeWithSession(t, testIdentity(auth.RoleDriver))
		router := NewRouter(store)

		state, err := router.Resolve(context.Background(), sessionID)
		require.NoError(t, err)

		assert.Equal(t, StateAuthenticated, state)

		identity, ok := router.Identity()
		require.True(t, ok)
		assert.Equal(t, auth.RoleDriver, identity.Role)

		assert.Equal(t,
			[]string{LabelDashboard, LabelDelivery, LabelSettings},
			labels(router.Visible()))

		redirect, ok := router.Redirect()
		require.True(t, ok)
		assert.Equal(t, "/dashboard", redirect)
	})

	t.Run("expired session resolves to anonymous", func(t *testing.T) {
		store := session.NewMemoryStore()
		sessionID, err := session.GenerateID()
		require.NoError(t, err)

		require.NoError(t, store.Create(context.Background(), session.Session{
			SessionID: sessionID,
			Identity:  testIdentity(auth.RoleAdmin),
			CreatedAt: time.Now(),
			ExpiresAt: time.Now().Add(5 * time.Millisecond),
		}))

		time.Sleep(20 * time.Millisecond)

		router := NewRouter(store)
		state, err := router.Resolve(context.Background(), sessionID)
		require.NoError(t, err)

		assert.Equal(t, StateAnonymous, state)
	})
}

func TestRouterEstablish(t *testing.T) {
	t.Run("complete identity authenticates", func(t *testing.T) {
		router := NewRouter(session.NewMemoryStore())

		router.Establish(testIdentity(auth.RoleAdmin))

		assert.Equal(t, StateAuthenticated, router.State())
		assert.Len(t, router.Visible(), len(Catalog()))

		redirect, ok := router.Redirect()
		require.True(t, ok)
		assert.Equal(t, "/dashboard", redirect)
	})

	t.Run("partial identity is rejected", func(t *testing.T) {
		router := NewRouter(session.NewMemoryStore())

		router.Establish(auth.Identity{Username: "john", Role: auth.RoleAdmin})

		assert.Equal(t, StateAnonymous, router.State())
		assert.Empty(t, router.Visible())
	})

	t.Run("a fresh login replaces the resolved role", func(t *testing.T) {
		store, sessionID := storeWithSession(t, testIdentity(auth.RoleCustomer))
		router := NewRouter(store)

		_, err := router.Resolve(context.Background(), sessionID)
		require.NoError(t, err)

		// New login as admin: the stale customer role must not leak
		// into the rendered navigation.
		router.Establish(testIdentity(auth.RoleAdmin))

		assert.Len(t, router.Visible(), len(Catalog()))
	})
}

func TestRouterSignOut(t *testing.T) {
	store, sessionID := storeWithSession(t, testIdentity(auth.RoleCustomer))
	router := NewRouter(store)

	_, err := router.Resolve(context.Background(), sessionID)
	require.NoError(t, err)
	require.Equal(t, StateAuthenticated, router.State())

	require.NoError(t, router.SignOut(context.Background(), sessionID))

	assert.Equal(t, StateAnonymous, router.State())
	assert.Empty(t, router.Visible())

	// The persisted record is gone: a second router resolves anonymous.
	again := NewRouter(store)
	state, err := again.Resolve(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, StateAnonymous, state)
}
