package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Tharusha999/isdn-sub001/internal/auth"
	"github.com/Tharusha999/isdn-sub001/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityWithRole(role auth.Role) auth.Identity {
	return auth.Identity{
		ID:       "0c7f3f52-93dd-4a52-8f71-000000000001",
		Username: "john",
		Email:    "john@example.com",
		FullName: "John Silva",
		Role:     role,
	}
}

func createSession(t *testing.T, store session.Store, identity auth.Identity, ttl time.Duration) *http.Cookie {
	t.Helper()

	sessionID, err := session.GenerateID()
	require.NoError(t, err)

	require.NoError(t, store.Create(context.Background(), session.Session{
		SessionID: sessionID,
		Identity:  identity,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(ttl),
	}))

	return &http.Cookie{Name: session.CookieName, Value: sessionID}
}

func protectedServer(store session.Store, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()

	group := router.Group("/api")
	group.Use(GinRequireAuth(NewAuthMiddleware(store)))
	group.Use(extra...)

	group.GET("/resource", func(c *gin.Context) {
		identity, ok := IdentityFromContext(c.Request.Context())
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no identity"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": identity.Username})
	})

	return router
}

func get(router *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_NoCookie(t *testing.T) {
	router := protectedServer(session.NewMemoryStore())

	w := get(router, "/api/resource")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_UnknownSession(t *testing.T) {
	router := protectedServer(session.NewMemoryStore())

	w := get(router, "/api/resource", &http.Cookie{
		Name:  session.CookieName,
		Value: "not-a-session",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ValidSessionAttachesIdentity(t *testing.T) {
	store := session.NewMemoryStore()
	cookie := createSession(t, store, identityWithRole(auth.RoleAdmin), time.Hour)

	router := protectedServer(store)

	w := get(router, "/api/resource", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "john")
}

func TestRequireAuth_ExpiredSessionIsPurged(t *testing.T) {
	store := session.NewMemoryStore()
	cookie := createSession(t, store, identityWithRole(auth.RoleAdmin), 5*time.Millisecond)

	time.Sleep(20 * time.Millisecond)

	router := protectedServer(store)

	w := get(router, "/api/resource", cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	persisted, err := store.Get(context.Background(), cookie.Value)
	require.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestGinRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		role     auth.Role
		allowed  []auth.Role
		wantCode int
	}{
		{
			name:     "admin allowed on admin route",
			role:     auth.RoleAdmin,
			allowed:  []auth.Role{auth.RoleAdmin},
			wantCode: http.StatusOK,
		},
		{
			name:     "driver refused on admin route",
			role:     auth.RoleDriver,
			allowed:  []auth.Role{auth.RoleAdmin},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "driver allowed on delivery route",
			role:     auth.RoleDriver,
			allowed:  []auth.Role{auth.RoleAdmin, auth.RoleDriver},
			wantCode: http.StatusOK,
		},
		{
			name:     "customer refused on delivery route",
			role:     auth.RoleCustomer,
			allowed:  []auth.Role{auth.RoleAdmin, auth.RoleDriver},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := session.NewMemoryStore()
			cookie := createSession(t, store, identityWithRole(tt.role), time.Hour)

			router := protectedServer(store, GinRequireRole(tt.allowed...))

			w := get(router, "/api/resource", cookie)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestGinRequireDestination(t *testing.T) {
	tests := []struct {
		name        string
		role        auth.Role
		destination string
		wantCode    int
	}{
		{
			name:        "customer reaches products",
			role:        auth.RoleCustomer,
			destination: "/products",
			wantCode:    http.StatusOK,
		},
		{
			name:        "customer blocked from activity",
			role:        auth.RoleCustomer,
			destination: "/activity",
			wantCode:    http.StatusForbidden,
		},
		{
			name:        "driver blocked from orders",
			role:        auth.RoleDriver,
			destination: "/orders",
			wantCode:    http.StatusForbidden,
		},
		{
			name:        "admin reaches everything",
			role:        auth.RoleAdmin,
			destination: "/partners",
			wantCode:    http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := session.NewMemoryStore()
			cookie := createSession(t, store, identityWithRole(tt.role), time.Hour)

			router := protectedServer(store, GinRequireDestination(tt.destination))

			w := get(router, "/api/resource", cookie)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
