package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Tharusha999/isdn-sub001/internal/auth"
	"github.com/Tharusha999/isdn-sub001/internal/logger"
	"github.com/Tharusha999/isdn-sub001/internal/nav"
	"github.com/Tharusha999/isdn-sub001/internal/session"

	"github.com/gin-gonic/gin"
)

// CredentialGateway is the authentication dependency: it resolves
// credentials against the identity store and returns a normalized
// Identity, or one of the gateway's sentinel errors.
type CredentialGateway interface {
	Authenticate(ctx context.Context, username, password string) (auth.Identity, error)
	Register(ctx context.Context, username, password, fullName, email string) (auth.Identity, error)
}

type Handler struct {
	gateway      CredentialGateway
	sessionStore session.Store
	sessionTTL   time.Duration
}

func NewHandler(
	gateway CredentialGateway,
	sessionStore session.Store,
	sessionTTL time.Duration,
) *Handler {
	return &Handler{
		gateway:      gateway,
		sessionStore: sessionStore,
		sessionTTL:   sessionTTL,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/auth/login", h.Login)
	r.POST("/auth/register", h.Register)
	r.POST("/auth/logout", h.Logout)
	r.GET("/auth/session", h.Session)
}

// authResponse is the success payload for login, register and session
// resolution: the identity plus everything the client needs to render
// without a second round trip.
type authResponse struct {
	User       auth.Identity `json:"user"`
	Redirect   string        `json:"redirect"`
	Navigation []nav.Entry   `json:"navigation"`
}

// establishSession persists the identity, issues the cookie, and
// builds the role-derived response. Called only after a gateway
// success; any failure here leaves no partial session behind.
func (h *Handler) establishSession(c *gin.Context, identity auth.Identity) (authResponse, bool) {
	sessionID, err := session.GenerateID()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
		return authResponse{}, false
	}

	now := time.Now()
	expiresAt := now.Add(h.sessionTTL)

	if err := h.sessionStore.Create(
		c.Request.Context(),
		session.Session{
			SessionID: sessionID,
			Identity:  identity,
			CreatedAt: now,
			ExpiresAt: expiresAt,
		},
	); err != nil {
		logger.Error("session create failed", map[string]any{
			"username": identity.Username,
			"error":    err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
		return authResponse{}, false
	}

	session.SetCookie(
		c.Writer,
		sessionID,
		expiresAt,
		session.CookieOptions{
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		},
	)

	router := nav.NewRouter(h.sessionStore)
	router.Establish(identity)

	redirect, _ := router.Redirect()

	return authResponse{
		User:       identity,
		Redirect:   redirect,
		Navigation: router.Visible(),
	}, true
}
