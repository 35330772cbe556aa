package handler

import (
	"net/http"

	"github.com/Tharusha999/isdn-sub001/internal/nav"
	"github.com/Tharusha999/isdn-sub001/internal/session"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Logout(c *gin.Context) {

	// Sign-out uses the Router so the persisted state and the local
	// transition to Anonymous cannot diverge.
	router := nav.NewRouter(h.sessionStore)

	cookie, err := c.Request.Cookie(session.CookieName)
	sessionID := ""
	if err == nil {
		sessionID = cookie.Value
	}

	// Best-effort delete: the cookie is cleared regardless.
	_ = router.SignOut(c.Request.Context(), sessionID)

	session.ClearCookie(c.Writer, session.CookieOptions{
		Path:     "/",
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	// Idempotent response
	c.Status(http.StatusNoContent)
}
