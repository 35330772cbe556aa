package handler

import (
	"net/http"

	"github.com/Tharusha999/isdn-sub001/internal/nav"
	"github.com/Tharusha999/isdn-sub001/internal/session"

	"github.com/gin-gonic/gin"
)

// Session resolves the persisted session for the calling client. This
// is the endpoint the dashboard hits on first paint: until it answers,
// the client stays in its unresolved state and renders no navigation.
func (h *Handler) Session(c *gin.Context) {

	sessionID := ""
	if cookie, err := c.Request.Cookie(session.CookieName); err == nil {
		sessionID = cookie.Value
	}

	router := nav.NewRouter(h.sessionStore)

	state, err := router.Resolve(c.Request.Context(), sessionID)
	if err != nil {
		// Resolution failure reads as anonymous: expose nothing.
		c.JSON(http.StatusOK, gin.H{
			"state":      state.String(),
			"navigation": []nav.Entry{},
		})
		return
	}

	identity, ok := router.Identity()
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"state":      state.String(),
			"navigation": []nav.Entry{},
		})
		return
	}

	redirect, _ := router.Redirect()

	c.JSON(http.StatusOK, gin.H{
		"state":      state.String(),
		"user":       identity,
		"redirect":   redirect,
		"navigation": router.Visible(),
	})
}
