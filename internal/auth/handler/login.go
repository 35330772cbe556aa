package handler

import (
	"errors"
	"net/http"

	"github.com/Tharusha999/isdn-sub001/internal/auth/credentials"
	"github.com/Tharusha999/isdn-sub001/internal/logger"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	identity, err := h.gateway.Authenticate(
		c.Request.Context(),
		req.Username,
		req.Password,
	)

	if err != nil {
		if errors.Is(err, credentials.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		// ServiceUnavailable and anything unexpected collapse into
		// one generic message; the cause stays in the logs.
		logger.Error("login failed", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "authentication failed"})
		return
	}

	resp, ok := h.establishSession(c, identity)
	if !ok {
		return
	}

	logger.Info("login succeeded", map[string]any{
		"username": identity.Username,
		"role":     string(identity.Role),
	})

	c.JSON(http.StatusOK, resp)
}
