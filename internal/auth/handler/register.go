package handler

import (
	"errors"
	"net/http"

	"github.com/Tharusha999/isdn-sub001/internal/auth/credentials"
	"github.com/Tharusha999/isdn-sub001/internal/logger"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	identity, err := h.gateway.Register(
		c.Request.Context(),
		req.Username,
		req.Password,
		req.FullName,
		req.Email,
	)

	if err != nil {
		if errors.Is(err, credentials.ErrDuplicateUsername) {
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
			return
		}
		logger.Error("registration failed", map[string]any{
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

	logger.Info("customer registered", map[string]any{
		"username": identity.Username,
	})

	c.JSON(http.StatusCreated, resp)
}
