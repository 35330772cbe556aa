package records

import (
	"context"
	"net/http"

	"github.com/Tharusha999/isdn-sub001/internal/logger"

	"github.com/gin-gonic/gin"
)

// Handler exposes the record lists over HTTP. Route-level role gating
// happens in middleware; these handlers only fetch and return.
type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

func respondList[T any](c *gin.Context, name string, list func(context.Context) ([]T, error)) {
	items, err := list(c.Request.Context())
	if err != nil {
		logger.Error("record list failed", map[string]any{
			"records": name,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load " + name})
		return
	}
	c.JSON(http.StatusOK, gin.H{name: items})
}

func (h *Handler) Products(c *gin.Context) {
	respondList(c, "products", h.repo.ListProducts)
}

func (h *Handler) Orders(c *gin.Context) {
	respondList(c, "orders", h.repo.ListOrders)
}

func (h *Handler) Delivery(c *gin.Context) {
	respondList(c, "delivery", h.repo.ListUndeliveredOrders)
}

func (h *Handler) Staff(c *gin.Context) {
	respondList(c, "staff", h.repo.ListStaff)
}

func (h *Handler) Partners(c *gin.Context) {
	respondList(c, "partners", h.repo.ListPartners)
}

func (h *Handler) Activity(c *gin.Context) {
	respondList(c, "activity", h.repo.ListActivity)
}

func (h *Handler) Metrics(c *gin.Context) {
	m, err := h.repo.Metrics(c.Request.Context())
	if err != nil {
		logger.Error("metrics query failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load metrics"})
		return
	}
	c.JSON(http.StatusOK, m)
}
