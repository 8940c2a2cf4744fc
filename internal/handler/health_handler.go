package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthStore interface {
	Ping() error
}

type HealthHandler struct {
	store HealthStore
}

func NewHealthHandler(store HealthStore) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) GetRoot(c *gin.Context) {
	c.String(http.StatusOK, "Backend is running")
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	if err := h.store.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}
