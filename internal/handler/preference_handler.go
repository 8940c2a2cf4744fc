package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"newsly/internal/auth"
	"newsly/internal/repository"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PreferenceStore interface {
	GetPreferences(userID int64) ([]string, error)
	UpdatePreferences(userID int64, preferences []string) error
}

type PreferenceHandler struct {
	preferences PreferenceStore
}

func NewPreferenceHandler(preferences PreferenceStore) *PreferenceHandler {
	return &PreferenceHandler{preferences: preferences}
}

func (h *PreferenceHandler) GetPreferences(c *gin.Context) {
	userIDParam := c.Query("userId")
	if userIDParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	userID, err := strconv.ParseInt(userIDParam, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	prefs, err := h.preferences.GetPreferences(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		slog.Error("error fetching preferences", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error while fetching preferences"})
		return
	}

	c.JSON(http.StatusOK, PreferencesResponse{Preferences: prefs})
}

// UpdatePreferences overwrites the caller's full preference set.
func (h *PreferenceHandler) UpdatePreferences(c *gin.Context) {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Preferences are required"})
		return
	}

	prefs := req.Preferences
	if prefs == nil {
		prefs = []string{}
	}

	if err := h.preferences.UpdatePreferences(claims.UserID, prefs); err != nil {
		slog.Error("error updating preferences", "error", err, "user_id", claims.UserID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, UpdatePreferencesResponse{Success: true, Preferences: prefs})
}
