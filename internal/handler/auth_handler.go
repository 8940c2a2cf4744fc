package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"newsly/internal/auth"
	"newsly/internal/model"
	"newsly/internal/repository"

	"github.com/gin-gonic/gin"
)

type UserStore interface {
	Create(user *model.User) error
	GetByEmail(email string) (*model.User, error)
}

type AuthHandler struct {
	users  UserStore
	tokens *auth.TokenIssuer
}

func NewAuthHandler(users UserStore, tokens *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("error hashing password", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	prefs := req.Preferences
	if prefs == nil {
		prefs = []string{}
	}

	user := model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Preferences:  prefs,
	}

	if err := h.users.Create(&user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}
		slog.Error("error creating user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		slog.Error("error issuing token", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Token:       token,
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Preferences: user.Preferences,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	user, err := h.users.GetByEmail(req.Email)
	if err != nil {
		slog.Error("error fetching user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		slog.Error("error issuing token", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token:       token,
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Preferences: user.Preferences,
	})
}
