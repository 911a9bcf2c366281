package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zelligewear/zellige-api/internal/auth"
	"github.com/zelligewear/zellige-api/internal/middleware"
	"github.com/zelligewear/zellige-api/internal/models"
	"github.com/zelligewear/zellige-api/internal/store"
)

type SignupInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

// Signup is the handler for POST /v1/auth/signup.
func (h *Handlers) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	users := h.Store.Collection(ColUsers)

	// Reject duplicate emails up front.
	var existing models.User
	err := users.FindOne(c.Request.Context(), bson.M{"email": input.Email}, &existing)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing accounts"})
		return
	}

	var password models.Password
	if err := password.Set(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		ID:           store.NewID(),
		Email:        input.Email,
		DisplayName:  input.Name,
		PasswordHash: password.Hash,
		IsAdmin:      false,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := users.Set(c.Request.Context(), user.ID, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login is the handler for POST /v1/auth/login.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	err := h.Store.Collection(ColUsers).FindOne(c.Request.Context(), bson.M{"email": input.Email}, &user)
	if err != nil {
		// Same response for unknown email and wrong password.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	password := models.Password{Hash: user.PasswordHash}
	match, err := password.Matches(input.Password)
	if err != nil || !match {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

type ResetPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

// RequestPasswordReset is the handler for POST /v1/auth/reset-password.
// It writes a short-lived reset code on the user document. The response is
// the same whether or not the email exists.
func (h *Handlers) RequestPasswordReset(c *gin.Context) {
	var input ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	users := h.Store.Collection(ColUsers)
	var user models.User
	if err := users.FindOne(c.Request.Context(), bson.M{"email": input.Email}, &user); err == nil {
		code := uuid.NewString()
		expiry := time.Now().Add(1 * time.Hour)
		_ = users.Update(c.Request.Context(), user.ID, bson.M{
			"resetCode":   code,
			"resetExpiry": expiry,
		})
	}

	c.JSON(http.StatusOK, gin.H{"message": "If that account exists, a reset link has been sent."})
}

// GetProfile is the handler for GET /v1/profile/me.
func (h *Handlers) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": middleware.CurrentUser(c)})
}
