package handlers

import (
	"net/http"

	"superlaw/middleware"
	"superlaw/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterUserHandler handles client registration.
func (h *HandlerBundle) RegisterUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.RegisterUserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, err := h.Auth.RegisterUser(c.Request.Context(), req)
	if err != nil {
		logger.Error("User registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Registration failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// RegisterLawyerHandler handles lawyer registration.
func (h *HandlerBundle) RegisterLawyerHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.RegisterLawyerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid lawyer registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, err := h.Auth.RegisterLawyer(c.Request.Context(), req)
	if err != nil {
		logger.Error("Lawyer registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Registration failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// ConfirmEmailHandler verifies the token from the confirmation mail.
func (h *HandlerBundle) ConfirmEmailHandler(c *gin.Context) {
	logger := getLogger(c)

	email := c.Query("email")
	token := c.Query("token")
	if email == "" || token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and token are required"})
		return
	}

	if err := h.Auth.ConfirmEmail(c.Request.Context(), email, token); err != nil {
		logger.Warn("Email confirmation failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email confirmed"})
}

// LoginHandler verifies credentials and returns a session token.
func (h *HandlerBundle) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	info, err := h.Auth.Login(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Login failed", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}

// LogoutHandler revokes the caller's session token.
func (h *HandlerBundle) LogoutHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if err := h.Auth.Logout(c.Request.Context(), userID); err != nil {
		getLogger(c).Error("Logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
