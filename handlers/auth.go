package handlers

import (
	"net/http"

	"barberdesk/middleware"
	"barberdesk/models"
	"barberdesk/services/user"
	"barberdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves registration, sign-in and sign-out.
type AuthHandler struct {
	UserService user.UserService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{UserService: svc}
}

// RegisterHandler handles POST /api/auth/register. The endpoint is public
// and only creates owner accounts; staff accounts are created by their owner
// through POST /api/users, so nobody can self-assign a branch role.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input user.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Role != models.RoleOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only owner accounts can self-register"})
		return
	}

	resp, err := h.UserService.RegisterUser(input)
	if err != nil {
		logger.Error("Registration failed", zap.String("phone", input.Phone), zap.Error(err))
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Phone    string `json:"phone" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.UserService.AuthenticateUser(req.Phone, req.Password)
	if err != nil {
		logger.Warn("Login rejected", zap.String("phone", req.Phone), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RevokeHandler handles DELETE /api/auth/revoke (logout).
func (h *AuthHandler) RevokeHandler(c *gin.Context) {
	userID := middleware.CallerID(c)
	if err := h.UserService.RevokeAuthToken(userID); err != nil {
		utils.GetLogger().Error("Failed to revoke session", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session revoked"})
}
