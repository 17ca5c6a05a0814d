package handlers

import (
	"net/http"

	"barberdesk/models"
	"barberdesk/services/user"
	"barberdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves staff management for owners.
type UserHandler struct {
	UserService user.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{UserService: svc}
}

// CreateStaffHandler handles POST /api/users (owner creates staff accounts).
// Only branch roles can be created here; owner accounts come from the public
// registration endpoint.
func (h *UserHandler) CreateStaffHandler(c *gin.Context) {
	var input user.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !input.Role.IsStaff() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be admin, barber or washer"})
		return
	}

	resp, err := h.UserService.RegisterUser(input)
	if err != nil {
		utils.GetLogger().Error("Staff creation failed", zap.String("phone", input.Phone), zap.Error(err))
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp.User)
}

// ListUsersHandler handles GET /api/users?branchId=.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	var (
		users []models.User
		err   error
	)
	if branchID := c.Query("branchId"); branchID != "" {
		users, err = h.UserService.GetUsersByBranch(branchID)
	} else {
		users, err = h.UserService.GetAllUsers()
	}
	if err != nil {
		utils.GetLogger().Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserHandler handles GET /api/users/:userId.
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	id := c.Param("userId")
	usr, err := h.UserService.GetUserByID(id)
	if err != nil {
		utils.GetLogger().Error("User not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateUserHandler handles PUT /api/users/:userId.
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	var updated models.User
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated.ID = c.Param("userId")

	usr, err := h.UserService.UpdateUser(updated)
	if err != nil {
		utils.GetLogger().Error("Update failed", zap.String("id", updated.ID), zap.Error(err))
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// DeleteUserHandler handles DELETE /api/users/:userId.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	id := c.Param("userId")
	if err := h.UserService.DeleteUser(id); err != nil {
		utils.GetLogger().Error("Delete failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// SuspendUserHandler handles PUT /api/users/:userId/suspend.
func (h *UserHandler) SuspendUserHandler(c *gin.Context) {
	h.setSuspended(c, true)
}

// ActivateUserHandler handles PUT /api/users/:userId/activate.
func (h *UserHandler) ActivateUserHandler(c *gin.Context) {
	h.setSuspended(c, false)
}

func (h *UserHandler) setSuspended(c *gin.Context, suspended bool) {
	id := c.Param("userId")
	usr, err := h.UserService.SetSuspended(id, suspended)
	if err != nil {
		utils.GetLogger().Error("Suspension update failed",
			zap.String("id", id), zap.Bool("suspended", suspended), zap.Error(err))
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}
