package handlers

import (
	"net/http"

	"barberdesk/middleware"
	"barberdesk/models"
	"barberdesk/services/branch"
	"barberdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BranchHandler serves branch and service-catalog management for owners.
type BranchHandler struct {
	Svc branch.BranchService
}

// NewBranchHandler creates a BranchHandler.
func NewBranchHandler(svc branch.BranchService) *BranchHandler {
	return &BranchHandler{Svc: svc}
}

// CreateBranchHandler handles POST /api/branches.
func (h *BranchHandler) CreateBranchHandler(c *gin.Context) {
	var input branch.BranchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.Svc.CreateBranch(middleware.CallerID(c), input)
	if err != nil {
		utils.GetLogger().Error("Failed to create branch", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ListBranchesHandler handles GET /api/branches (the caller's branches).
func (h *BranchHandler) ListBranchesHandler(c *gin.Context) {
	branches, err := h.Svc.GetBranchesByOwner(middleware.CallerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, branches)
}

// GetBranchHandler handles GET /api/branches/:branchId.
func (h *BranchHandler) GetBranchHandler(c *gin.Context) {
	b, err := h.Svc.GetBranchByID(c.Param("branchId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateBranchHandler handles PUT /api/branches/:branchId.
func (h *BranchHandler) UpdateBranchHandler(c *gin.Context) {
	var input branch.BranchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.Svc.UpdateBranch(c.Param("branchId"), input)
	if err != nil {
		utils.GetLogger().Error("Failed to update branch",
			zap.String("branchID", c.Param("branchId")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeleteBranchHandler handles DELETE /api/branches/:branchId.
func (h *BranchHandler) DeleteBranchHandler(c *gin.Context) {
	if err := h.Svc.DeleteBranch(c.Param("branchId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Branch deleted"})
}

// UpsertBranchServiceHandler handles POST /api/branches/:branchId/services.
func (h *BranchHandler) UpsertBranchServiceHandler(c *gin.Context) {
	var svc models.BranchService
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.Svc.UpsertService(c.Param("branchId"), svc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

// RemoveBranchServiceHandler handles DELETE /api/branches/:branchId/services/:serviceName.
func (h *BranchHandler) RemoveBranchServiceHandler(c *gin.Context) {
	b, err := h.Svc.RemoveService(c.Param("branchId"), c.Param("serviceName"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}
