package handlers

import (
	"net/http"
	"strconv"
	"time"

	"barberdesk/models"
	"barberdesk/services/operation"
	"barberdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OperationHandler serves the operation lifecycle endpoints.
type OperationHandler struct {
	Svc operation.OperationService
}

// NewOperationHandler creates an OperationHandler.
func NewOperationHandler(svc operation.OperationService) *OperationHandler {
	return &OperationHandler{Svc: svc}
}

// RecordOperationHandler handles POST /api/users/:userId/operations.
func (h *OperationHandler) RecordOperationHandler(c *gin.Context) {
	var input operation.RecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	op, err := h.Svc.Record(c.Param("userId"), input)
	if err != nil {
		utils.GetLogger().Error("Failed to record operation",
			zap.String("userID", c.Param("userId")), zap.Error(err))
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, op)
}

// UpdateOperationHandler handles PATCH /api/users/:userId/operations/:operationId.
// The path parameter is the array index; the target state is always finished.
func (h *OperationHandler) UpdateOperationHandler(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("operationId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "operationId must be an integer index"})
		return
	}

	var req struct {
		FinishedDate *time.Time `json:"finishedDate"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	op, err := h.Svc.Transition(c.Param("userId"), operation.ByIndex(idx), models.StatusFinished, req.FinishedDate)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, op)
}

// BulkUpdateOperationsHandler handles PATCH /api/users/:userId/operations/bulk-update.
func (h *OperationHandler) BulkUpdateOperationsHandler(c *gin.Context) {
	var req struct {
		OperationIndices []int                  `json:"operationIndices" binding:"required"`
		Status           models.OperationStatus `json:"status" binding:"required"`
		FinishedDate     *time.Time             `json:"finishedDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count, err := h.Svc.BulkTransition(c.Param("userId"), req.OperationIndices, req.Status, req.FinishedDate)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updatedCount": count})
}

// ConfirmPaymentHandler handles POST /api/users/:userId/confirm-payment.
func (h *OperationHandler) ConfirmPaymentHandler(c *gin.Context) {
	var req operation.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	op, err := h.Svc.ConfirmPayment(c.Param("userId"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, op)
}

// BulkConfirmPaymentHandler handles POST /api/users/:userId/bulk-confirm-payment.
func (h *OperationHandler) BulkConfirmPaymentHandler(c *gin.Context) {
	var req struct {
		Operations []operation.ConfirmRequest `json:"operations" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count, err := h.Svc.BulkConfirmPayment(c.Param("userId"), req.Operations)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updatedCount": count})
}

// ListOperationsHandler handles GET /api/users/:userId/operations?date=.
func (h *OperationHandler) ListOperationsHandler(c *gin.Context) {
	ops, err := h.Svc.List(c.Param("userId"), c.Query("date"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ops)
}

// PaymentConfirmationsHandler handles GET /api/users/:userId/payment-confirmations.
func (h *OperationHandler) PaymentConfirmationsHandler(c *gin.Context) {
	ops, err := h.Svc.PendingConfirmations(c.Param("userId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ops)
}

// DeleteAdminOperationHandler handles DELETE /api/users/:userId/admin-operations/:operationId.
func (h *OperationHandler) DeleteAdminOperationHandler(c *gin.Context) {
	userID := c.Param("userId")
	opID := c.Param("operationId")
	if err := h.Svc.DeleteAdminOperation(userID, opID); err != nil {
		utils.GetLogger().Error("Failed to delete admin operation",
			zap.String("userID", userID), zap.String("operationID", opID), zap.Error(err))
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Operation deleted"})
}
