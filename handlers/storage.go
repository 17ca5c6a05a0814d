package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"barberdesk/services/storage"
	"barberdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StorageHandler serves payment-proof uploads.
type StorageHandler struct {
	Svc storage.StorageService
}

// NewStorageHandler creates a StorageHandler.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{Svc: svc}
}

// UploadPaymentProofHandler handles POST /api/storage/payment-proof. The
// returned URL goes into the operation's paymentImageUrl on confirmation.
func (h *StorageHandler) UploadPaymentProofHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file form field"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	name := strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
	publicID := name + "-" + uuid.New().String()

	url, err := h.Svc.UploadPaymentProof(c.Request.Context(), file, publicID)
	if err != nil {
		utils.GetLogger().Error("Payment proof upload failed",
			zap.String("filename", fileHeader.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
