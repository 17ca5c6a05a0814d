package handlers

import (
	"errors"
	"net/http"

	"barberdesk/services/operation"
	"barberdesk/services/user"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps service-layer errors onto HTTP statuses. Anything
// unrecognized is a 500 with the error text as-is.
func writeServiceError(c *gin.Context, err error) {
	var notFound operation.NotFoundError
	var noUpdates operation.NoUpdatesError
	var invalid operation.ValidationError
	var suspended user.SuspendedError
	var inactive user.InactiveError
	var duplicate user.DuplicatePhoneError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &noUpdates), errors.As(err, &invalid), errors.As(err, &duplicate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &suspended), errors.As(err, &inactive):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
