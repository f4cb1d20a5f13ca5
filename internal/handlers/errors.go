package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngofreelancing/platform-api/internal/apperrors"
)

// respondError maps a service error to an HTTP status. Every error surfaces
// as a user-visible notice; nothing here is allowed to crash the request.
func respondError(c *gin.Context, err error) {
	var validation *apperrors.ValidationError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.Is(err, apperrors.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in to continue"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrAlreadyApplied):
		c.JSON(http.StatusConflict, gin.H{"error": "You have already applied for this job"})
	case errors.Is(err, apperrors.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": "This action is not allowed in the current state"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again later."})
	}
}
