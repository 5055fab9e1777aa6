package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/propview/properties-backend/internal/services"
)

// respondServiceError maps service error kinds to HTTP statuses.
// opFailedStatus is endpoint-specific: owner delete failures surface as 500,
// property delete failures as 400.
func respondServiceError(c *gin.Context, err error, opFailedStatus int) {
	status := http.StatusInternalServerError
	code := "internal_error"
	switch {
	case errors.Is(err, services.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, services.ErrConflict):
		status, code = http.StatusConflict, "conflict"
	case errors.Is(err, services.ErrValidation):
		status, code = http.StatusBadRequest, "validation_failed"
	case errors.Is(err, services.ErrOperationFailed):
		status, code = opFailedStatus, "operation_failed"
	}
	c.JSON(status, gin.H{"error": code, "detail": err.Error()})
}
