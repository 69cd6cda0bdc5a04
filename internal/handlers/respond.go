package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zentask/zentask-platform/internal/apperrors"
)

// respondError maps a typed failure to an HTTP status and a single
// human-readable message. Anything untyped is reported generically so
// internal detail never reaches the caller.
func respondError(c *gin.Context, err error) {
	var (
		validationErr *apperrors.ValidationError
		authzErr      *apperrors.AuthorizationError
		notFoundErr   *apperrors.NotFoundError
		conflictErr   *apperrors.ConflictError
		selfErr       *apperrors.SelfActionError
		depErr        *apperrors.DependencyError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &authzErr):
		c.JSON(http.StatusForbidden, gin.H{"error": authzErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": conflictErr.Error()})
	case errors.As(err, &selfErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": selfErr.Error()})
	case errors.As(err, &depErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
	}
}
