package handlers

import (
	"errors"
	"net/http"

	"artwork-gallery/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Conflict errors
	case errors.Is(err, domain.ErrFetchInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidLimit):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Service unavailable errors
	case errors.Is(err, domain.ErrFetchLogDisabled),
		errors.Is(err, domain.ErrGalleryClosed):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// isMappedDomainError reports whether mapDomainError answers err with a
// non-500 status.
func isMappedDomainError(err error) bool {
	return errors.Is(err, domain.ErrFetchInProgress) ||
		errors.Is(err, domain.ErrInvalidLimit) ||
		errors.Is(err, domain.ErrFetchLogDisabled) ||
		errors.Is(err, domain.ErrGalleryClosed)
}

// logDomainError logs expected domain outcomes at warn and everything else
// at error.
func logDomainError(err error, msg string) {
	if isMappedDomainError(err) {
		log.WithError(err).Warn(msg)
		return
	}
	log.WithError(err).Error(msg)
}
