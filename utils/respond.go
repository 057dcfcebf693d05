// utils/respond.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"supportdesk-backend/apperr"
)

func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// RespondWithAppError maps a typed error onto an HTTP status and writes it.
func RespondWithAppError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(StatusForError(err), gin.H{
		"error": apperr.MessageOf(err),
		"kind":  apperr.KindOf(err).String(),
	})
}

func StatusForError(err error) int {
	switch apperr.KindOf(err) {
	case apperr.Validation:
		return http.StatusBadRequest
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.Conflict:
		return http.StatusConflict
	case apperr.Authorization:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
