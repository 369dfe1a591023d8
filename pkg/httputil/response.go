package httputil

import (
	"errors"
	"log"
	"net/http"

	"planner-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

var statusByKind = map[apperror.Kind]int{
	apperror.KindMissingField:       http.StatusBadRequest,
	apperror.KindDuplicateEmail:     http.StatusBadRequest,
	apperror.KindBadRequest:         http.StatusBadRequest,
	apperror.KindInvalidCredentials: http.StatusUnauthorized,
	apperror.KindInvalidSignature:   http.StatusUnauthorized,
	apperror.KindExpired:            http.StatusUnauthorized,
	apperror.KindMalformed:          http.StatusUnauthorized,
	apperror.KindRevoked:            http.StatusUnauthorized,
	apperror.KindForbidden:          http.StatusForbidden,
	apperror.KindNotFound:           http.StatusNotFound,
	apperror.KindTooLarge:           http.StatusRequestEntityTooLarge,
	apperror.KindInternal:           http.StatusInternalServerError,
}

// StatusFor maps an error to its HTTP status code.
func StatusFor(err error) int {
	if status, ok := statusByKind[apperror.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Error writes {"error": message} with the status matching err's kind.
// Unclassified and internal errors are logged; their text only reaches the client outside release mode.
func Error(c *gin.Context, err error) {
	status := StatusFor(err)
	message := err.Error()

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	if status == http.StatusInternalServerError {
		log.Printf("[API] %s %s: %v", c.Request.Method, c.FullPath(), err)
		if gin.Mode() == gin.ReleaseMode {
			message = "internal server error"
		} else {
			message = err.Error()
		}
	}

	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// NoContent writes a bodiless 204, used by every successful delete.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
