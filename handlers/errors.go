package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Machine-readable error codes carried next to the human message,
// so clients don't have to parse prose.
const (
	CodeValidation   = "VALIDATION"
	CodeConflict     = "CONFLICT"
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeInternal     = "INTERNAL"
)

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": message, "code": code})
}

func validationError(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, CodeValidation, message)
}

func conflictError(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, CodeConflict, message)
}

func notFoundError(c *gin.Context, message string) {
	respondError(c, http.StatusNotFound, CodeNotFound, message)
}

func forbiddenError(c *gin.Context, message string) {
	respondError(c, http.StatusForbidden, CodeForbidden, message)
}

func internalError(c *gin.Context, message string) {
	respondError(c, http.StatusInternalServerError, CodeInternal, message)
}

// writeError translates a storage failure at the handler boundary:
// duplicate keys become CONFLICT, anything else is internal.
func writeError(c *gin.Context, err error, conflictMessage string) {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		conflictError(c, conflictMessage)
		return
	}
	internalError(c, "Database error: "+err.Error())
}
