package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// paramID parses the :id path segment. A non-numeric id can never
// match a row, so it reports NotFound like any other missing id.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		notFoundError(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
