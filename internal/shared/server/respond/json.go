package respond

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// Raw writes already-encoded JSON bytes without re-encoding them.
func Raw(c *gin.Context, status int, raw json.RawMessage) {
	c.Data(status, "application/json; charset=utf-8", raw)
}
