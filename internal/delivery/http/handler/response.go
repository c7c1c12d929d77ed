package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/vyte-app/vyte-backend/internal/delivery/http/middleware"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// userID pulls the authenticated user id set by the auth middleware.
func userID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.UserIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
