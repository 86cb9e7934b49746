package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/thunder-org/thunder-site/internal/middleware"
)

// sessionFromContext returns the form session id set by middleware.FormSession.
// Requests that bypassed the middleware share the empty-key form.
func sessionFromContext(c *gin.Context) string {
	value, exists := c.Get(middleware.ContextFormSessionKey)
	if !exists {
		return ""
	}
	id, ok := value.(string)
	if !ok {
		return ""
	}
	return id
}
