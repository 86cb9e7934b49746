package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextFormSessionKey is the gin context key storing the visitor's form session id.
const ContextFormSessionKey = "formSession"

// FormSessionConfig configures the session cookie.
type FormSessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// FormSession makes sure every visitor carries a session cookie that keys
// their lead form. Unknown or malformed values are replaced.
func FormSession(cfg FormSessionConfig) gin.HandlerFunc {
	name := cfg.CookieName
	if name == "" {
		name = "thunder_form"
	}
	maxAge := int(cfg.TTL.Seconds())
	if maxAge <= 0 {
		maxAge = int((30 * time.Minute).Seconds())
	}

	return func(c *gin.Context) {
		id, err := c.Cookie(name)
		if err != nil {
			id = ""
		}
		if _, parseErr := uuid.Parse(id); parseErr != nil {
			id = uuid.NewString()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(name, id, maxAge, "/", "", cfg.Secure, true)
		c.Set(ContextFormSessionKey, id)
		c.Next()
	}
}
