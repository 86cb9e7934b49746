package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/thunder-org/thunder-site/pkg/errors"
	"github.com/thunder-org/thunder-site/pkg/middleware/requestid"
)

// Envelope is the JSON shape of every /api response.
type Envelope struct {
	Data  interface{}            `json:"data,omitempty"`
	Error *appErrors.Error       `json:"error,omitempty"`
	Meta  map[string]interface{} `json:"meta,omitempty"`
}

// JSON writes data with optional metadata. Form and event state is per
// visitor or short-lived, so responses are never stored by intermediaries.
func JSON(c *gin.Context, status int, data interface{}, meta ...map[string]interface{}) {
	var m map[string]interface{}
	if len(meta) > 0 {
		m = meta[0]
	}
	write(c, status, Envelope{Data: data, Meta: m})
}

// Error writes err as a typed error. Untyped errors surface as 500 without
// their cause.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	if appErr.Status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	write(c, appErr.Status, Envelope{Error: appErr})
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func write(c *gin.Context, status int, envelope Envelope) {
	if id := requestid.Value(c); id != "" {
		if envelope.Meta == nil {
			envelope.Meta = make(map[string]interface{}, 1)
		}
		envelope.Meta["request_id"] = id
	}
	if len(envelope.Meta) == 0 {
		envelope.Meta = nil
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(status, envelope)
}
