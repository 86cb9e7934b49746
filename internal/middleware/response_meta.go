package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

const responseMetaKey = "response_meta"

type responseMeta struct {
	start  time.Time
	values map[string]interface{}
}

// WithResponseMeta starts collecting envelope metadata for the request.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(responseMetaKey, &responseMeta{start: time.Now(), values: map[string]interface{}{}})
		c.Next()
	}
}

// SetMeta records one metadata value for the response envelope.
func SetMeta(c *gin.Context, key string, value interface{}) {
	metaFor(c).values[key] = value
}

// SetCacheHit records whether the freshness cache answered the request.
func SetCacheHit(c *gin.Context, hit bool) {
	SetMeta(c, "cache_hit", hit)
}

// ResponseMeta returns a copy of the collected metadata. When
// WithResponseMeta ran, the copy includes the elapsed handler time.
func ResponseMeta(c *gin.Context) map[string]interface{} {
	meta := lookupMeta(c)
	if meta == nil {
		return nil
	}
	out := make(map[string]interface{}, len(meta.values)+1)
	for k, v := range meta.values {
		out[k] = v
	}
	if !meta.start.IsZero() {
		out["processing_time_ms"] = time.Since(meta.start).Milliseconds()
	}
	return out
}

func lookupMeta(c *gin.Context) *responseMeta {
	if c == nil {
		return nil
	}
	if v, ok := c.Get(responseMetaKey); ok {
		if meta, ok := v.(*responseMeta); ok {
			return meta
		}
	}
	return nil
}

func metaFor(c *gin.Context) *responseMeta {
	if meta := lookupMeta(c); meta != nil {
		return meta
	}
	meta := &responseMeta{values: map[string]interface{}{}}
	c.Set(responseMetaKey, meta)
	return meta
}
