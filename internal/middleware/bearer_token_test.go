package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func tokenRouter(token string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/revalidate", BearerToken(token), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func postWithAuthorization(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/revalidate", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestBearerTokenAcceptsMatchingToken(t *testing.T) {
	rec := postWithAuthorization(tokenRouter("s3cret"), "Bearer s3cret")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestBearerTokenRefusesMissingOrWrongToken(t *testing.T) {
	r := tokenRouter("s3cret")

	for _, header := range []string{"", "s3cret", "Basic s3cret", "Bearer nope"} {
		rec := postWithAuthorization(r, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
	}
}

func TestBearerTokenRefusesEverythingWhenUnset(t *testing.T) {
	rec := postWithAuthorization(tokenRouter(""), "Bearer ")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
