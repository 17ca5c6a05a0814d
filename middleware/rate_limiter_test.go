package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestClientIPPrefersProxyHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctxFor := func(headers map[string]string, remoteAddr string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/", nil)
		c.Request.RemoteAddr = remoteAddr
		for k, v := range headers {
			c.Request.Header.Set(k, v)
		}
		return c
	}

	c := ctxFor(map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"}, "10.0.0.1:4567")
	assert.Equal(t, "203.0.113.7", clientIP(c))

	c = ctxFor(map[string]string{"X-Real-IP": "203.0.113.8"}, "10.0.0.1:4567")
	assert.Equal(t, "203.0.113.8", clientIP(c))

	c = ctxFor(nil, "10.0.0.1:4567")
	assert.Equal(t, "10.0.0.1", clientIP(c))
}
