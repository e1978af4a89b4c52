package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heshafoods/hesha-api/internal/interface/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())

	var got string
	r.GET("/", func(c *gin.Context) {
		got = c.GetString("request_id")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}

func TestRealIPPrefersForwardedFor(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RealIP())

	var got string
	r.GET("/", func(c *gin.Context) {
		got = c.GetString("real_ip")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "203.0.113.7", got)

	// garbage in the header falls back to the socket peer
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "not-an-ip")
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.NotEqual(t, "not-an-ip", got)
	assert.NotEmpty(t, got)
}

func TestRateLimitNilClientPassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RateLimit(nil, 1, time.Minute, middleware.KeyByIP()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	// far more requests than the limit, all pass with no limiter backend
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}

func TestKeyFuncs(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RealIP())

	var byIP, byPath string
	r.GET("/api/orders", func(c *gin.Context) {
		byIP = middleware.KeyByIP()(c)
		byPath = middleware.KeyByIPAndPath()(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "rl:ip:203.0.113.7", byIP)
	assert.Equal(t, "rl:path:/api/orders:ip:203.0.113.7", byPath)
}
