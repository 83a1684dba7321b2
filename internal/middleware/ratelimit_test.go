package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func get(router *gin.Engine, clientIP string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = clientIP + ":1234"
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("allows requests within rate limit", func(t *testing.T) {
		router := newLimitedRouter(NewRateLimiter(10, 20, nil))
		for i := 0; i < 10; i++ {
			w := get(router, "192.168.1.1")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
			assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		}
	})

	t.Run("blocks requests exceeding rate limit", func(t *testing.T) {
		router := newLimitedRouter(NewRateLimiter(1, 2, nil))
		var last *httptest.ResponseRecorder
		for i := 0; i < 3; i++ {
			last = get(router, "192.168.1.2")
		}
		assert.Equal(t, http.StatusTooManyRequests, last.Code)
		assert.Equal(t, "1", last.Header().Get("Retry-After"))
	})

	t.Run("different clients have separate limits", func(t *testing.T) {
		router := newLimitedRouter(NewRateLimiter(1, 1, nil))
		assert.Equal(t, http.StatusOK, get(router, "192.168.1.3").Code)
		assert.Equal(t, http.StatusOK, get(router, "192.168.1.4").Code)
		assert.Equal(t, http.StatusTooManyRequests, get(router, "192.168.1.3").Code)
	})
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, 1, nil)
	rl.getLimiter("ip:a")
	rl.getLimiter("ip:b")

	rl.evictIdle(time.Now().Add(limiterIdleTimeout + time.Minute))

	count := 0
	rl.limiters.Range(func(any, any) bool {
		count++
		return true
	})
	assert.Zero(t, count)
}
