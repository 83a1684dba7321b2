package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCorrelationIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var fromGin, fromCtx string
	router := gin.New()
	router.Use(CorrelationIDMiddleware())
	router.GET("/test", func(c *gin.Context) {
		fromGin = GetCorrelationID(c)
		fromCtx = CorrelationIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("keeps inbound id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(CorrelationIDHeader, "abc-123")
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(CorrelationIDHeader))
		assert.Equal(t, "abc-123", fromGin)
		assert.Equal(t, "abc-123", fromCtx)
	})

	t.Run("generates id when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/test", nil)
		router.ServeHTTP(w, req)

		id := w.Header().Get(CorrelationIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, fromCtx)
	})
}

func TestLogWithCorrelationID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	LogWithCorrelationID(WithCorrelationID(context.Background(), "req-1"), base).Info("tagged")
	LogWithCorrelationID(context.Background(), base).Info("untagged")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "req-1", logs.All()[0].ContextMap()["correlation_id"])
	assert.NotContains(t, logs.All()[1].ContextMap(), "correlation_id")
}
