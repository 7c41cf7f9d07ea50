//go:build unit

package middleware_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"

	"gin-storefront/internal/handler/httperr"
	"gin-storefront/internal/handler/middleware"
	"gin-storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := gin.New()
	r.Use(middleware.LoggingMiddleware(logger, config.LogConfig{TimeZone: "UTC"}))
	r.POST("/api/checkout/create", func(c *gin.Context) {
		c.Header(middleware.IdempotentReplayedHeader, "true")
		c.JSON(http.StatusOK, gin.H{"url": "https://pay.example.com"})
	})
	r.GET("/api/products/:id", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusNotFound, nil, "Product not found", nil)
	})
	return r
}

// completedLine returns the decoded "Request completed" record.
func completedLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		if rec["msg"] == "Request completed" {
			return rec
		}
	}
	t.Fatal("no completion record logged")
	return nil
}

func TestLoggingMiddleware(t *testing.T) {
	t.Run("generates and echoes a request id", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf)
		w := nethttptest.NewRecorder()

		r.ServeHTTP(w, nethttptest.NewRequest(http.MethodGet, "/api/products/abc", nil))

		id := w.Header().Get("X-Request-ID")
		require.NotEmpty(t, id)
		rec := completedLine(t, &buf)
		assert.Equal(t, id, rec["request_id"])
		assert.Equal(t, "WARN", rec["level"])
		assert.EqualValues(t, http.StatusNotFound, rec["status_code"])
	})

	t.Run("reuses a caller request id", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf)
		req := nethttptest.NewRequest(http.MethodGet, "/api/products/abc", nil)
		req.Header.Set("X-Request-ID", "edge-42")
		w := nethttptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, "edge-42", w.Header().Get("X-Request-ID"))
		assert.Equal(t, "edge-42", completedLine(t, &buf)["request_id"])
	})

	t.Run("ignores an unprintable caller request id", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf)
		req := nethttptest.NewRequest(http.MethodGet, "/api/products/abc", nil)
		req.Header.Set("X-Request-ID", "has space")
		w := nethttptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.NotEqual(t, "has space", w.Header().Get("X-Request-ID"))
	})

	t.Run("records idempotent checkout replays", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedRouter(&buf)
		req := nethttptest.NewRequest(http.MethodPost, "/api/checkout/create", strings.NewReader("{}"))
		req.Header.Set(middleware.IdempotencyKeyHeader, "8f14e45f-ceea-467f-a0e6-5b0a5f0a5f0a")
		w := nethttptest.NewRecorder()

		r.ServeHTTP(w, req)

		rec := completedLine(t, &buf)
		assert.Equal(t, "8f14e45f-ceea-467f-a0e6-5b0a5f0a5f0a", rec["idempotency_key"])
		assert.Equal(t, true, rec["idempotent_replay"])
		assert.Equal(t, "INFO", rec["level"])
	})
}
