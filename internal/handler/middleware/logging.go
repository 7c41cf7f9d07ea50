package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gin-storefront/internal/pkg/config"
	"gin-storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	requestIDHeader  = "X-Request-ID"
	ctxRequestIDKey  = "request_id"
	maxRequestIDLen  = 64
	maxStackLines    = 12
	requestIDTimeFmt = "20060102150405"
)

// NewLogger builds the process logger from config and installs it as the slog default.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key != slog.TimeKey {
				return a
			}
			if t, ok := a.Value.Any().(time.Time); ok {
				a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
			}
			return a
		},
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoggingMiddleware logs one line when a request starts and one when it completes.
func LoggingMiddleware(logger *slog.Logger, cfg config.LogConfig) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	return func(c *gin.Context) {
		startTime := time.Now()
		requestID := inboundRequestID(c)
		if requestID == "" {
			requestID = newRequestID(timezone)
		}
		c.Set(ctxRequestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		if key := c.GetHeader(IdempotencyKeyHeader); key != "" {
			attrs = append(attrs, slog.String("idempotency_key", key))
		}
		logger.LogAttrs(c.Request.Context(), slog.LevelInfo, "Request started", attrs...)

		c.Next()

		status := c.Writer.Status()
		done := append(attrs[:len(attrs):len(attrs)],
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(startTime)),
		)
		// auth runs inside this middleware, so the caller is only known after c.Next
		if p, ok := GetPrincipal(c); ok {
			done = append(done, slog.String("user_id", p.UserID.String()), slog.String("role", string(p.Role)))
		}
		if size := c.Writer.Size(); size > 0 {
			done = append(done, slog.Int("response_size", size))
		}
		if c.Writer.Header().Get(IdempotentReplayedHeader) == "true" {
			done = append(done, slog.Bool("idempotent_replay", true))
		}
		if len(c.Errors) > 0 {
			done = append(done, slog.String("errors", c.Errors.String()))
			if status >= 500 {
				done = append(done, slog.Any("stack", errs.ExtractStackLines(c.Errors.Last().Err, maxStackLines)))
			}
		}

		logger.LogAttrs(c.Request.Context(), levelFor(status), "Request completed", done...)
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}

// inboundRequestID accepts a caller supplied id only if it is short printable ASCII.
func inboundRequestID(c *gin.Context) string {
	id := strings.TrimSpace(c.GetHeader(requestIDHeader))
	if id == "" || len(id) > maxRequestIDLen {
		return ""
	}
	for _, r := range id {
		if r < 0x21 || r > 0x7e {
			return ""
		}
	}
	return id
}

func newRequestID(timezone *time.Location) string {
	now := time.Now().In(timezone)
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%s-fallback-%d", now.Format(requestIDTimeFmt), now.UnixNano()%100000000)
	}
	return fmt.Sprintf("%s-%s", now.Format(requestIDTimeFmt), hex.EncodeToString(b))
}
