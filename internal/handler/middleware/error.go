package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"gin-storefront/internal/handler/httperr"
	"gin-storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const msgInternal = "Internal server error"

// ErrorHandler renders an error body for requests that ended without writing one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 && c.Writer.Status() == http.StatusOK {
			return
		}

		if resp, ok := lastPublicResponse(c); ok {
			c.JSON(resp.Status, resp)
			return
		}
		for _, e := range c.Errors {
			if errs.Is(e.Err, errs.ErrUpstreamCatalog) {
				c.JSON(http.StatusBadGateway, httperr.Response{Error: "Catalog service unavailable"})
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Response{Error: msgInternal})
	}
}

func lastPublicResponse(c *gin.Context) (httperr.Response, bool) {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		e := c.Errors[i]
		if !e.IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := e.Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

// CustomRecovery turns a panic into a 500 and logs it with the request id.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("panic: %v", rec)
			}
			slog.ErrorContext(c.Request.Context(), "recovered from panic",
				slog.String("error", err.Error()),
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.String("request_id", GetRequestID(c)))

			c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Response{
				Status: http.StatusInternalServerError,
				Error:  msgInternal,
			})
		}()
		c.Next()
	}
}
