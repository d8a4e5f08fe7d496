package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"rental-core/internal/handler/httperr"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	return resp
}

// ErrorHandler writes the envelope of the last public error when a handler
// recorded one without writing a body. 5xx causes are logged with the
// request id; the client only sees the public message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			if resp, ok := e.Meta.(httperr.Response); ok && resp.Status < http.StatusInternalServerError {
				continue
			}
			slog.Error("request failed",
				"request_id", GetRequestID(c),
				"method", c.Request.Method,
				"path", c.FullPath(),
				"error", e.Err)
		}

		if c.Writer.Written() {
			return
		}
		if e := c.Errors.ByType(gin.ErrorTypePublic).Last(); e != nil {
			if resp, ok := e.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, internalError())
		}
	}
}

// CustomRecovery turns a handler panic into a 500 envelope and logs the
// panic value with a stack.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err, ok := r.(error)
				if !ok {
					err = errors.Newf("panic: %v", r)
				}
				slog.Error("recovered from panic",
					"request_id", GetRequestID(c),
					"path", c.Request.URL.Path,
					"error", fmt.Sprintf("%+v", errors.WithStack(err)))

				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
			}
		}()
		c.Next()
	}
}
