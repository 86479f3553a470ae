package middleware

import (
	"log/slog"
	"net/http"

	"cinebook/internal/handler/httperr"
	"cinebook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					// AbortWithError keeps the original error here; surface it for 500s.
					if resp.Status >= http.StatusInternalServerError {
						slog.Error("request failed",
							slog.String("request_id", GetRequestID(c)),
							slog.String("path", c.Request.URL.Path),
							slog.Any("stack", errs.ExtractStackLines(err.Err, 10)),
						)
					}
					if !c.Writer.Written() {
						c.JSON(resp.Status, resp)
					}
					return
				}
			}
		}
		if c.Writer.Written() {
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				resp := httperr.Response{Status: http.StatusInternalServerError, Message: "Internal server error"}

				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}
