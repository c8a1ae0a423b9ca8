package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"locker-hub/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the last public error for handlers that recorded one
// without writing a body, and logs the cause of every 5xx answer.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		logServerErrors(c)

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

func logServerErrors(c *gin.Context) {
	if c.Writer.Status() < http.StatusInternalServerError || len(c.Errors) == 0 {
		return
	}
	for _, err := range c.Errors {
		slog.Error("request failed",
			"request_id", GetRequestID(c),
			"route", c.FullPath(),
			"error", fmt.Sprintf("%+v", err.Err))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"error", rec,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c))

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
