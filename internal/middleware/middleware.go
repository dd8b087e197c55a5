package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Recovery turns a panic in a handler into a 500 with the same body the
// Lambda entry points return for unhandled errors
func Recovery(logger *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString(RequestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"panic":      recovered,
		}).Error("Recovered from panic")

		c.Header("Access-Control-Allow-Origin", "*")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	})
}

// ErrorHandler logs errors attached to the gin context
func ErrorHandler(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, err := range c.Errors {
			logger.WithFields(logrus.Fields{
				"request_id": c.GetString(RequestIDKey),
				"method":     c.Request.Method,
				"path":       c.Request.URL.Path,
				"error":      err.Error(),
			}).Error("Request error")
		}
	}
}
