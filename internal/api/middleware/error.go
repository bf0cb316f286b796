package middleware

import (
	"fmt"
	"net/http"

	"sleeper-luck/internal/api/models"
	"sleeper-luck/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware handles panics and errors
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.WithHTTPContext(c.GetString(RequestIDKey), c.Request.Method, c.Request.URL.Path).
			WithField("panic", fmt.Sprint(recovered)).
			Error("Recovered from panic")

		message := "An unexpected error occurred"
		if err, ok := recovered.(string); ok {
			message = err
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.NewError("INTERNAL_ERROR", message))
	})
}
