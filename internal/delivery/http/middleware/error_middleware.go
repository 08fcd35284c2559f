package middleware

import (
	"errors"
	"net/http"

	"jobify-backend/internal/delivery/http/response"
	"jobify-backend/internal/domain"
	"jobify-backend/pkg/apperror"
	"jobify-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("Request failed",
					"request_id", c.GetString(string(domain.KeyRequestID)),
					"path", c.FullPath(),
					"error", err,
					"cause", appErr.Err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		// Never expose internal error details to clients.
		logger.Log.Error("Internal Server Error",
			"request_id", c.GetString(string(domain.KeyRequestID)),
			"path", c.FullPath(),
			"error", err,
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
	}
}
