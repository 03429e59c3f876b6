package middleware

import (
	"errors"
	"net/http"

	"go-interview-backend/internal/delivery/http/response"
	"go-interview-backend/pkg/apperror"
	"go-interview-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors attached to the context into the JSON
// envelope. AppError carries its own status and code; anything else is a
// 500 with the cause kept server-side only.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Status >= http.StatusInternalServerError {
				logger.Log.Error("Request failed", "path", c.FullPath(), "code", appErr.Code, "error", appErr.Unwrap())
			}
			response.Error(c, appErr.Status, appErr.Message, response.ErrorBody{
				Code:    appErr.Code,
				Message: appErr.Message,
			})
			return
		}

		logger.Log.Error("Unhandled error", "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError,
			"An unexpected error occurred. Please try again later.",
			response.ErrorBody{Code: apperror.CodeInternal, Message: "Internal Server Error"})
	}
}
