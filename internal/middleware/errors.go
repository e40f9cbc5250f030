package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "posada/internal/errors"
	"posada/internal/logger"
)

// ErrorHandler returns a Gin middleware that renders errors attached to the
// context via c.Error into the JSON error envelope. It is the single place
// responses for failed operations are produced: handlers only attach errors
// and return. AppErrors keep their code, message, and status; anything else
// is logged with the request ID and becomes a generic internal error so no
// detail leaks to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		if c.Writer.Written() {
			// A handler already produced a response; the error was
			// informational.
			return
		}

		// Render the last error: with one attach per failed operation it is
		// the one that aborted the handler.
		err := c.Errors.Last().Err
		requestID := c.GetString(requestIDKey)

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			if appErr.Internal != nil {
				logger.Get().Errorw("operation failed",
					"request_id", requestID,
					"code", appErr.Code,
					"message", appErr.Message,
					"internal", appErr.Internal.Error(),
					"path", c.Request.URL.Path,
				)
			}
			c.JSON(appErr.StatusCode, gin.H{
				"error": gin.H{
					"code":    appErr.Code,
					"message": appErr.Message,
				},
			})
			return
		}

		// Unexpected error: log full details, return generic message
		logger.Get().Errorw("unexpected error",
			"request_id", requestID,
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
			"error": gin.H{
				"code":    apperrors.ErrInternalServer.Code,
				"message": apperrors.ErrInternalServer.Message,
			},
		})
	}
}
