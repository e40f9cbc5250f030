package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "posada/internal/errors"
)

// ErrorResponse is the JSON error envelope for failed requests.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// MessageResponse is the JSON envelope for simple confirmation messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// parsePathID parses an int64 path parameter.
// Returns ErrInvalidInput if the parameter is not a valid integer.
func parsePathID(c *gin.Context, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// respondWithError attaches err to the context for the error-handling
// middleware, which renders the JSON envelope once the handler returns.
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
}
