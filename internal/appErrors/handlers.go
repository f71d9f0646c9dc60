package appErrors

import (
	"fixmate_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire envelope for failures: a stable success flag,
// a human-readable message and, for validation failures, per-field details.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleError maps any error to the wire envelope. Unknown errors are
// wrapped as internal and their cause is logged, not exposed.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxError(c.Request.Context(), "server error",
			"code", string(appErr.Code),
			"error", appErr.Error(),
		)
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{
		Success: false,
		Message: appErr.Message,
		Details: appErr.Details,
	})
}
