package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"fixmate_backend/internal/appErrors"
	"fixmate_backend/internal/logger"
	"fixmate_backend/internal/validator"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindJSON decodes the request body rejecting unknown fields, then runs
// struct validation. Unknown fields are errors so typos cannot silently
// write arbitrary document keys.
func (h *BaseHandler) BindJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(obj); err != nil {
		logger.CtxWarn(ctx, "failed to bind request body", "error", err, "path", c.Request.URL.Path)
		appErrors.HandleError(c, appErrors.ValidationMessage(bindErrorMessage(err)))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			logger.CtxWarn(ctx, "validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			appErrors.HandleError(c, appErrors.ValidationError(vErr.Errors))
		} else {
			appErrors.HandleError(c, appErrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	appErrors.HandleError(c, err)
}

// OK writes a success envelope merging extra keys next to success:true.
func OK(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

func bindErrorMessage(err error) string {
	if errors.Is(err, io.EOF) {
		return "Request body is required"
	}
	msg := err.Error()
	if strings.Contains(msg, "unknown field") {
		return "Invalid request body: " + msg
	}
	return "Invalid request body"
}
