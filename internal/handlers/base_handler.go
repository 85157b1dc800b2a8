package handlers

import (
	"errors"
	"strconv"

	"atelier_backend/internal/logger"
	"atelier_backend/internal/validator"
	"atelier_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ============================================================================
// 1. Base handler
// ============================================================================

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// ============================================================================
// 2. Binding and validation
// ============================================================================

// BindAndValidate_JSON decodes the body into obj and validates it.
// On failure the error response is already written and false is returned.
func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWarn(ctx, "Failed to bind JSON body", "error", err.Error(), "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.ErrInvalidRequestBody)
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Map(), "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Summary(), vErr.Map()))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// ============================================================================
// 3. Error handling
// ============================================================================

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		if appErr.HTTPCode < 500 {
			logger.CtxWarn(ctx, "Service error",
				"error", appErr.Message,
				"code", appErr.Code,
				"path", c.Request.URL.Path,
			)
		}
		apperrors.HandleError(c, appErr)
		return
	}
	apperrors.HandleError(c, apperrors.InternalError(err))
}

// ============================================================================
// 4. Parsing helpers
// ============================================================================

// ParseParamID reads an integer id from the path. Only non-numeric input is
// rejected; ids that no record can have map to 0 so the lookup reports not found.
func ParseParamID(c *gin.Context, key string) (uint, error) {
	value, err := strconv.ParseInt(c.Param(key), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, nil
		}
		return 0, apperrors.ErrInvalidID
	}
	if value <= 0 || uint64(value) > uint64(^uint(0)) {
		return 0, nil
	}
	return uint(value), nil
}

// paramID is ParseParamID that writes the 400 itself.
func (h *BaseHandler) paramID(c *gin.Context) (uint, bool) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		logger.CtxWarn(c.Request.Context(), "Invalid path id", "value", c.Param("id"), "path", c.Request.URL.Path)
		apperrors.HandleError(c, err)
		return 0, false
	}
	return id, true
}
