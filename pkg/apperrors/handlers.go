package apperrors

import (
	"atelier_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// GinErrorHandler renders errors as the flat JSON body {code, domain, message, details}.
type GinErrorHandler struct {
	// Debug exposes the message of errors that are not AppErrors.
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
		if h.Debug {
			appErr.Details = err.Error()
		}
	}

	if appErr.HTTPCode >= 500 {
		cause := appErr.Unwrap()
		if cause == nil {
			cause = appErr
		}
		logger.CtxWithError(c.Request.Context(), appErr.Message, cause,
			"domain", appErr.Domain,
			"code", string(appErr.Code),
			"path", c.FullPath(),
		)
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, appErr)
}

var defaultHandler = &GinErrorHandler{}

// SetDebug switches the default handler to debug mode; called once at startup.
func SetDebug(debug bool) {
	defaultHandler = &GinErrorHandler{Debug: debug}
}

func HandleError(c *gin.Context, err error) {
	defaultHandler.HandleGinError(c, err)
}
