package shared

import (
	"errors"

	"github.com/shanhu-mall/internal/http/response"
	"github.com/shanhu-mall/internal/logger"
	"github.com/shanhu-mall/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.S().With("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 返回错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// serviceErrorRule 业务错误到响应码的映射。
type serviceErrorRule struct {
	target error
	code   int
}

var serviceErrorRules = []serviceErrorRule{
	{target: service.ErrNotFound, code: response.CodeNotFound},
	{target: service.ErrValidation, code: response.CodeBadRequest},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest},
	{target: service.ErrEmptyOrder, code: response.CodeBadRequest},
	{target: service.ErrStockInsufficient, code: response.CodeBadRequest},
	{target: service.ErrProductNotAvailable, code: response.CodeBadRequest},
	{target: service.ErrOrderStatusInvalid, code: response.CodeBadRequest},
	{target: service.ErrCircularCategory, code: response.CodeBadRequest},
	{target: service.ErrCaptchaInvalid, code: response.CodeBadRequest},
	{target: service.ErrInvalidCredentials, code: response.CodeBadRequest},
	{target: service.ErrSlugExists, code: response.CodeConflict},
	{target: service.ErrSKUExists, code: response.CodeConflict},
	{target: service.ErrCodeExists, code: response.CodeConflict},
	{target: service.ErrUsernameExists, code: response.CodeConflict},
	{target: service.ErrEmailExists, code: response.CodeConflict},
	{target: service.ErrSettingsExists, code: response.CodeConflict},
	{target: service.ErrShippingExists, code: response.CodeConflict},
	{target: service.ErrOrderNumberConflict, code: response.CodeConflict},
	{target: service.ErrAttributeConflict, code: response.CodeConflict},
	{target: service.ErrUserDisabled, code: response.CodeForbidden},
	{target: service.ErrPermissionDenied, code: response.CodeForbidden},
}

// RespondServiceError 将业务错误映射为统一响应，未知错误按 500 处理。
func RespondServiceError(c *gin.Context, err error) {
	for _, rule := range serviceErrorRules {
		if errors.Is(err, rule.target) {
			response.Error(c, rule.code, err.Error())
			return
		}
	}
	RespondError(c, response.CodeInternal, "服务器内部错误", err)
}
