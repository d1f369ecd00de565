package shared

import (
	"strconv"

	"github.com/shanhu-mall/internal/http/response"

	"github.com/gin-gonic/gin"
)

// 鉴权中间件写入上下文的键
const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
	ContextIsStaffKey  = "is_staff"
)

// CurrentUserID 从上下文读取当前用户 ID，缺失时写 401 响应。
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextUserIDKey)
	if !exists {
		response.Unauthorized(c, "未登录")
		return 0, false
	}
	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			response.BadRequest(c, "用户标识不合法")
			return 0, false
		}
		return uint(v), true
	case float64:
		if v < 0 {
			response.BadRequest(c, "用户标识不合法")
			return 0, false
		}
		return uint(v), true
	default:
		response.Error(c, response.CodeInternal, "用户标识类型错误")
		return 0, false
	}
}

// OptionalUserID 读取当前用户 ID，未登录时返回 0 且不写响应。
func OptionalUserID(c *gin.Context) uint {
	value, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0
	}
	if id, ok := value.(uint); ok {
		return id
	}
	return 0
}

// ParamUint 读取路径参数并转成 uint，非法时写 400 响应。
func ParamUint(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "路径参数不合法")
		return 0, false
	}
	return uint(id), true
}
