package public

import (
	"time"

	"github.com/shanhu-mall/internal/constants"
	"github.com/shanhu-mall/internal/http/handlers/shared"
	"github.com/shanhu-mall/internal/http/response"
	"github.com/shanhu-mall/internal/service"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register 注册
// POST /api/v1/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	user, err := h.UserService.Register(service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	h.ActivityLogService.Record(service.RecordInput{
		UserID:    &user.ID,
		Action:    constants.ActivityActionCreate,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	response.SuccessWithMsg(c, "注册成功", user)
}

// Login 登录
// POST /api/v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	user, token, expiresAt, err := h.UserService.Login(req.Username, req.Password)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	h.ActivityLogService.Record(service.RecordInput{
		UserID:    &user.ID,
		Action:    constants.ActivityActionLogin,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	response.Success(c, gin.H{
		"token":      token,
		"expires_at": expiresAt.Format(time.RFC3339),
		"user":       user,
	})
}
