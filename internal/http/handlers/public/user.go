package public

import (
	"time"

	"github.com/shanhu-mall/internal/http/handlers/shared"
	"github.com/shanhu-mall/internal/http/response"
	"github.com/shanhu-mall/internal/service"

	"github.com/gin-gonic/gin"
)

type updateProfileRequest struct {
	Phone     string `json:"phone"`
	Avatar    string `json:"avatar"`
	BirthDate string `json:"birth_date"`
	Gender    string `json:"gender"`
	Address   string `json:"address"`
	Company   string `json:"company"`
	Position  string `json:"position"`
	Bio       string `json:"bio"`
	Website   string `json:"website"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// GetProfile 当前用户信息
// GET /api/v1/user/profile
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	user, err := h.UserService.GetByID(userID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, user)
}

// UpdateProfile 更新资料
// PUT /api/v1/user/profile
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	input := service.UpdateProfileInput{
		Phone:    req.Phone,
		Avatar:   req.Avatar,
		Gender:   req.Gender,
		Address:  req.Address,
		Company:  req.Company,
		Position: req.Position,
		Bio:      req.Bio,
		Website:  req.Website,
	}
	if req.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			response.BadRequest(c, "出生日期格式不合法")
			return
		}
		input.BirthDate = &birthDate
	}
	user, err := h.UserService.UpdateProfile(userID, input)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "资料已更新", user)
}

// ChangePassword 修改密码
// POST /api/v1/user/change-password
func (h *Handler) ChangePassword(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	if err := h.UserService.ChangePassword(userID, req.OldPassword, req.NewPassword); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "密码已修改", nil)
}
