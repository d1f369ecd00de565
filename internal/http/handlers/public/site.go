package public

import (
	"strconv"

	"github.com/shanhu-mall/internal/http/handlers/shared"
	"github.com/shanhu-mall/internal/http/response"
	"github.com/shanhu-mall/internal/repository"
	"github.com/shanhu-mall/internal/service"

	"github.com/gin-gonic/gin"
)

// GetSiteSettings 站点设置
// GET /api/v1/public/site-settings
func (h *Handler) GetSiteSettings(c *gin.Context) {
	settings, err := h.SiteSettingsService.Current()
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, settings)
}

// ListBanners 有效轮播图
// GET /api/v1/public/banners
func (h *Handler) ListBanners(c *gin.Context) {
	banners, err := h.BannerService.ListValid(c.Request.Context())
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, banners)
}

// ListFAQs 常见问题列表
// GET /api/v1/public/faqs
func (h *Handler) ListFAQs(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c)
	faqs, total, err := h.FAQService.List(repository.FAQListFilter{
		Page:       page,
		PageSize:   pageSize,
		Category:   c.Query("category"),
		Search:     c.Query("search"),
		OnlyActive: true,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, faqs, response.NewPagination(page, pageSize, total))
}

// GetFAQ 常见问题详情（浏览计数）
// GET /api/v1/public/faqs/:id
func (h *Handler) GetFAQ(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}
	faq, err := h.FAQService.GetDetail(id)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, faq)
}

// GetCaptcha 图片验证码
// GET /api/v1/public/captcha
func (h *Handler) GetCaptcha(c *gin.Context) {
	if !h.CaptchaService.Enabled() {
		response.Success(c, gin.H{"enabled": false})
		return
	}
	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "验证码生成失败", err)
		return
	}
	response.Success(c, gin.H{
		"enabled":      true,
		"captcha_id":   challenge.CaptchaID,
		"image_base64": challenge.ImageBase64,
	})
}

type submitContactRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Phone       string `json:"phone"`
	Subject     string `json:"subject" binding:"required"`
	Message     string `json:"message" binding:"required"`
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// SubmitContact 提交联系留言
// POST /api/v1/public/contact
func (h *Handler) SubmitContact(c *gin.Context) {
	var req submitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	message, err := h.ContactService.Submit(service.SubmitContactInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Subject:     req.Subject,
		Message:     req.Message,
		CaptchaID:   req.CaptchaID,
		CaptchaCode: req.CaptchaCode,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "留言已提交", gin.H{"id": strconv.FormatUint(uint64(message.ID), 10)})
}
