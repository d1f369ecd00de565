package admin

import (
	"time"

	"github.com/shanhu-mall/internal/http/handlers/shared"
	"github.com/shanhu-mall/internal/http/response"
	"github.com/shanhu-mall/internal/repository"
	"github.com/shanhu-mall/internal/service"

	"github.com/gin-gonic/gin"
)

type saveSiteSettingsRequest struct {
	SiteName        string `json:"site_name"`
	SiteDescription string `json:"site_description"`
	SiteKeywords    string `json:"site_keywords"`
	Logo            string `json:"logo"`
	Favicon         string `json:"favicon"`
	ContactEmail    string `json:"contact_email"`
	ContactPhone    string `json:"contact_phone"`
	Address         string `json:"address"`
	WeiboURL        string `json:"weibo_url"`
	WechatQR        string `json:"wechat_qr"`
	GoogleAnalytics string `json:"google_analytics"`
	BaiduAnalytics  string `json:"baidu_analytics"`
	MaintenanceMode *bool  `json:"maintenance_mode"`
	MaintenanceMsg  string `json:"maintenance_message"`
}

func (r saveSiteSettingsRequest) toInput() service.SaveSiteSettingsInput {
	return service.SaveSiteSettingsInput{
		SiteName:        r.SiteName,
		SiteDescription: r.SiteDescription,
		SiteKeywords:    r.SiteKeywords,
		Logo:            r.Logo,
		Favicon:         r.Favicon,
		ContactEmail:    r.ContactEmail,
		ContactPhone:    r.ContactPhone,
		Address:         r.Address,
		WeiboURL:        r.WeiboURL,
		WechatQR:        r.WechatQR,
		GoogleAnalytics: r.GoogleAnalytics,
		BaiduAnalytics:  r.BaiduAnalytics,
		MaintenanceMode: r.MaintenanceMode,
		MaintenanceMsg:  r.MaintenanceMsg,
	}
}

// GetSiteSettings 站点设置
// GET /api/v1/admin/site-settings
func (h *Handler) GetSiteSettings(c *gin.Context) {
	settings, err := h.SiteSettingsService.Current()
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, settings)
}

// CreateSiteSettings 创建站点设置（仅允许一行）
// POST /api/v1/admin/site-settings
func (h *Handler) CreateSiteSettings(c *gin.Context) {
	var req saveSiteSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	settings, err := h.SiteSettingsService.Create(req.toInput())
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "站点设置已创建", settings)
}

// UpdateSiteSettings 更新站点设置
// PUT /api/v1/admin/site-settings
func (h *Handler) UpdateSiteSettings(c *gin.Context) {
	var req saveSiteSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	settings, err := h.SiteSettingsService.Update(req.toInput())
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "站点设置已更新", settings)
}

type saveBannerRequest struct {
	Title      string `json:"title" binding:"required"`
	Subtitle   string `json:"subtitle"`
	Image      string `json:"image" binding:"required"`
	Link       string `json:"link"`
	ButtonText string `json:"button_text"`
	IsActive   *bool  `json:"is_active"`
	SortOrder  int    `json:"sort_order"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r saveBannerRequest) toInput() (service.SaveBannerInput, error) {
	input := service.SaveBannerInput{
		Title:      r.Title,
		Subtitle:   r.Subtitle,
		Image:      r.Image,
		Link:       r.Link,
		ButtonText: r.ButtonText,
		IsActive:   r.IsActive,
		SortOrder:  r.SortOrder,
	}
	if r.StartDate != "" {
		t, err := time.Parse(time.RFC3339, r.StartDate)
		if err != nil {
			return input, err
		}
		input.StartDate = &t
	}
	if r.EndDate != "" {
		t, err := time.Parse(time.RFC3339, r.EndDate)
		if err != nil {
			return input, err
		}
		input.EndDate = &t
	}
	return input, nil
}

// ListBanners 后台轮播图列表
// GET /api/v1/admin/banners
func (h *Handler) ListBanners(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c)
	banners, total, err := h.BannerService.ListAdmin(repository.BannerListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, banners, response.NewPagination(page, pageSize, total))
}

// CreateBanner 创建轮播图
// POST /api/v1/admin/banners
func (h *Handler) CreateBanner(c *gin.Context) {
	var req saveBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.BadRequest(c, "时间格式不合法")
		return
	}
	banner, err := h.BannerService.Create(c.Request.Context(), input)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "轮播图已创建", banner)
}

// UpdateBanner 更新轮播图
// PUT /api/v1/admin/banners/:id
func (h *Handler) UpdateBanner(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}
	var req saveBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.BadRequest(c, "时间格式不合法")
		return
	}
	banner, err := h.BannerService.Update(c.Request.Context(), id, input)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "轮播图已更新", banner)
}

// DeleteBanner 删除轮播图
// DELETE /api/v1/admin/banners/:id
func (h *Handler) DeleteBanner(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}
	if err := h.BannerService.Delete(c.Request.Context(), id); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "轮播图已删除", nil)
}

type saveFAQRequest struct {
	Question  string `json:"question" binding:"required"`
	Answer    string `json:"answer" binding:"required"`
	Category  string `json:"category"`
	IsActive  *bool  `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

// ListFAQs 后台常见问题列表
// GET /api/v1/admin/faqs
func (h *Handler) ListFAQs(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c)
	faqs, total, err := h.FAQService.List(repository.FAQListFilter{
		Page:     page,
		PageSize: pageSize,
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, faqs, response.NewPagination(page, pageSize, total))
}

// CreateFAQ 创建常见问题
// POST /api/v1/admin/faqs
func (h *Handler) CreateFAQ(c *gin.Context) {
	var req saveFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	faq, err := h.FAQService.Create(service.SaveFAQInput{
		Question:  req.Question,
		Answer:    req.Answer,
		Category:  req.Category,
		IsActive:  req.IsActive,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "问题已创建", faq)
}

// UpdateFAQ 更新常见问题
// PUT /api/v1/admin/faqs/:id
func (h *Handler) UpdateFAQ(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}
	var req saveFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	faq, err := h.FAQService.Update(id, service.SaveFAQInput{
		Question:  req.Question,
		Answer:    req.Answer,
		Category:  req.Category,
		IsActive:  req.IsActive,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "问题已更新", faq)
}

// DeleteFAQ 删除常见问题
// DELETE /api/v1/admin/faqs/:id
func (h *Handler) DeleteFAQ(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}
	if err := h.FAQService.Delete(id); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "问题已删除", nil)
}
