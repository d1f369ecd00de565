package admin

import (
	"strconv"
	"time"

	"github.com/shanhu-mall/internal/http/handlers/shared"
	"github.com/shanhu-mall/internal/http/response"
	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/repository"
	"github.com/shanhu-mall/internal/service"

	"github.com/gin-gonic/gin"
)

// ListContactMessages 联系消息列表
// GET /api/v1/admin/contact-messages
func (h *Handler) ListContactMessages(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c)
	filter := repository.ContactMessageListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
	}
	if raw := c.Query("is_replied"); raw != "" {
		replied := raw == "true" || raw == "1"
		filter.IsReplied = &replied
	}
	messages, total, err := h.ContactService.List(filter)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, messages, response.NewPagination(page, pageSize, total))
}

// GetContactMessage 联系消息详情
// GET /api/v1/admin/contact-messages/:id
func (h *Handler) GetContactMessage(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}
	message, err := h.ContactService.GetByID(id)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, message)
}

type replyContactRequest struct {
	ReplyMessage string `json:"reply_message" binding:"required"`
	SendEmail    bool   `json:"send_email"`
}

// ReplyContactMessage 回复联系消息
// POST /api/v1/admin/contact-messages/:id/reply
func (h *Handler) ReplyContactMessage(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}
	var req replyContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	operatorID := shared.OptionalUserID(c)
	message, err := h.ContactService.Reply(id, service.ReplyContactInput{
		ReplyMessage: req.ReplyMessage,
		RepliedByID:  operatorID,
		SendEmail:    req.SendEmail,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "已回复", message)
}

type saveEmailTemplateRequest struct {
	Name        string      `json:"name" binding:"required"`
	Code        string      `json:"code" binding:"required"`
	Subject     string      `json:"subject" binding:"required"`
	HTMLContent string      `json:"html_content"`
	TextContent string      `json:"text_content"`
	Variables   models.JSON `json:"variables"`
	IsActive    *bool       `json:"is_active"`
}

func (r saveEmailTemplateRequest) toInput() service.SaveEmailTemplateInput {
	return service.SaveEmailTemplateInput{
		Name:        r.Name,
		Code:        r.Code,
		Subject:     r.Subject,
		HTMLContent: r.HTMLContent,
		TextContent: r.TextContent,
		Variables:   r.Variables,
		IsActive:    r.IsActive,
	}
}

// ListEmailTemplates 邮件模板列表
// GET /api/v1/admin/email-templates
func (h *Handler) ListEmailTemplates(c *gin.Context) {
	onlyActive := c.Query("only_active") == "true"
	templates, err := h.EmailTemplateService.List(onlyActive)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, templates)
}

// CreateEmailTemplate 创建邮件模板
// POST /api/v1/admin/email-templates
func (h *Handler) CreateEmailTemplate(c *gin.Context) {
	var req saveEmailTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	template, err := h.EmailTemplateService.Create(req.toInput())
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "模板已创建", template)
}

// UpdateEmailTemplate 更新邮件模板
// PUT /api/v1/admin/email-templates/:id
func (h *Handler) UpdateEmailTemplate(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}
	var req saveEmailTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	template, err := h.EmailTemplateService.Update(id, req.toInput())
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "模板已更新", template)
}

// DeleteEmailTemplate 删除邮件模板
// DELETE /api/v1/admin/email-templates/:id
func (h *Handler) DeleteEmailTemplate(c *gin.Context) {
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}
	if err := h.EmailTemplateService.Delete(id); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "模板已删除", nil)
}

// ListActivityLogs 操作日志列表
// GET /api/v1/admin/activity-logs
func (h *Handler) ListActivityLogs(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c)
	filter := repository.ActivityLogListFilter{
		Page:     page,
		PageSize: pageSize,
		Action:   c.Query("action"),
	}
	if raw := c.Query("user_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			userID := uint(id)
			filter.UserID = &userID
		}
	}
	if raw := c.Query("created_from"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.CreatedFrom = &t
		}
	}
	if raw := c.Query("created_to"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.CreatedTo = &t
		}
	}
	logs, total, err := h.ActivityLogService.List(filter)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, logs, response.NewPagination(page, pageSize, total))
}

type sendNotificationRequest struct {
	UserID           uint   `json:"user_id" binding:"required"`
	Title            string `json:"title" binding:"required"`
	Message          string `json:"message"`
	NotificationType string `json:"notification_type"`
	Link             string `json:"link"`
	RelatedType      string `json:"related_type"`
	RelatedID        *uint  `json:"related_id"`
}

// SendNotification 向指定用户发送站内通知
// POST /api/v1/admin/notifications
func (h *Handler) SendNotification(c *gin.Context) {
	var req sendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	notification, err := h.NotificationService.Notify(service.NotifyInput{
		UserID:           req.UserID,
		Title:            req.Title,
		Message:          req.Message,
		NotificationType: req.NotificationType,
		Link:             req.Link,
		RelatedType:      req.RelatedType,
		RelatedID:        req.RelatedID,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "通知已发送", notification)
}
