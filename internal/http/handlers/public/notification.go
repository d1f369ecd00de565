package public

import (
	"github.com/shanhu-mall/internal/http/handlers/shared"
	"github.com/shanhu-mall/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListNotifications 我的通知
// GET /api/v1/user/notifications
func (h *Handler) ListNotifications(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	page, pageSize := shared.QueryPagination(c)
	onlyUnread := c.Query("unread") == "true" || c.Query("unread") == "1"
	notifications, total, err := h.NotificationService.List(userID, onlyUnread, page, pageSize)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, notifications, response.NewPagination(page, pageSize, total))
}

// UnreadCount 未读通知数量
// GET /api/v1/user/notifications/unread-count
func (h *Handler) UnreadCount(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	count, err := h.NotificationService.UnreadCount(userID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"unread_count": count})
}

// MarkNotificationRead 标记单条已读
// POST /api/v1/user/notifications/:id/read
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	id, ok := shared.ParamUint(c, "id")
	if !ok {
		return
	}
	if err := h.NotificationService.MarkRead(id, userID); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "已标记已读", nil)
}

// MarkAllNotificationsRead 全部标记已读
// POST /api/v1/user/notifications/read-all
func (h *Handler) MarkAllNotificationsRead(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	updated, err := h.NotificationService.MarkAllRead(userID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"updated": updated})
}
