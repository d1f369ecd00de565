package public

import (
	"github.com/shanhu-mall/internal/http/handlers/shared"
	"github.com/shanhu-mall/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Dashboard 用户个人概览：订单状态分布、未读通知、购物车与心愿单数量、最近订单
// GET /api/v1/user/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}

	orderCounts, err := h.OrderService.StatusSummary(userID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	unread, err := h.NotificationService.UnreadCount(userID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	cart, err := h.CartService.Summary(userID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	wishlist, err := h.WishlistService.List(userID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	recentOrders, _, err := h.OrderService.ListByUser(userID, "", 1, 5)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}

	response.Success(c, gin.H{
		"order_status_counts":  orderCounts,
		"unread_notifications": unread,
		"cart_items":           cart.TotalItems,
		"wishlist_items":       len(wishlist),
		"recent_orders":        recentOrders,
	})
}
