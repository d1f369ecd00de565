package public

import (
	"github.com/shanhu-mall/internal/http/handlers/shared"
	"github.com/shanhu-mall/internal/http/response"

	"github.com/gin-gonic/gin"
)

type cartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// GetCart 购物车汇总
// GET /api/v1/user/cart
func (h *Handler) GetCart(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	summary, err := h.CartService.Summary(userID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, summary)
}

// AddCartItem 加入购物车
// POST /api/v1/user/cart/items
func (h *Handler) AddCartItem(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	if err := h.CartService.Add(userID, req.ProductID, req.Quantity); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "已加入购物车", nil)
}

// UpdateCartItem 更新条目数量
// PUT /api/v1/user/cart/items/:product_id
func (h *Handler) UpdateCartItem(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	productID, ok := shared.ParamUint(c, "product_id")
	if !ok {
		return
	}
	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	if err := h.CartService.UpdateQuantity(userID, productID, req.Quantity); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "数量已更新", nil)
}

// RemoveCartItem 移除条目
// DELETE /api/v1/user/cart/items/:product_id
func (h *Handler) RemoveCartItem(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	productID, ok := shared.ParamUint(c, "product_id")
	if !ok {
		return
	}
	if err := h.CartService.Remove(userID, productID); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "已移除", nil)
}

// ClearCart 清空购物车
// DELETE /api/v1/user/cart
func (h *Handler) ClearCart(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(userID); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "购物车已清空", nil)
}

// GetWishlist 心愿单
// GET /api/v1/user/wishlist
func (h *Handler) GetWishlist(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	items, err := h.WishlistService.List(userID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, items)
}

// AddWishlistItem 加入心愿单
// POST /api/v1/user/wishlist/:product_id
func (h *Handler) AddWishlistItem(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	productID, ok := shared.ParamUint(c, "product_id")
	if !ok {
		return
	}
	if err := h.WishlistService.Add(userID, productID); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "已加入心愿单", nil)
}

// RemoveWishlistItem 移出心愿单
// DELETE /api/v1/user/wishlist/:product_id
func (h *Handler) RemoveWishlistItem(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	productID, ok := shared.ParamUint(c, "product_id")
	if !ok {
		return
	}
	if err := h.WishlistService.Remove(userID, productID); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "已移出心愿单", nil)
}
