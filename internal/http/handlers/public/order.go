package public

import (
	"github.com/shanhu-mall/internal/constants"
	"github.com/shanhu-mall/internal/http/handlers/shared"
	"github.com/shanhu-mall/internal/http/response"
	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/service"

	"github.com/gin-gonic/gin"
)

type createOrderRequest struct {
	Items []struct {
		ProductID uint `json:"product_id" binding:"required"`
		Quantity  int  `json:"quantity" binding:"required"`
	} `json:"items" binding:"required"`
	ShippingName    string `json:"shipping_name" binding:"required"`
	ShippingPhone   string `json:"shipping_phone"`
	ShippingAddress string `json:"shipping_address" binding:"required"`
	ShippingZipCode string `json:"shipping_zip_code"`
	ShippingFee     string `json:"shipping_fee"`
	Note            string `json:"note"`
	ClearCart       bool   `json:"clear_cart"`
}

// CreateOrder 创建订单
// POST /api/v1/user/orders
func (h *Handler) CreateOrder(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	input := service.CreateOrderInput{
		UserID:          userID,
		ShippingName:    req.ShippingName,
		ShippingPhone:   req.ShippingPhone,
		ShippingAddress: req.ShippingAddress,
		ShippingZipCode: req.ShippingZipCode,
		Note:            req.Note,
		ClearCart:       req.ClearCart,
	}
	if req.ShippingFee != "" {
		fee, err := models.NewMoneyFromString(req.ShippingFee)
		if err != nil {
			response.BadRequest(c, "运费不合法")
			return
		}
		input.ShippingFee = fee
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.OrderService.Create(input)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	h.ActivityLogService.Record(service.RecordInput{
		UserID:      &userID,
		Action:      constants.ActivityActionCreate,
		Description: "创建订单 " + order.OrderNumber,
		IPAddress:   c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
		RelatedType: constants.EntityTypeOrder,
		RelatedID:   &order.ID,
	})
	response.SuccessWithMsg(c, "订单已创建", order)
}

// ListOrders 我的订单
// GET /api/v1/user/orders
func (h *Handler) ListOrders(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	page, pageSize := shared.QueryPagination(c)
	orders, total, err := h.OrderService.ListByUser(userID, c.Query("status"), page, pageSize)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, orders, response.NewPagination(page, pageSize, total))
}

// GetOrder 订单详情
// GET /api/v1/user/orders/:order_number
func (h *Handler) GetOrder(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	order, err := h.OrderService.GetByOrderNumber(c.Param("order_number"), userID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// CancelOrder 取消订单
// POST /api/v1/user/orders/:order_number/cancel
func (h *Handler) CancelOrder(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	order, err := h.OrderService.Cancel(c.Param("order_number"), userID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "订单已取消", order)
}

// GetOrderShipping 订单物流
// GET /api/v1/user/orders/:order_number/shipping
func (h *Handler) GetOrderShipping(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	shipping, err := h.ShippingService.GetByOrderNumber(c.Param("order_number"), userID)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, shipping)
}
