package admin

import (
	"time"

	"github.com/shanhu-mall/internal/http/handlers/shared"
	"github.com/shanhu-mall/internal/http/response"
	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/repository"
	"github.com/shanhu-mall/internal/service"

	"github.com/gin-gonic/gin"
)

// ListOrders 后台订单列表
// GET /api/v1/admin/orders
func (h *Handler) ListOrders(c *gin.Context) {
	page, pageSize := shared.QueryPagination(c)
	filter := repository.OrderListFilter{
		Page:        page,
		PageSize:    pageSize,
		Status:      c.Query("status"),
		OrderNumber: c.Query("order_number"),
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

	orders, total, err := h.OrderService.ListAdmin(filter)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, orders, response.NewPagination(page, pageSize, total))
}

// GetOrder 后台订单详情
// GET /api/v1/admin/orders/:order_number
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.OrderService.GetByOrderNumber(c.Param("order_number"), 0)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

type recordPaymentRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
	PaymentStatus string `json:"payment_status"`
	Amount        string `json:"amount" binding:"required"`
	TransactionID string `json:"transaction_id"`
	ThirdPartyID  string `json:"third_party_id"`
}

// RecordPayment 登记支付记录
// POST /api/v1/admin/orders/:order_number/payments
func (h *Handler) RecordPayment(c *gin.Context) {
	var req recordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	amount, err := models.NewMoneyFromString(req.Amount)
	if err != nil {
		response.BadRequest(c, "金额格式不合法")
		return
	}
	payment, err := h.OrderService.RecordPayment(c.Param("order_number"), service.RecordPaymentInput{
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: req.PaymentStatus,
		Amount:        amount,
		TransactionID: req.TransactionID,
		ThirdPartyID:  req.ThirdPartyID,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "支付记录已登记", payment)
}

// MarkOrderPaid 标记已支付
// POST /api/v1/admin/orders/:order_number/mark-paid
func (h *Handler) MarkOrderPaid(c *gin.Context) {
	h.respondTransition(c, h.OrderService.MarkPaid)
}

// MarkOrderProcessing 标记处理中
// POST /api/v1/admin/orders/:order_number/mark-processing
func (h *Handler) MarkOrderProcessing(c *gin.Context) {
	h.respondTransition(c, h.OrderService.MarkProcessing)
}

// MarkOrderShipped 标记已发货
// POST /api/v1/admin/orders/:order_number/mark-shipped
func (h *Handler) MarkOrderShipped(c *gin.Context) {
	h.respondTransition(c, h.OrderService.MarkShipped)
}

// MarkOrderDelivered 标记已送达
// POST /api/v1/admin/orders/:order_number/mark-delivered
func (h *Handler) MarkOrderDelivered(c *gin.Context) {
	h.respondTransition(c, h.OrderService.MarkDelivered)
}

// MarkOrderRefunded 标记已退款
// POST /api/v1/admin/orders/:order_number/mark-refunded
func (h *Handler) MarkOrderRefunded(c *gin.Context) {
	h.respondTransition(c, h.OrderService.MarkRefunded)
}

// CancelOrder 后台取消订单
// POST /api/v1/admin/orders/:order_number/cancel
func (h *Handler) CancelOrder(c *gin.Context) {
	order, err := h.OrderService.Cancel(c.Param("order_number"), 0)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "订单已取消", order)
}

func (h *Handler) respondTransition(c *gin.Context, transition func(string) (*models.Order, error)) {
	order, err := transition(c.Param("order_number"))
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "订单状态已更新", order)
}

// UpdateOrderNote 更新后台备注
// PUT /api/v1/admin/orders/:order_number/note
func (h *Handler) UpdateOrderNote(c *gin.Context) {
	var req struct {
		AdminNote string `json:"admin_note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	order, err := h.OrderService.UpdateAdminNote(c.Param("order_number"), req.AdminNote)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "备注已更新", order)
}

type createShippingRequest struct {
	ShippingCompany string `json:"shipping_company" binding:"required"`
	TrackingNumber  string `json:"tracking_number"`
}

// CreateShipping 创建物流记录
// POST /api/v1/admin/orders/:order_number/shipping
func (h *Handler) CreateShipping(c *gin.Context) {
	var req createShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	shipping, err := h.ShippingService.Create(c.Param("order_number"), service.CreateShippingInput{
		ShippingCompany: req.ShippingCompany,
		TrackingNumber:  req.TrackingNumber,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "物流记录已创建", shipping)
}

type updateShippingRequest struct {
	ShippingStatus string `json:"shipping_status" binding:"required"`
	Location       string `json:"location"`
	Description    string `json:"description"`
}

// UpdateShippingStatus 更新物流状态
// PUT /api/v1/admin/orders/:order_number/shipping
func (h *Handler) UpdateShippingStatus(c *gin.Context) {
	var req updateShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	var tracking *service.AddTrackingInput
	if req.Description != "" {
		tracking = &service.AddTrackingInput{
			Location:    req.Location,
			Description: req.Description,
		}
	}
	shipping, err := h.ShippingService.UpdateStatus(c.Param("order_number"), req.ShippingStatus, tracking)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "物流状态已更新", shipping)
}

type addTrackingRequest struct {
	Location    string `json:"location"`
	Description string `json:"description" binding:"required"`
	Timestamp   string `json:"timestamp"`
}

// AddShippingTracking 追加物流轨迹
// POST /api/v1/admin/orders/:order_number/shipping/tracking
func (h *Handler) AddShippingTracking(c *gin.Context) {
	var req addTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数不合法")
		return
	}
	input := service.AddTrackingInput{
		Location:    req.Location,
		Description: req.Description,
	}
	if req.Timestamp != "" {
		t, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			response.BadRequest(c, "时间格式不合法")
			return
		}
		input.Timestamp = &t
	}
	record, err := h.ShippingService.AddTracking(c.Param("order_number"), input)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "轨迹已追加", record)
}

// Dashboard 后台概览
// GET /api/v1/admin/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	overview, err := h.DashboardService.Overview()
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Success(c, overview)
}
