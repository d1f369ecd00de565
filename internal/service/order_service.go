package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/shanhu-mall/internal/constants"
	"github.com/shanhu-mall/internal/logger"
	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/queue"
	"github.com/shanhu-mall/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const orderNumberMaxAttempts = 5

// OrderService 订单业务服务
type OrderService struct {
	repo        repository.OrderRepository
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
	queueClient *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(
	repo repository.OrderRepository,
	productRepo repository.ProductRepository,
	cartRepo repository.CartRepository,
	queueClient *queue.Client,
) *OrderService {
	return &OrderService{
		repo:        repo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		queueClient: queueClient,
	}
}

// OrderItemInput 订单项输入
type OrderItemInput struct {
	ProductID uint
	Quantity  int
}

// CreateOrderInput 创建订单输入
type CreateOrderInput struct {
	UserID          uint
	Items           []OrderItemInput
	ShippingName    string
	ShippingPhone   string
	ShippingAddress string
	ShippingZipCode string
	ShippingFee     models.Money
	DiscountAmount  models.Money
	Note            string
	ClearCart       bool
}

// RecordPaymentInput 登记支付记录输入
type RecordPaymentInput struct {
	PaymentMethod string
	PaymentStatus string
	Amount        models.Money
	TransactionID string
	ThirdPartyID  string
}

// Create 创建订单：校验产品、扣减库存、快照订单项，全程单事务
func (s *OrderService) Create(input CreateOrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}
	input.ShippingName = strings.TrimSpace(input.ShippingName)
	input.ShippingAddress = strings.TrimSpace(input.ShippingAddress)
	if input.ShippingName == "" || input.ShippingAddress == "" {
		return nil, ErrValidation
	}

	var created *models.Order
	for attempt := 0; attempt < orderNumberMaxAttempts; attempt++ {
		orderNumber, err := s.generateOrderNumber()
		if err != nil {
			return nil, err
		}
		err = s.createWithNumber(orderNumber, input, &created)
		if err == nil {
			return created, nil
		}
		// 预检查挡不住并发竞争，唯一索引冲突时换号重试
		if isOrderNumberConflict(err) {
			logger.Warnw("order_number_conflict_retry", "order_number", orderNumber, "attempt", attempt+1)
			continue
		}
		return nil, err
	}
	return nil, ErrOrderNumberConflict
}

func (s *OrderService) createWithNumber(orderNumber string, input CreateOrderInput, created **models.Order) error {
	return s.repo.Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		txProductRepo := s.productRepo.WithTx(tx)

		order := &models.Order{
			OrderNumber:     orderNumber,
			UserID:          input.UserID,
			Status:          constants.OrderStatusPending,
			ShippingFee:     input.ShippingFee,
			DiscountAmount:  input.DiscountAmount,
			ShippingName:    input.ShippingName,
			ShippingPhone:   input.ShippingPhone,
			ShippingAddress: input.ShippingAddress,
			ShippingZipCode: input.ShippingZipCode,
			Note:            input.Note,
		}

		total := decimal.Zero
		for _, item := range input.Items {
			product, err := txProductRepo.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil || !product.IsActive {
				return ErrProductNotAvailable
			}
			affected, err := txProductRepo.DecrementStock(product.ID, item.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrStockInsufficient
			}
			subtotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			total = total.Add(subtotal)
			order.Items = append(order.Items, models.OrderItem{
				ProductID:         product.ID,
				ProductName:       product.Name,
				ProductSKU:        product.SKU,
				UnitPrice:         product.Price,
				Quantity:          item.Quantity,
				Subtotal:          models.NewMoneyFromDecimal(subtotal),
				ProductAttributes: snapshotAttributes(product.Attributes),
			})
		}

		order.TotalAmount = models.NewMoneyFromDecimal(total)
		order.FinalAmount = models.NewMoneyFromDecimal(
			total.Add(input.ShippingFee.Decimal).Sub(input.DiscountAmount.Decimal),
		)
		if err := txRepo.Create(order); err != nil {
			return err
		}
		if input.ClearCart && input.UserID != 0 && s.cartRepo != nil {
			if err := s.cartRepo.WithTx(tx).Clear(input.UserID); err != nil {
				return err
			}
		}
		*created = order
		return nil
	})
}

// snapshotAttributes 下单时快照产品属性，产品后续修改不影响历史订单
func snapshotAttributes(values []models.ProductAttributeValue) models.JSON {
	if len(values) == 0 {
		return nil
	}
	snapshot := make(models.JSON, len(values))
	for _, v := range values {
		snapshot[v.Attribute.Name] = v.Value
	}
	return snapshot
}

// isOrderNumberConflict 判断是否为订单号唯一索引冲突
func isOrderNumberConflict(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if !strings.Contains(msg, "order_number") {
		return false
	}
	return strings.Contains(msg, "UNIQUE constraint") || strings.Contains(msg, "duplicate key")
}

// generateOrderNumber 生成订单号：前缀 + UTC 日期 + 8 位随机令牌，冲突时重试
func (s *OrderService) generateOrderNumber() (string, error) {
	for attempt := 0; attempt < orderNumberMaxAttempts; attempt++ {
		token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
		number := fmt.Sprintf("%s%s%s",
			constants.OrderNumberPrefix,
			time.Now().UTC().Format("20060102"),
			token,
		)
		count, err := s.repo.CountByOrderNumber(number)
		if err != nil {
			return "", err
		}
		if count == 0 {
			return number, nil
		}
		logger.Warnw("order_number_collision", "order_number", number, "attempt", attempt+1)
	}
	return "", ErrOrderNumberConflict
}

// GetByOrderNumber 订单详情（userID 非零时校验归属）
func (s *OrderService) GetByOrderNumber(orderNumber string, userID uint) (*models.Order, error) {
	order, err := s.repo.GetByOrderNumber(orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if userID != 0 && order.UserID != userID {
		return nil, ErrNotFound
	}
	return order, nil
}

// ListByUser 用户订单列表
func (s *OrderService) ListByUser(userID uint, status string, page, pageSize int) ([]models.Order, int64, error) {
	return s.repo.List(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
		Status:   status,
	})
}

// ListAdmin 后台订单列表
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.repo.List(filter)
}

// StatusSummary 用户各状态订单数量
func (s *OrderService) StatusSummary(userID uint) (map[string]int64, error) {
	return s.repo.StatusCounts(userID)
}

// RecordPayment 登记支付记录。订单状态不随支付记录联动，发货前需显式标记已支付
func (s *OrderService) RecordPayment(orderNumber string, input RecordPaymentInput) (*models.Payment, error) {
	order, err := s.repo.GetByOrderNumber(orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	method := strings.TrimSpace(input.PaymentMethod)
	if method == "" {
		return nil, ErrValidation
	}
	status := strings.TrimSpace(input.PaymentStatus)
	if status == "" {
		status = constants.PaymentStatusPending
	}
	if !constants.IsValidPaymentStatus(status) {
		return nil, ErrValidation
	}

	payment := &models.Payment{
		OrderID:       order.ID,
		PaymentMethod: method,
		PaymentStatus: status,
		Amount:        input.Amount,
		TransactionID: input.TransactionID,
		ThirdPartyID:  input.ThirdPartyID,
	}
	if status == constants.PaymentStatusSuccess {
		now := time.Now()
		payment.PaidAt = &now
	}
	if err := s.repo.CreatePayment(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// MarkPaid 标记已支付
func (s *OrderService) MarkPaid(orderNumber string) (*models.Order, error) {
	return s.transition(orderNumber, constants.OrderStatusPaid,
		[]string{constants.OrderStatusPending},
		func(order *models.Order, now time.Time) {
			order.PaidAt = &now
		})
}

// MarkProcessing 标记处理中
func (s *OrderService) MarkProcessing(orderNumber string) (*models.Order, error) {
	return s.transition(orderNumber, constants.OrderStatusProcessing,
		[]string{constants.OrderStatusPaid}, nil)
}

// MarkShipped 标记已发货，并同步建立/推进配送记录
func (s *OrderService) MarkShipped(orderNumber string) (*models.Order, error) {
	order, err := s.transition(orderNumber, constants.OrderStatusShipped,
		[]string{constants.OrderStatusPaid, constants.OrderStatusProcessing},
		func(order *models.Order, now time.Time) {
			order.ShippedAt = &now
		})
	if err != nil {
		return nil, err
	}
	if err := s.upsertShipping(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) upsertShipping(order *models.Order) error {
	shipping, err := s.repo.GetShippingByOrderID(order.ID)
	if err != nil {
		return err
	}
	if shipping == nil {
		shipping = &models.Shipping{
			OrderID:        order.ID,
			ShippingStatus: constants.ShippingStatusInTransit,
			ShippedAt:      order.ShippedAt,
		}
		order.Shipping = shipping
		return s.repo.CreateShipping(shipping)
	}
	if shipping.ShippingStatus == constants.ShippingStatusPreparing {
		shipping.ShippingStatus = constants.ShippingStatusInTransit
	}
	if shipping.ShippedAt == nil {
		shipping.ShippedAt = order.ShippedAt
	}
	order.Shipping = shipping
	return s.repo.UpdateShipping(shipping)
}

// MarkDelivered 标记已送达
func (s *OrderService) MarkDelivered(orderNumber string) (*models.Order, error) {
	return s.transition(orderNumber, constants.OrderStatusDelivered,
		[]string{constants.OrderStatusShipped},
		func(order *models.Order, now time.Time) {
			order.DeliveredAt = &now
		})
}

// Cancel 取消订单并回补库存
func (s *OrderService) Cancel(orderNumber string, userID uint) (*models.Order, error) {
	order, err := s.repo.GetByOrderNumber(orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if userID != 0 && order.UserID != userID {
		return nil, ErrNotFound
	}
	switch order.Status {
	case constants.OrderStatusPending, constants.OrderStatusPaid, constants.OrderStatusProcessing:
	default:
		return nil, ErrOrderStatusInvalid
	}

	err = s.repo.Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		txProductRepo := s.productRepo.WithTx(tx)
		for _, item := range order.Items {
			if err := txProductRepo.IncrementStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		order.Status = constants.OrderStatusCancelled
		return txRepo.Update(order)
	})
	if err != nil {
		return nil, err
	}
	s.enqueueStatusEmail(order)
	return order, nil
}

// MarkRefunded 标记已退款
func (s *OrderService) MarkRefunded(orderNumber string) (*models.Order, error) {
	return s.transition(orderNumber, constants.OrderStatusRefunded,
		[]string{
			constants.OrderStatusPaid,
			constants.OrderStatusProcessing,
			constants.OrderStatusShipped,
			constants.OrderStatusDelivered,
			constants.OrderStatusCancelled,
		}, nil)
}

// UpdateAdminNote 更新后台备注
func (s *OrderService) UpdateAdminNote(orderNumber, note string) (*models.Order, error) {
	order, err := s.repo.GetByOrderNumber(orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	order.AdminNote = note
	if err := s.repo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) transition(orderNumber, target string, from []string, apply func(*models.Order, time.Time)) (*models.Order, error) {
	order, err := s.repo.GetByOrderNumber(orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	allowed := false
	for _, status := range from {
		if order.Status == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrOrderStatusInvalid
	}

	now := time.Now()
	order.Status = target
	if apply != nil {
		apply(order, now)
	}
	if err := s.repo.Update(order); err != nil {
		return nil, err
	}
	s.enqueueStatusEmail(order)
	return order, nil
}

func (s *OrderService) enqueueStatusEmail(order *models.Order) {
	if s.queueClient == nil || order == nil {
		return
	}
	payload := queue.OrderStatusEmailPayload{OrderID: order.ID, Status: order.Status}
	if err := s.queueClient.EnqueueOrderStatusEmail(payload); err != nil {
		logger.Warnw("order_status_email_enqueue_failed",
			"order_number", order.OrderNumber,
			"status", order.Status,
			"error", err,
		)
	}
}
