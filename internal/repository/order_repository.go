package repository

import (
	"errors"
	"time"

	"github.com/shanhu-mall/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByOrderNumber(orderNumber string) (*models.Order, error)
	List(filter OrderListFilter) ([]models.Order, int64, error)
	Update(order *models.Order) error
	CountByOrderNumber(orderNumber string) (int64, error)
	StatusCounts(userID uint) (map[string]int64, error)
	SumFinalAmountSince(status string, since time.Time) (models.Money, error)

	CreatePayment(payment *models.Payment) error
	UpdatePayment(payment *models.Payment) error
	ListPayments(orderID uint) ([]models.Payment, error)

	GetShippingByOrderID(orderID uint) (*models.Shipping, error)
	CreateShipping(shipping *models.Shipping) error
	UpdateShipping(shipping *models.Shipping) error
	CreateTracking(record *models.ShippingTracking) error

	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) OrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) OrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Transaction 在事务中执行
func (r *GormOrderRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

// Create 创建订单（级联写入订单项）
func (r *GormOrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *GormOrderRepository) preloadOrder(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Items").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Shipping").
		Preload("Shipping.TrackingRecords", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp DESC")
		})
}

// GetByID 根据 ID 获取订单
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.preloadOrder(r.db).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByOrderNumber 根据订单号获取订单
func (r *GormOrderRepository) GetByOrderNumber(orderNumber string) (*models.Order, error) {
	var order models.Order
	if err := r.preloadOrder(r.db).Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// List 订单列表
func (r *GormOrderRepository) List(filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})
	if filter.UserID > 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OrderNumber != "" {
		query = query.Where("order_number LIKE ?", "%"+filter.OrderNumber+"%")
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	if err := applyPagination(query, filter.Page, filter.PageSize).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// Update 更新订单
func (r *GormOrderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

// CountByOrderNumber 订单号存在性检查
func (r *GormOrderRepository) CountByOrderNumber(orderNumber string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Where("order_number = ?", orderNumber).Count(&count).Error
	return count, err
}

// StatusCounts 各状态订单数量统计，userID 大于 0 时只统计该用户
func (r *GormOrderRepository) StatusCounts(userID uint) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	query := r.db.Model(&models.Order{})
	if userID > 0 {
		query = query.Where("user_id = ?", userID)
	}
	var rows []row
	if err := query.
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, item := range rows {
		counts[item.Status] = item.Count
	}
	return counts, nil
}

// SumFinalAmountSince 指定状态与时间之后的实付总额
func (r *GormOrderRepository) SumFinalAmountSince(status string, since time.Time) (models.Money, error) {
	var total models.Money
	err := r.db.Model(&models.Order{}).
		Where("status = ? AND created_at >= ?", status, since).
		Select("COALESCE(SUM(final_amount), 0)").
		Scan(&total).Error
	return total, err
}

// CreatePayment 创建支付记录
func (r *GormOrderRepository) CreatePayment(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

// UpdatePayment 更新支付记录
func (r *GormOrderRepository) UpdatePayment(payment *models.Payment) error {
	return r.db.Save(payment).Error
}

// ListPayments 订单的支付记录
func (r *GormOrderRepository) ListPayments(orderID uint) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.Where("order_id = ?", orderID).Order("created_at DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// GetShippingByOrderID 订单的物流信息
func (r *GormOrderRepository) GetShippingByOrderID(orderID uint) (*models.Shipping, error) {
	var shipping models.Shipping
	if err := r.db.Preload("TrackingRecords", func(db *gorm.DB) *gorm.DB {
		return db.Order("timestamp DESC")
	}).Where("order_id = ?", orderID).First(&shipping).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shipping, nil
}

// CreateShipping 创建物流记录
func (r *GormOrderRepository) CreateShipping(shipping *models.Shipping) error {
	return r.db.Create(shipping).Error
}

// UpdateShipping 更新物流记录
func (r *GormOrderRepository) UpdateShipping(shipping *models.Shipping) error {
	return r.db.Save(shipping).Error
}

// CreateTracking 追加物流轨迹
func (r *GormOrderRepository) CreateTracking(record *models.ShippingTracking) error {
	return r.db.Create(record).Error
}
