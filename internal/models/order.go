package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order 订单表
type Order struct {
	ID             uint           `gorm:"primarykey" json:"id"`                                        // 主键
	OrderNumber    string         `gorm:"uniqueIndex;not null" json:"order_number"`                    // 订单号（创建时生成，之后不变）
	UserID         uint           `gorm:"index;not null" json:"user_id"`                               // 用户ID
	Status         string         `gorm:"type:varchar(20);index;not null;default:'pending'" json:"status"` // 订单状态
	TotalAmount    Money          `gorm:"type:decimal(10,2);not null;default:0" json:"total_amount"`   // 总金额
	ShippingFee    Money          `gorm:"type:decimal(8,2);not null;default:0" json:"shipping_fee"`    // 运费
	DiscountAmount Money          `gorm:"type:decimal(8,2);not null;default:0" json:"discount_amount"` // 优惠金额
	FinalAmount    Money          `gorm:"type:decimal(10,2);not null;default:0" json:"final_amount"`   // 实付金额

	// 收货信息快照（下单时拷贝，不随用户资料变更）
	ShippingName    string `gorm:"type:varchar(100);not null" json:"shipping_name"`  // 收货人姓名
	ShippingPhone   string `gorm:"type:varchar(20);not null" json:"shipping_phone"`  // 收货人电话
	ShippingAddress string `gorm:"type:text;not null" json:"shipping_address"`       // 收货地址
	ShippingZipCode string `gorm:"type:varchar(10)" json:"shipping_zip_code"`        // 邮政编码

	Note      string `gorm:"type:text" json:"note"`       // 订单备注
	AdminNote string `gorm:"type:text" json:"admin_note"` // 管理员备注

	CreatedAt   time.Time      `gorm:"index" json:"created_at"`  // 创建时间
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`  // 更新时间
	PaidAt      *time.Time     `gorm:"index" json:"paid_at"`     // 付款时间
	ShippedAt   *time.Time     `gorm:"index" json:"shipped_at"`  // 发货时间
	DeliveredAt *time.Time     `gorm:"index" json:"delivered_at"` // 送达时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`           // 软删除时间

	// 关联
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`    // 订单项
	Payments []Payment   `gorm:"foreignKey:OrderID" json:"payments,omitempty"` // 支付记录
	Shipping *Shipping   `gorm:"foreignKey:OrderID" json:"shipping,omitempty"` // 配送记录
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// OrderItem 订单项表（快照产品名称/SKU/属性，产品后续修改不影响历史订单）
type OrderItem struct {
	ID                uint      `gorm:"primarykey" json:"id"`                                    // 主键
	OrderID           uint      `gorm:"index;not null" json:"order_id"`                          // 订单ID
	ProductID         uint      `gorm:"index;not null" json:"product_id"`                        // 产品ID
	ProductName       string    `gorm:"type:varchar(200);not null" json:"product_name"`          // 产品名称快照
	ProductSKU        string    `gorm:"type:varchar(50);not null" json:"product_sku"`            // 产品SKU快照
	UnitPrice         Money     `gorm:"type:decimal(10,2);not null" json:"unit_price"`           // 单价
	Quantity          int       `gorm:"not null" json:"quantity"`                                // 数量
	Subtotal          Money     `gorm:"type:decimal(10,2);not null" json:"subtotal"`             // 小计（unit_price * quantity）
	ProductAttributes JSON      `gorm:"type:json" json:"product_attributes"`                     // 产品属性快照
	CreatedAt         time.Time `gorm:"index" json:"created_at"`                                 // 创建时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}

// BeforeSave 保存前重算小计
func (i *OrderItem) BeforeSave(tx *gorm.DB) error {
	i.Subtotal = NewMoneyFromDecimal(i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))))
	return nil
}

// Payment 支付记录表（状态独立于订单状态）
type Payment struct {
	ID            uint       `gorm:"primarykey" json:"id"`                                                  // 主键
	OrderID       uint       `gorm:"index;not null" json:"order_id"`                                        // 订单ID
	PaymentMethod string     `gorm:"type:varchar(20);not null" json:"payment_method"`                       // 支付方式（alipay/wechat/bank_card/cash/other）
	PaymentStatus string     `gorm:"type:varchar(20);index;not null;default:'pending'" json:"payment_status"` // 支付状态
	Amount        Money      `gorm:"type:decimal(10,2);not null" json:"amount"`                             // 支付金额
	TransactionID string     `gorm:"type:varchar(100)" json:"transaction_id"`                               // 交易流水号
	ThirdPartyID  string     `gorm:"type:varchar(100)" json:"third_party_id"`                               // 第三方交易号
	CreatedAt     time.Time  `gorm:"index" json:"created_at"`                                               // 创建时间
	PaidAt        *time.Time `gorm:"index" json:"paid_at"`                                                  // 支付时间
}

// TableName 指定表名
func (Payment) TableName() string {
	return "payments"
}

// Shipping 配送记录表（与订单一对一）
type Shipping struct {
	ID              uint       `gorm:"primarykey" json:"id"`                                                  // 主键
	OrderID         uint       `gorm:"uniqueIndex;not null" json:"order_id"`                                  // 订单ID
	ShippingCompany string     `gorm:"type:varchar(100)" json:"shipping_company"`                             // 快递公司
	TrackingNumber  string     `gorm:"type:varchar(100)" json:"tracking_number"`                              // 快递单号
	ShippingStatus  string     `gorm:"type:varchar(20);not null;default:'preparing'" json:"shipping_status"` // 配送状态
	ShippedAt       *time.Time `json:"shipped_at"`                                                           // 发货时间
	DeliveredAt     *time.Time `json:"delivered_at"`                                                         // 送达时间
	CreatedAt       time.Time  `gorm:"index" json:"created_at"`                                              // 创建时间
	UpdatedAt       time.Time  `json:"updated_at"`                                                           // 更新时间

	TrackingRecords []ShippingTracking `gorm:"foreignKey:ShippingID" json:"tracking_records,omitempty"` // 跟踪记录（倒序展示）
}

// TableName 指定表名
func (Shipping) TableName() string {
	return "shippings"
}

// ShippingTracking 配送跟踪表（仅追加）
type ShippingTracking struct {
	ID          uint      `gorm:"primarykey" json:"id"`                     // 主键
	ShippingID  uint      `gorm:"index;not null" json:"shipping_id"`        // 配送ID
	Location    string    `gorm:"type:varchar(200);not null" json:"location"` // 位置
	Description string    `gorm:"type:text" json:"description"`             // 描述
	Timestamp   time.Time `gorm:"index;not null" json:"timestamp"`          // 事件时间
	CreatedAt   time.Time `json:"created_at"`                              // 创建时间
}

// TableName 指定表名
func (ShippingTracking) TableName() string {
	return "shipping_trackings"
}
