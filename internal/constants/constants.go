package constants

// 订单状态常量
const (
	OrderStatusPending    = "pending"
	OrderStatusPaid       = "paid"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRefunded   = "refunded"
)

// OrderStatuses 订单状态全集
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusPaid,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
	OrderStatusRefunded,
}

// 支付方式常量
const (
	PaymentMethodAlipay   = "alipay"
	PaymentMethodWechat   = "wechat"
	PaymentMethodBankCard = "bank_card"
	PaymentMethodCash     = "cash"
	PaymentMethodOther    = "other"
)

// 支付状态常量（与订单状态互相独立）
const (
	PaymentStatusPending   = "pending"
	PaymentStatusSuccess   = "success"
	PaymentStatusFailed    = "failed"
	PaymentStatusCancelled = "cancelled"
	PaymentStatusRefunded  = "refunded"
)

// 配送状态常量
const (
	ShippingStatusPreparing = "preparing"
	ShippingStatusShipped   = "shipped"
	ShippingStatusInTransit = "in_transit"
	ShippingStatusDelivered = "delivered"
	ShippingStatusReturned  = "returned"
)

// 通知类型常量
const (
	NotificationTypeInfo    = "info"
	NotificationTypeSuccess = "success"
	NotificationTypeWarning = "warning"
	NotificationTypeError   = "error"
)

// 活动日志操作常量
const (
	ActivityActionCreate   = "create"
	ActivityActionUpdate   = "update"
	ActivityActionDelete   = "delete"
	ActivityActionLogin    = "login"
	ActivityActionLogout   = "logout"
	ActivityActionView     = "view"
	ActivityActionDownload = "download"
	ActivityActionUpload   = "upload"
	ActivityActionOther    = "other"
)

// 产品排序键常量（白名单，未知键回落默认排序）
const (
	ProductSortNewest    = "newest"
	ProductSortName      = "name"
	ProductSortPriceAsc  = "price_asc"
	ProductSortPriceDesc = "price_desc"
)

// 关联实体类型常量（通知/日志的多态引用）
const (
	EntityTypeOrder    = "order"
	EntityTypeProduct  = "product"
	EntityTypePayment  = "payment"
	EntityTypeShipping = "shipping"
	EntityTypeFAQ      = "faq"
)

// 邮件模板代码常量
const (
	EmailTemplateOrderPaid      = "order_paid"
	EmailTemplateOrderShipped   = "order_shipped"
	EmailTemplateOrderDelivered = "order_delivered"
)

// 队列名称常量
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)

// 队列任务类型常量
const (
	TaskOrderStatusEmail = "order:status_email"
)

// 订单号前缀
const OrderNumberPrefix = "ORD"

// PaymentStatuses 支付状态全集
var PaymentStatuses = []string{
	PaymentStatusPending,
	PaymentStatusSuccess,
	PaymentStatusFailed,
	PaymentStatusCancelled,
	PaymentStatusRefunded,
}

// ShippingStatuses 配送状态全集
var ShippingStatuses = []string{
	ShippingStatusPreparing,
	ShippingStatusShipped,
	ShippingStatusInTransit,
	ShippingStatusDelivered,
	ShippingStatusReturned,
}

// IsValidOrderStatus 判断订单状态是否合法
func IsValidOrderStatus(status string) bool {
	return contains(OrderStatuses, status)
}

// IsValidPaymentStatus 判断支付状态是否合法
func IsValidPaymentStatus(status string) bool {
	return contains(PaymentStatuses, status)
}

// IsValidShippingStatus 判断配送状态是否合法
func IsValidShippingStatus(status string) bool {
	return contains(ShippingStatuses, status)
}

func contains(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}
