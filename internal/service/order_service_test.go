package service

import (
	"errors"
	"regexp"
	"testing"

	"github.com/shanhu-mall/internal/constants"
	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(testDSN()), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate order tables failed: %v", err)
	}
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	return NewOrderService(orderRepo, productRepo, cartRepo, nil), db
}

func createOrderTestProduct(t *testing.T, db *gorm.DB, slug string, price float64, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:          "测试商品-" + slug,
		Slug:          slug,
		CategoryID:    1,
		SKU:           "SKU-" + slug,
		Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		StockQuantity: stock,
		MinStockLevel: 10,
		IsActive:      true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func productStock(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		t.Fatalf("load product failed: %v", err)
	}
	return product.StockQuantity
}

var orderNumberPattern = regexp.MustCompile(`^ORD\d{8}[0-9A-F]{8}$`)

func TestCreateOrderComputesTotalsAndDecrementsStock(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	earphone := createOrderTestProduct(t, db, "order-earphone", 299.00, 10)
	watch := createOrderTestProduct(t, db, "order-watch", 899.00, 10)

	order, err := svc.Create(CreateOrderInput{
		UserID: 7001,
		Items: []OrderItemInput{
			{ProductID: earphone.ID, Quantity: 2},
			{ProductID: watch.ID, Quantity: 1},
		},
		ShippingName:    "张三",
		ShippingPhone:   "13800000000",
		ShippingAddress: "上海市浦东新区测试路 1 号",
		ShippingFee:     models.NewMoneyFromDecimal(decimal.NewFromInt(10)),
		DiscountAmount:  models.NewMoneyFromDecimal(decimal.NewFromInt(50)),
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if !orderNumberPattern.MatchString(order.OrderNumber) {
		t.Fatalf("unexpected order number %q", order.OrderNumber)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("status want pending got %s", order.Status)
	}

	// 299*2 + 899 = 1497；终价 1497 + 10 - 50 = 1457
	if !order.TotalAmount.Equal(decimal.NewFromInt(1497)) {
		t.Fatalf("total want 1497 got %s", order.TotalAmount)
	}
	if !order.FinalAmount.Equal(decimal.NewFromInt(1457)) {
		t.Fatalf("final want 1457 got %s", order.FinalAmount)
	}
	if len(order.Items) != 2 {
		t.Fatalf("items want 2 got %d", len(order.Items))
	}
	if !order.Items[0].Subtotal.Equal(decimal.NewFromInt(598)) {
		t.Fatalf("subtotal want 598 got %s", order.Items[0].Subtotal)
	}

	if got := productStock(t, db, earphone.ID); got != 8 {
		t.Fatalf("earphone stock want 8 got %d", got)
	}
	if got := productStock(t, db, watch.ID); got != 9 {
		t.Fatalf("watch stock want 9 got %d", got)
	}
}

func TestCreateOrderInsufficientStockRollsBack(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	cheap := createOrderTestProduct(t, db, "order-rollback-a", 10.00, 10)
	scarce := createOrderTestProduct(t, db, "order-rollback-b", 20.00, 1)

	_, err := svc.Create(CreateOrderInput{
		UserID: 7002,
		Items: []OrderItemInput{
			{ProductID: cheap.ID, Quantity: 3},
			{ProductID: scarce.ID, Quantity: 2},
		},
		ShippingName:    "李四",
		ShippingAddress: "北京市朝阳区测试街 2 号",
	})
	if !errors.Is(err, ErrStockInsufficient) {
		t.Fatalf("want ErrStockInsufficient got %v", err)
	}

	// 事务回滚：先扣的库存也要还原，且不留订单
	if got := productStock(t, db, cheap.ID); got != 10 {
		t.Fatalf("stock want 10 got %d", got)
	}
	var count int64
	if err := db.Model(&models.Order{}).Where("user_id = ?", 7002).Count(&count).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("orders want 0 got %d", count)
	}
}

func TestCreateOrderRejectsInactiveProduct(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	product := createOrderTestProduct(t, db, "order-inactive", 30.00, 10)
	if err := db.Model(product).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate product failed: %v", err)
	}

	_, err := svc.Create(CreateOrderInput{
		UserID:          7003,
		Items:           []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		ShippingName:    "王五",
		ShippingAddress: "广州市天河区测试道 3 号",
	})
	if !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("want ErrProductNotAvailable got %v", err)
	}
}

func TestCreateOrderValidatesInput(t *testing.T) {
	svc, _ := setupOrderServiceTest(t)

	if _, err := svc.Create(CreateOrderInput{UserID: 7004}); !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("want ErrEmptyOrder got %v", err)
	}
	if _, err := svc.Create(CreateOrderInput{
		UserID: 7004,
		Items:  []OrderItemInput{{ProductID: 1, Quantity: 0}},
	}); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("want ErrInvalidQuantity got %v", err)
	}
	if _, err := svc.Create(CreateOrderInput{
		UserID:       7004,
		Items:        []OrderItemInput{{ProductID: 1, Quantity: 1}},
		ShippingName: "  ",
	}); !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation got %v", err)
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	product := createOrderTestProduct(t, db, "order-transition", 50.00, 10)

	order, err := svc.Create(CreateOrderInput{
		UserID:          7005,
		Items:           []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		ShippingName:    "赵六",
		ShippingAddress: "深圳市南山区测试巷 4 号",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	// pending 不能直接发货
	if _, err := svc.MarkShipped(order.OrderNumber); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("want ErrOrderStatusInvalid got %v", err)
	}

	paid, err := svc.MarkPaid(order.OrderNumber)
	if err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}
	if paid.Status != constants.OrderStatusPaid || paid.PaidAt == nil {
		t.Fatalf("unexpected paid order: status=%s paid_at=%v", paid.Status, paid.PaidAt)
	}

	if _, err := svc.MarkPaid(order.OrderNumber); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("repeated mark paid want ErrOrderStatusInvalid got %v", err)
	}

	shipped, err := svc.MarkShipped(order.OrderNumber)
	if err != nil {
		t.Fatalf("mark shipped failed: %v", err)
	}
	if shipped.ShippedAt == nil {
		t.Fatalf("expected shipped_at set")
	}

	delivered, err := svc.MarkDelivered(order.OrderNumber)
	if err != nil {
		t.Fatalf("mark delivered failed: %v", err)
	}
	if delivered.DeliveredAt == nil {
		t.Fatalf("expected delivered_at set")
	}

	refunded, err := svc.MarkRefunded(order.OrderNumber)
	if err != nil {
		t.Fatalf("mark refunded failed: %v", err)
	}
	if refunded.Status != constants.OrderStatusRefunded {
		t.Fatalf("status want refunded got %s", refunded.Status)
	}
}

func TestCancelRestoresStock(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	product := createOrderTestProduct(t, db, "order-cancel", 80.00, 5)

	order, err := svc.Create(CreateOrderInput{
		UserID:          7006,
		Items:           []OrderItemInput{{ProductID: product.ID, Quantity: 2}},
		ShippingName:    "孙七",
		ShippingAddress: "杭州市西湖区测试里 5 号",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if got := productStock(t, db, product.ID); got != 3 {
		t.Fatalf("stock want 3 got %d", got)
	}

	cancelled, err := svc.Cancel(order.OrderNumber, 7006)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if cancelled.Status != constants.OrderStatusCancelled {
		t.Fatalf("status want cancelled got %s", cancelled.Status)
	}
	if got := productStock(t, db, product.ID); got != 5 {
		t.Fatalf("stock want 5 got %d", got)
	}

	// 已取消订单不能再取消
	if _, err := svc.Cancel(order.OrderNumber, 7006); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("want ErrOrderStatusInvalid got %v", err)
	}
}

func TestCancelRejectsOtherUser(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	product := createOrderTestProduct(t, db, "order-cancel-owner", 60.00, 5)

	order, err := svc.Create(CreateOrderInput{
		UserID:          7007,
		Items:           []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		ShippingName:    "周八",
		ShippingAddress: "成都市武侯区测试巷 6 号",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if _, err := svc.Cancel(order.OrderNumber, 7008); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
}

func TestCreateOrderClearsCart(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	product := createOrderTestProduct(t, db, "order-clear-cart", 40.00, 10)
	cartRepo := repository.NewCartRepository(db)
	const userID = 7009
	if err := cartRepo.Upsert(userID, product.ID, 2); err != nil {
		t.Fatalf("upsert cart failed: %v", err)
	}

	_, err := svc.Create(CreateOrderInput{
		UserID:          userID,
		Items:           []OrderItemInput{{ProductID: product.ID, Quantity: 2}},
		ShippingName:    "吴九",
		ShippingAddress: "南京市玄武区测试街 7 号",
		ClearCart:       true,
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	items, err := cartRepo.ListByUser(userID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("cart items want 0 got %d", len(items))
	}
}

func TestRecordPayment(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	product := createOrderTestProduct(t, db, "order-payment", 120.00, 10)

	order, err := svc.Create(CreateOrderInput{
		UserID:          7010,
		Items:           []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		ShippingName:    "郑十",
		ShippingAddress: "武汉市洪山区测试路 8 号",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if _, err := svc.RecordPayment(order.OrderNumber, RecordPaymentInput{}); !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation got %v", err)
	}

	payment, err := svc.RecordPayment(order.OrderNumber, RecordPaymentInput{
		PaymentMethod: "alipay",
		PaymentStatus: constants.PaymentStatusSuccess,
		Amount:        order.FinalAmount,
		TransactionID: "TXN-7010-1",
	})
	if err != nil {
		t.Fatalf("record payment failed: %v", err)
	}
	if payment.PaidAt == nil {
		t.Fatalf("expected paid_at set on success payment")
	}

	// 支付记录不联动订单状态
	current, err := svc.GetByOrderNumber(order.OrderNumber, 7010)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if current.Status != constants.OrderStatusPending {
		t.Fatalf("status want pending got %s", current.Status)
	}
}

func TestStatusSummaryScopedToUser(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	product := createOrderTestProduct(t, db, "order-summary", 99.00, 20)

	createFor := func(userID uint) *models.Order {
		t.Helper()
		order, err := svc.Create(CreateOrderInput{
			UserID:          userID,
			Items:           []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
			ShippingName:    "李四",
			ShippingPhone:   "13900000000",
			ShippingAddress: "北京市海淀区测试街 2 号",
		})
		if err != nil {
			t.Fatalf("create order failed: %v", err)
		}
		return order
	}

	first := createFor(7011)
	createFor(7011)
	createFor(7012)

	if _, err := svc.MarkPaid(first.OrderNumber); err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}

	counts, err := svc.StatusSummary(7011)
	if err != nil {
		t.Fatalf("status summary failed: %v", err)
	}
	if counts[constants.OrderStatusPending] != 1 {
		t.Fatalf("pending want 1 got %d", counts[constants.OrderStatusPending])
	}
	if counts[constants.OrderStatusPaid] != 1 {
		t.Fatalf("paid want 1 got %d", counts[constants.OrderStatusPaid])
	}

	other, err := svc.StatusSummary(7012)
	if err != nil {
		t.Fatalf("status summary failed: %v", err)
	}
	if other[constants.OrderStatusPending] != 1 || other[constants.OrderStatusPaid] != 0 {
		t.Fatalf("unexpected counts for other user: %+v", other)
	}
}

func TestCreateOrderSnapshotsProductAttributes(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	product := createOrderTestProduct(t, db, "order-attr-snapshot", 199.00, 5)

	attribute := &models.ProductAttribute{Name: "color", DisplayName: "颜色"}
	if err := db.Create(attribute).Error; err != nil {
		t.Fatalf("create attribute failed: %v", err)
	}
	if err := db.Create(&models.ProductAttributeValue{
		ProductID:   product.ID,
		AttributeID: attribute.ID,
		Value:       "红色",
	}).Error; err != nil {
		t.Fatalf("create attribute value failed: %v", err)
	}

	order, err := svc.Create(CreateOrderInput{
		UserID:          7013,
		Items:           []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		ShippingName:    "王五",
		ShippingPhone:   "13700000000",
		ShippingAddress: "广州市天河区测试路 3 号",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	// 从库里重读，验证快照随订单项持久化
	stored, err := svc.GetByOrderNumber(order.OrderNumber, 7013)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if len(stored.Items) != 1 {
		t.Fatalf("items want 1 got %d", len(stored.Items))
	}
	snapshot := stored.Items[0].ProductAttributes
	if got, ok := snapshot["color"].(string); !ok || got != "红色" {
		t.Fatalf("attribute snapshot want color=红色 got %v", snapshot)
	}

	// 之后修改产品属性不影响已落库的快照
	if err := db.Model(&models.ProductAttributeValue{}).
		Where("product_id = ? AND attribute_id = ?", product.ID, attribute.ID).
		Update("value", "蓝色").Error; err != nil {
		t.Fatalf("update attribute value failed: %v", err)
	}
	stored, err = svc.GetByOrderNumber(order.OrderNumber, 7013)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if got, _ := stored.Items[0].ProductAttributes["color"].(string); got != "红色" {
		t.Fatalf("snapshot should keep 红色 got %q", got)
	}
}

func TestMarkShippedUpsertsShipping(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	product := createOrderTestProduct(t, db, "order-ship-upsert", 59.00, 10)

	order, err := svc.Create(CreateOrderInput{
		UserID:          7014,
		Items:           []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		ShippingName:    "赵六",
		ShippingPhone:   "13600000000",
		ShippingAddress: "深圳市南山区测试道 4 号",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if _, err := svc.MarkPaid(order.OrderNumber); err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}

	shipped, err := svc.MarkShipped(order.OrderNumber)
	if err != nil {
		t.Fatalf("mark shipped failed: %v", err)
	}
	if shipped.Shipping == nil {
		t.Fatalf("shipping record should be created on mark shipped")
	}
	if shipped.Shipping.ShippingStatus != constants.ShippingStatusInTransit {
		t.Fatalf("shipping status want in_transit got %s", shipped.Shipping.ShippingStatus)
	}
	if shipped.Shipping.ShippedAt == nil {
		t.Fatalf("shipping shipped_at should be set")
	}

	var count int64
	if err := db.Model(&models.Shipping{}).Where("order_id = ?", shipped.ID).Count(&count).Error; err != nil {
		t.Fatalf("count shippings failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("shipping rows want 1 got %d", count)
	}
}

func TestMarkShippedAdvancesExistingShipping(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	product := createOrderTestProduct(t, db, "order-ship-existing", 79.00, 10)

	order, err := svc.Create(CreateOrderInput{
		UserID:          7015,
		Items:           []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		ShippingName:    "孙七",
		ShippingPhone:   "13500000000",
		ShippingAddress: "成都市武侯区测试巷 5 号",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if _, err := svc.MarkPaid(order.OrderNumber); err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}

	shippingSvc := NewShippingService(repository.NewOrderRepository(db))
	if _, err := shippingSvc.Create(order.OrderNumber, CreateShippingInput{
		ShippingCompany: "顺丰速运",
		TrackingNumber:  "SF-7015-1",
	}); err != nil {
		t.Fatalf("create shipping failed: %v", err)
	}

	shipped, err := svc.MarkShipped(order.OrderNumber)
	if err != nil {
		t.Fatalf("mark shipped failed: %v", err)
	}
	if shipped.Shipping.ShippingStatus != constants.ShippingStatusInTransit {
		t.Fatalf("shipping status want in_transit got %s", shipped.Shipping.ShippingStatus)
	}
	if shipped.Shipping.ShippingCompany != "顺丰速运" {
		t.Fatalf("shipping company should be kept, got %q", shipped.Shipping.ShippingCompany)
	}

	var count int64
	if err := db.Model(&models.Shipping{}).Where("order_id = ?", shipped.ID).Count(&count).Error; err != nil {
		t.Fatalf("count shippings failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("shipping rows want 1 got %d", count)
	}
}

func TestGenerateOrderNumberStaysUnique(t *testing.T) {
	svc, db := setupOrderServiceTest(t)

	// 每个号入库后再生成下一个，让存在性预检查参与去重
	const rounds = 10000
	seen := make(map[string]struct{}, rounds)
	for i := 0; i < rounds; i++ {
		number, err := svc.generateOrderNumber()
		if err != nil {
			t.Fatalf("generate order number failed: %v", err)
		}
		if !orderNumberPattern.MatchString(number) {
			t.Fatalf("unexpected order number %q", number)
		}
		if _, dup := seen[number]; dup {
			t.Fatalf("duplicate order number %q after %d rounds", number, i)
		}
		seen[number] = struct{}{}
		if err := db.Create(&models.Order{
			OrderNumber:     number,
			UserID:          7999,
			Status:          constants.OrderStatusPending,
			ShippingName:    "批量测试",
			ShippingPhone:   "13000000000",
			ShippingAddress: "唯一性测试地址",
		}).Error; err != nil {
			t.Fatalf("persist order number failed: %v", err)
		}
	}
}

func TestIsOrderNumberConflict(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("UNIQUE constraint failed: orders.order_number"), true},
		{errors.New(`duplicate key value violates unique constraint "idx_orders_order_number"`), true},
		{errors.New("UNIQUE constraint failed: products.slug"), false},
		{errors.New("connection refused"), false},
	}
	for _, tc := range cases {
		if got := isOrderNumberConflict(tc.err); got != tc.want {
			t.Fatalf("isOrderNumberConflict(%v) want %v got %v", tc.err, tc.want, got)
		}
	}
}
