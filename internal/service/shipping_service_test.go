package service

import (
	"errors"
	"testing"

	"github.com/shanhu-mall/internal/constants"
	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupShippingServiceTest(t *testing.T) (*ShippingService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(testDSN()), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate shipping tables failed: %v", err)
	}
	return NewShippingService(repository.NewOrderRepository(db)), db
}

func createShippingTestOrder(t *testing.T, db *gorm.DB, orderNumber string, userID uint) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNumber:     orderNumber,
		UserID:          userID,
		Status:          constants.OrderStatusPaid,
		ShippingName:    "收件人",
		ShippingAddress: "测试地址",
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestShippingCreateOncePerOrder(t *testing.T) {
	svc, db := setupShippingServiceTest(t)
	order := createShippingTestOrder(t, db, "ORD20260101SHIP0001", 4001)

	shipping, err := svc.Create(order.OrderNumber, CreateShippingInput{
		ShippingCompany: "顺丰速运",
		TrackingNumber:  "SF123456789",
	})
	if err != nil {
		t.Fatalf("create shipping failed: %v", err)
	}
	if shipping.ShippingStatus != constants.ShippingStatusPreparing {
		t.Fatalf("status want preparing got %s", shipping.ShippingStatus)
	}

	if _, err := svc.Create(order.OrderNumber, CreateShippingInput{}); !errors.Is(err, ErrShippingExists) {
		t.Fatalf("want ErrShippingExists got %v", err)
	}
	if _, err := svc.Create("ORD20260101MISSING1", CreateShippingInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
}

func TestShippingStatusAndTracking(t *testing.T) {
	svc, db := setupShippingServiceTest(t)
	order := createShippingTestOrder(t, db, "ORD20260101SHIP0002", 4002)

	if _, err := svc.Create(order.OrderNumber, CreateShippingInput{ShippingCompany: "中通快递"}); err != nil {
		t.Fatalf("create shipping failed: %v", err)
	}

	if _, err := svc.UpdateStatus(order.OrderNumber, "bad-status", nil); !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation got %v", err)
	}

	shipping, err := svc.UpdateStatus(order.OrderNumber, constants.ShippingStatusInTransit, &AddTrackingInput{
		Location:    "上海转运中心",
		Description: "快件已发出",
	})
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if shipping.ShippingStatus != constants.ShippingStatusInTransit {
		t.Fatalf("status want in_transit got %s", shipping.ShippingStatus)
	}
	if len(shipping.TrackingRecords) != 1 {
		t.Fatalf("tracking records want 1 got %d", len(shipping.TrackingRecords))
	}

	if _, err := svc.AddTracking(order.OrderNumber, AddTrackingInput{Description: "  "}); !errors.Is(err, ErrValidation) {
		t.Fatalf("empty description want ErrValidation got %v", err)
	}
	record, err := svc.AddTracking(order.OrderNumber, AddTrackingInput{
		Location:    "杭州分拨中心",
		Description: "快件到达",
	})
	if err != nil {
		t.Fatalf("add tracking failed: %v", err)
	}
	if record.Timestamp.IsZero() {
		t.Fatalf("tracking timestamp should default to now")
	}

	// 归属校验
	if _, err := svc.GetByOrderNumber(order.OrderNumber, 4003); !errors.Is(err, ErrNotFound) {
		t.Fatalf("other user want ErrNotFound got %v", err)
	}
	found, err := svc.GetByOrderNumber(order.OrderNumber, 4002)
	if err != nil {
		t.Fatalf("get shipping failed: %v", err)
	}
	if len(found.TrackingRecords) != 2 {
		t.Fatalf("tracking records want 2 got %d", len(found.TrackingRecords))
	}
}
