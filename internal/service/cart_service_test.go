package service

import (
	"errors"
	"testing"

	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(testDSN()), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate cart tables failed: %v", err)
	}
	return NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db)), db
}

func TestCartSummaryUsesCurrentPrices(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	const userID = 6001
	earphone := createOrderTestProduct(t, db, "cart-earphone", 299.00, 10)
	cable := createOrderTestProduct(t, db, "cart-cable", 19.90, 10)

	if err := svc.Add(userID, earphone.ID, 2); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	if err := svc.Add(userID, cable.ID, 1); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	// 重复加入累加数量
	if err := svc.Add(userID, cable.ID, 2); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}

	summary, err := svc.Summary(userID)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if len(summary.Items) != 2 {
		t.Fatalf("lines want 2 got %d", len(summary.Items))
	}
	if summary.TotalItems != 5 {
		t.Fatalf("total items want 5 got %d", summary.TotalItems)
	}
	// 299*2 + 19.90*3 = 657.70
	if !summary.TotalPrice.Equal(decimal.NewFromFloat(657.70)) {
		t.Fatalf("total price want 657.70 got %s", summary.TotalPrice)
	}

	// 小计跟随当前价格
	if err := db.Model(&models.Product{}).Where("id = ?", cable.ID).
		Update("price", models.NewMoneyFromDecimal(decimal.NewFromInt(30))).Error; err != nil {
		t.Fatalf("update price failed: %v", err)
	}
	summary, err = svc.Summary(userID)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if !summary.TotalPrice.Equal(decimal.NewFromInt(688)) {
		t.Fatalf("total price want 688 got %s", summary.TotalPrice)
	}
}

func TestCartAddRejectsUnavailableProduct(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	const userID = 6002

	if err := svc.Add(userID, 987654, 1); !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("missing product want ErrProductNotAvailable got %v", err)
	}

	product := createOrderTestProduct(t, db, "cart-inactive", 10.00, 5)
	if err := db.Model(product).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate product failed: %v", err)
	}
	if err := svc.Add(userID, product.ID, 1); !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("inactive product want ErrProductNotAvailable got %v", err)
	}
	if err := svc.Add(userID, product.ID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("zero quantity want ErrInvalidQuantity got %v", err)
	}
}

func TestCartUpdateAndRemoveMissingLine(t *testing.T) {
	svc, _ := setupCartServiceTest(t)
	const userID = 6003

	if err := svc.UpdateQuantity(userID, 987654, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
	if err := svc.Remove(userID, 987654); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
}
