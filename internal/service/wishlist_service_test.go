package service

import (
	"errors"
	"testing"

	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupWishlistServiceTest(t *testing.T) (*WishlistService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(testDSN()), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate wishlist tables failed: %v", err)
	}
	return NewWishlistService(repository.NewWishlistRepository(db), repository.NewProductRepository(db)), db
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	svc, db := setupWishlistServiceTest(t)
	const userID = 5001
	product := createOrderTestProduct(t, db, "wishlist-earphone", 299.00, 10)

	if err := svc.Add(userID, product.ID); err != nil {
		t.Fatalf("add to wishlist failed: %v", err)
	}
	if err := svc.Add(userID, product.ID); err != nil {
		t.Fatalf("repeated add should be idempotent: %v", err)
	}

	items, err := svc.List(userID)
	if err != nil {
		t.Fatalf("list wishlist failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items want 1 got %d", len(items))
	}

	contains, err := svc.Contains(userID, product.ID)
	if err != nil {
		t.Fatalf("contains failed: %v", err)
	}
	if !contains {
		t.Fatalf("expected product in wishlist")
	}
}

func TestWishlistRemove(t *testing.T) {
	svc, db := setupWishlistServiceTest(t)
	const userID = 5002
	product := createOrderTestProduct(t, db, "wishlist-watch", 899.00, 10)

	if err := svc.Add(userID, product.ID); err != nil {
		t.Fatalf("add to wishlist failed: %v", err)
	}
	if err := svc.Remove(userID, product.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := svc.Remove(userID, product.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}

	if err := svc.Add(userID, 987654); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing product want ErrNotFound got %v", err)
	}
}
