package repository

import (
	"testing"

	"github.com/shanhu-mall/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCartRepositoryTest(t *testing.T) *GormCartRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate cart tables failed: %v", err)
	}
	return NewCartRepository(db)
}

func TestCartUpsertAccumulatesQuantity(t *testing.T) {
	repo := setupCartRepositoryTest(t)
	const userID, productID = 9001, 101

	if err := repo.Upsert(userID, productID, 2); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := repo.Upsert(userID, productID, 3); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	item, err := repo.GetItem(userID, productID)
	if err != nil {
		t.Fatalf("get item failed: %v", err)
	}
	if item == nil {
		t.Fatalf("expected cart item")
	}
	if item.Quantity != 5 {
		t.Fatalf("quantity want 5 got %d", item.Quantity)
	}

	items, err := repo.ListByUser(userID)
	if err != nil {
		t.Fatalf("list by user failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items want 1 got %d", len(items))
	}
}

func TestCartUpdateQuantityMissingRow(t *testing.T) {
	repo := setupCartRepositoryTest(t)
	const userID = 9002

	affected, err := repo.UpdateQuantity(userID, 999, 4)
	if err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("affected want 0 got %d", affected)
	}

	affected, err = repo.Remove(userID, 999)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("affected want 0 got %d", affected)
	}
}

func TestCartClearRemovesOnlyOwnItems(t *testing.T) {
	repo := setupCartRepositoryTest(t)
	const userID, otherID = 9003, 9004

	if err := repo.Upsert(userID, 201, 1); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := repo.Upsert(userID, 202, 1); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := repo.Upsert(otherID, 201, 1); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	if err := repo.Clear(userID); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	items, err := repo.ListByUser(userID)
	if err != nil {
		t.Fatalf("list by user failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("items want 0 got %d", len(items))
	}
	others, err := repo.ListByUser(otherID)
	if err != nil {
		t.Fatalf("list by user failed: %v", err)
	}
	if len(others) != 1 {
		t.Fatalf("other items want 1 got %d", len(others))
	}
}
