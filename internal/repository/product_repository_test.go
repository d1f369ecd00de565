package repository

import (
	"testing"

	"github.com/shanhu-mall/internal/constants"
	"github.com/shanhu-mall/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate product tables failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createTestProduct(t *testing.T, repo *GormProductRepository, slug, sku string, price float64, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:          "测试商品-" + slug,
		Slug:          slug,
		CategoryID:    1,
		SKU:           sku,
		Price:         models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		StockQuantity: stock,
		MinStockLevel: 10,
		IsActive:      true,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestDecrementStockConditional(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	product := createTestProduct(t, repo, "decrement-stock", "SKU-DEC-1", 100, 5)

	affected, err := repo.DecrementStock(product.ID, 3)
	if err != nil {
		t.Fatalf("decrement stock failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("decrement affected want 1 got %d", affected)
	}

	// 剩余 2，扣 3 应当不生效
	affected, err = repo.DecrementStock(product.ID, 3)
	if err != nil {
		t.Fatalf("decrement stock failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("decrement affected want 0 got %d", affected)
	}

	current, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if current.StockQuantity != 2 {
		t.Fatalf("stock want 2 got %d", current.StockQuantity)
	}
}

func TestIncrementStockRestoresQuantity(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	product := createTestProduct(t, repo, "increment-stock", "SKU-INC-1", 100, 2)

	if err := repo.IncrementStock(product.ID, 3); err != nil {
		t.Fatalf("increment stock failed: %v", err)
	}
	current, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if current.StockQuantity != 5 {
		t.Fatalf("stock want 5 got %d", current.StockQuantity)
	}
}

func TestListLowStockOnlyActiveBelowThreshold(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	low := createTestProduct(t, repo, "low-stock-active", "SKU-LOW-1", 100, 3)
	createTestProduct(t, repo, "low-stock-plenty", "SKU-LOW-2", 100, 50)
	inactive := createTestProduct(t, repo, "low-stock-inactive", "SKU-LOW-3", 100, 1)
	inactive.IsActive = false
	if err := repo.Update(inactive); err != nil {
		t.Fatalf("update product failed: %v", err)
	}

	products, err := repo.ListLowStock(10)
	if err != nil {
		t.Fatalf("list low stock failed: %v", err)
	}
	for _, p := range products {
		if p.ID == inactive.ID {
			t.Fatalf("inactive product should be excluded")
		}
		if p.StockQuantity > p.MinStockLevel {
			t.Fatalf("product %s above threshold", p.Slug)
		}
	}
	found := false
	for _, p := range products {
		if p.ID == low.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected low stock product in result")
	}
}

func TestListPriceFilterAndDescendingSort(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createTestProduct(t, repo, "sort-price-50", "SKU-SORT-50", 50, 10)
	createTestProduct(t, repo, "sort-price-25", "SKU-SORT-25", 25, 10)
	createTestProduct(t, repo, "sort-price-10", "SKU-SORT-10", 10, 10)

	minPrice := models.NewMoneyFromDecimal(decimal.NewFromInt(20))
	products, total, err := repo.List(ProductListFilter{
		Page:       1,
		PageSize:   20,
		OnlyActive: true,
		MinPrice:   &minPrice,
		Search:     "sort-price",
		Sort:       constants.ProductSortPriceDesc,
	})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("total want 2 got %d", total)
	}
	if len(products) != 2 {
		t.Fatalf("len want 2 got %d", len(products))
	}
	if !products[0].Price.Equal(decimal.NewFromInt(50)) || !products[1].Price.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("unexpected sort order: %s, %s", products[0].Price, products[1].Price)
	}
}

func TestCountBySlugExcludesID(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	product := createTestProduct(t, repo, "count-slug", "SKU-CNT-1", 100, 1)

	count, err := repo.CountBySlug("count-slug", nil)
	if err != nil {
		t.Fatalf("count by slug failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count want 1 got %d", count)
	}

	count, err = repo.CountBySlug("count-slug", &product.ID)
	if err != nil {
		t.Fatalf("count by slug failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("count want 0 got %d", count)
	}
}
