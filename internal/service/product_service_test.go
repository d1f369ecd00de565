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

func setupProductServiceTest(t *testing.T) (*ProductService, *CategoryService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(testDSN()), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate product tables failed: %v", err)
	}
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	return NewProductService(productRepo, categoryRepo), NewCategoryService(categoryRepo, productRepo), db
}

func TestProductCreateValidatesAndDefaults(t *testing.T) {
	svc, categorySvc, _ := setupProductServiceTest(t)
	category := createTestCategory(t, categorySvc, "svc-创建分类", nil)

	input := SaveProductInput{
		Name:       "蓝牙耳机",
		Slug:       "svc-create-earphone",
		CategoryID: category.ID,
		SKU:        "SKU-SVC-CREATE",
		Price:      models.NewMoneyFromDecimal(decimal.NewFromFloat(299.00)),
	}
	product, err := svc.Create(input)
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if !product.IsActive {
		t.Fatalf("product should default active")
	}
	if product.MinStockLevel != 10 {
		t.Fatalf("min stock level want 10 got %d", product.MinStockLevel)
	}

	// slug 与 SKU 唯一
	dup := input
	dup.SKU = "SKU-SVC-CREATE-2"
	if _, err := svc.Create(dup); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("want ErrSlugExists got %v", err)
	}
	dup = input
	dup.Slug = "svc-create-earphone-2"
	if _, err := svc.Create(dup); !errors.Is(err, ErrSKUExists) {
		t.Fatalf("want ErrSKUExists got %v", err)
	}

	missing := input
	missing.Slug = "svc-create-missing-category"
	missing.SKU = "SKU-SVC-MISSING"
	missing.CategoryID = 987654
	if _, err := svc.Create(missing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}

	invalid := input
	invalid.Name = "  "
	if _, err := svc.Create(invalid); !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation got %v", err)
	}
}

func TestProductUpdateKeepsSlugForSameRow(t *testing.T) {
	svc, categorySvc, _ := setupProductServiceTest(t)
	category := createTestCategory(t, categorySvc, "svc-更新分类", nil)

	product, err := svc.Create(SaveProductInput{
		Name:       "智能手表",
		Slug:       "svc-update-watch",
		CategoryID: category.ID,
		SKU:        "SKU-SVC-UPDATE",
		Price:      models.NewMoneyFromDecimal(decimal.NewFromFloat(899.00)),
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	// 不改 slug 的更新不能触发唯一性冲突
	updated, err := svc.Update(product.ID, SaveProductInput{
		Name:       "智能手表二代",
		Slug:       "svc-update-watch",
		CategoryID: category.ID,
		SKU:        "SKU-SVC-UPDATE",
		Price:      models.NewMoneyFromDecimal(decimal.NewFromFloat(999.00)),
	})
	if err != nil {
		t.Fatalf("update product failed: %v", err)
	}
	if updated.Name != "智能手表二代" {
		t.Fatalf("name want 智能手表二代 got %s", updated.Name)
	}
	if !updated.Price.Equal(decimal.NewFromInt(999)) {
		t.Fatalf("price want 999 got %s", updated.Price)
	}
}

func TestProductListExpandsCategorySubtree(t *testing.T) {
	svc, categorySvc, db := setupProductServiceTest(t)
	root := createTestCategory(t, categorySvc, "svc-列表根", nil)
	child := createTestCategory(t, categorySvc, "svc-列表子", &root.ID)

	createCategoryTestProduct(t, db, "svc-list-root", root.ID)
	createCategoryTestProduct(t, db, "svc-list-child", child.ID)

	_, total, err := svc.List(ProductListInput{
		Page:       1,
		PageSize:   20,
		CategoryID: root.ID,
		OnlyActive: true,
	})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("total want 2 got %d", total)
	}
}

func TestProductSetAttributeValueReplaces(t *testing.T) {
	svc, categorySvc, db := setupProductServiceTest(t)
	category := createTestCategory(t, categorySvc, "svc-属性分类", nil)

	product, err := svc.Create(SaveProductInput{
		Name:       "充电宝",
		Slug:       "svc-attr-power-bank",
		CategoryID: category.ID,
		SKU:        "SKU-SVC-ATTR",
		Price:      models.NewMoneyFromDecimal(decimal.NewFromFloat(149.00)),
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	attribute := models.ProductAttribute{Name: "capacity", DisplayName: "容量"}
	if err := db.Create(&attribute).Error; err != nil {
		t.Fatalf("create attribute failed: %v", err)
	}

	if err := svc.SetAttributeValue(product.ID, attribute.ID, "10000mAh"); err != nil {
		t.Fatalf("set attribute failed: %v", err)
	}
	if err := svc.SetAttributeValue(product.ID, attribute.ID, "20000mAh"); err != nil {
		t.Fatalf("replace attribute failed: %v", err)
	}

	var values []models.ProductAttributeValue
	if err := db.Where("product_id = ? AND attribute_id = ?", product.ID, attribute.ID).Find(&values).Error; err != nil {
		t.Fatalf("load attribute values failed: %v", err)
	}
	if len(values) != 1 {
		t.Fatalf("values want 1 got %d", len(values))
	}
	if values[0].Value != "20000mAh" {
		t.Fatalf("value want 20000mAh got %s", values[0].Value)
	}
}

func TestCreateAttributeRejectsDuplicateName(t *testing.T) {
	svc, _, _ := setupProductServiceTest(t)

	attribute, err := svc.CreateAttribute(SaveAttributeInput{
		Name:        "material",
		DisplayName: "材质",
	})
	if err != nil {
		t.Fatalf("create attribute failed: %v", err)
	}
	if attribute.AttributeType != "text" {
		t.Fatalf("attribute type want text got %s", attribute.AttributeType)
	}

	if _, err := svc.CreateAttribute(SaveAttributeInput{
		Name:        "material",
		DisplayName: "材质别名",
	}); !errors.Is(err, ErrAttributeConflict) {
		t.Fatalf("want ErrAttributeConflict got %v", err)
	}
	if _, err := svc.CreateAttribute(SaveAttributeInput{Name: " ", DisplayName: "空标识"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation got %v", err)
	}
}

func TestSetAttributeValueRequiresAttribute(t *testing.T) {
	svc, categorySvc, _ := setupProductServiceTest(t)
	category := createTestCategory(t, categorySvc, "svc-属性缺失分类", nil)

	product, err := svc.Create(SaveProductInput{
		Name:       "数据线",
		Slug:       "svc-attr-missing-cable",
		CategoryID: category.ID,
		SKU:        "SKU-SVC-ATTR-MISSING",
		Price:      models.NewMoneyFromDecimal(decimal.NewFromFloat(29.00)),
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	if err := svc.SetAttributeValue(product.ID, 987654, "1m"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
}
