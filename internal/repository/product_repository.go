package repository

import (
	"errors"
	"strings"

	"github.com/shanhu-mall/internal/constants"
	"github.com/shanhu-mall/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 产品数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetBySlug(slug string, onlyActive bool) (*models.Product, error)
	GetByID(id uint) (*models.Product, error)
	ListByIDs(ids []uint) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
	CountBySlug(slug string, excludeID *uint) (int64, error)
	CountBySKU(sku string, excludeID *uint) (int64, error)
	PriceRange(onlyActive bool) (*models.Money, *models.Money, error)
	DecrementStock(productID uint, quantity int) (int64, error)
	IncrementStock(productID uint, quantity int) error
	ListLowStock(limit int) ([]models.Product, error)
	ListAttributes() ([]models.ProductAttribute, error)
	GetAttributeByID(id uint) (*models.ProductAttribute, error)
	CreateAttribute(attribute *models.ProductAttribute) error
	CountAttributeByName(name string) (int64, error)
	ReplaceAttributeValue(productID, attributeID uint, value string) error
	ListRelated(categoryID, excludeProductID uint, limit int) ([]models.Product, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建产品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// Transaction 执行事务
func (r *GormProductRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// List 产品列表（过滤条件 AND 组合，排序键白名单之外回落默认排序）
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	var products []models.Product

	query := r.db.Model(&models.Product{})
	if filter.WithAssoc {
		query = query.Preload("Category").Preload("Brand").
			Preload("Images", func(db *gorm.DB) *gorm.DB {
				return db.Order("sort_order ASC, created_at ASC")
			})
	}
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if len(filter.CategoryIDs) > 0 {
		query = query.Where("category_id IN ?", filter.CategoryIDs)
	}
	if filter.BrandID > 0 {
		query = query.Where("brand_id = ?", filter.BrandID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", filter.MaxPrice)
	}
	if filter.Featured != nil {
		query = query.Where("is_featured = ?", *filter.Featured)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR description LIKE ? OR short_description LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	query = query.Order(productOrderClause(filter.Sort))

	if err := query.Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func productOrderClause(sort string) string {
	switch strings.ToLower(strings.TrimSpace(sort)) {
	case constants.ProductSortName:
		return "name ASC"
	case constants.ProductSortPriceAsc:
		return "price ASC"
	case constants.ProductSortPriceDesc:
		return "price DESC"
	case constants.ProductSortNewest:
		return "created_at DESC"
	default:
		// 未知排序键静默忽略
		return "created_at DESC"
	}
}

// GetBySlug 根据 slug 获取产品
func (r *GormProductRepository) GetBySlug(slug string, onlyActive bool) (*models.Product, error) {
	query := r.db.Preload("Category").Preload("Brand").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, created_at ASC")
		}).
		Preload("Attributes").Preload("Attributes.Attribute").
		Where("slug = ?", slug)
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}

	var product models.Product
	if err := query.First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetByID 根据 ID 获取产品
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").Preload("Brand").
		Preload("Attributes").Preload("Attributes.Attribute").
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// ListByIDs 批量获取产品
func (r *GormProductRepository) ListByIDs(ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	var products []models.Product
	if err := r.db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Create 创建产品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update 更新产品
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete 删除产品
func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

// CountBySlug 统计 slug 数量
func (r *GormProductRepository) CountBySlug(slug string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Product{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountBySKU 统计 SKU 数量
func (r *GormProductRepository) CountBySKU(sku string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Product{}).Where("sku = ?", sku)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// PriceRange 上架产品的价格区间
func (r *GormProductRepository) PriceRange(onlyActive bool) (*models.Money, *models.Money, error) {
	var row struct {
		MinPrice *models.Money
		MaxPrice *models.Money
	}
	query := r.db.Model(&models.Product{}).
		Select("MIN(price) AS min_price, MAX(price) AS max_price")
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Scan(&row).Error; err != nil {
		return nil, nil, err
	}
	return row.MinPrice, row.MaxPrice, nil
}

// DecrementStock 条件扣减库存（仅当剩余库存足够时生效，防止超卖）
func (r *GormProductRepository) DecrementStock(productID uint, quantity int) (int64, error) {
	if productID == 0 || quantity <= 0 {
		return 0, errors.New("invalid stock decrement params")
	}
	result := r.db.Model(&models.Product{}).
		Where("id = ? AND stock_quantity >= ?", productID, quantity).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// IncrementStock 回补库存
func (r *GormProductRepository) IncrementStock(productID uint, quantity int) error {
	if productID == 0 || quantity <= 0 {
		return errors.New("invalid stock increment params")
	}
	return r.db.Model(&models.Product{}).
		Where("id = ?", productID).
		Update("stock_quantity", gorm.Expr("stock_quantity + ?", quantity)).Error
}

// ListLowStock 库存不高于预警线的在售产品
func (r *GormProductRepository) ListLowStock(limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 10
	}
	var products []models.Product
	if err := r.db.Where("is_active = ? AND stock_quantity <= min_stock_level", true).
		Order("stock_quantity ASC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListAttributes 属性定义列表
func (r *GormProductRepository) ListAttributes() ([]models.ProductAttribute, error) {
	var attributes []models.ProductAttribute
	if err := r.db.Order("name ASC").Find(&attributes).Error; err != nil {
		return nil, err
	}
	return attributes, nil
}

// GetAttributeByID 根据 ID 获取属性定义
func (r *GormProductRepository) GetAttributeByID(id uint) (*models.ProductAttribute, error) {
	var attribute models.ProductAttribute
	if err := r.db.First(&attribute, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attribute, nil
}

// CreateAttribute 创建属性定义
func (r *GormProductRepository) CreateAttribute(attribute *models.ProductAttribute) error {
	return r.db.Create(attribute).Error
}

// CountAttributeByName 属性标识存在性检查
func (r *GormProductRepository) CountAttributeByName(name string) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProductAttribute{}).Where("name = ?", name).Count(&count).Error
	return count, err
}

// ReplaceAttributeValue 设置产品属性值（同一 product+attribute 重复赋值时覆盖，不新增）
func (r *GormProductRepository) ReplaceAttributeValue(productID, attributeID uint, value string) error {
	var existing models.ProductAttributeValue
	err := r.db.Where("product_id = ? AND attribute_id = ?", productID, attributeID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(&models.ProductAttributeValue{
			ProductID:   productID,
			AttributeID: attributeID,
			Value:       value,
		}).Error
	}
	if err != nil {
		return err
	}
	return r.db.Model(&existing).Update("value", value).Error
}

// ListRelated 同分类相关产品
func (r *GormProductRepository) ListRelated(categoryID, excludeProductID uint, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 4
	}
	var products []models.Product
	if err := r.db.Preload("Category").Preload("Brand").
		Where("category_id = ? AND is_active = ? AND id != ?", categoryID, true, excludeProductID).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
