package service

import (
	"strings"

	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/repository"
)

// ProductService 产品业务服务
type ProductService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService 创建产品服务
func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{repo: repo, categoryRepo: categoryRepo}
}

// ProductListInput 产品列表查询输入
type ProductListInput struct {
	Page       int
	PageSize   int
	CategoryID uint
	BrandID    uint
	MinPrice   *models.Money
	MaxPrice   *models.Money
	Search     string
	Sort       string
	Featured   *bool
	OnlyActive bool
}

// SaveProductInput 创建/更新产品输入
type SaveProductInput struct {
	Name             string
	Slug             string
	Description      string
	ShortDescription string
	CategoryID       uint
	BrandID          *uint
	SKU              string
	Price            models.Money
	CostPrice        *models.Money
	StockQuantity    int
	MinStockLevel    *int
	Weight           *models.Money
	Dimensions       string
	IsActive         *bool
	IsFeatured       *bool
	CreatedByID      uint
}

// List 产品列表（分类条件自动展开子分类）
func (s *ProductService) List(input ProductListInput) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:       input.Page,
		PageSize:   input.PageSize,
		BrandID:    input.BrandID,
		MinPrice:   input.MinPrice,
		MaxPrice:   input.MaxPrice,
		Search:     strings.TrimSpace(input.Search),
		Sort:       input.Sort,
		Featured:   input.Featured,
		OnlyActive: input.OnlyActive,
		WithAssoc:  true,
	}
	if input.CategoryID > 0 {
		ids, err := s.collectCategoryIDs(input.CategoryID, input.OnlyActive)
		if err != nil {
			return nil, 0, err
		}
		filter.CategoryIDs = ids
	}
	return s.repo.List(filter)
}

// collectCategoryIDs 逐层收集某分类及其全部后代的 ID
func (s *ProductService) collectCategoryIDs(rootID uint, onlyActive bool) ([]uint, error) {
	ids := []uint{rootID}
	frontier := []uint{rootID}
	for len(frontier) > 0 {
		var next []uint
		for _, id := range frontier {
			children, err := s.categoryRepo.ListChildIDs(id, onlyActive)
			if err != nil {
				return nil, err
			}
			next = append(next, children...)
		}
		ids = append(ids, next...)
		frontier = next
	}
	return ids, nil
}

// GetBySlug 产品详情
func (s *ProductService) GetBySlug(slug string, onlyActive bool) (*models.Product, error) {
	product, err := s.repo.GetBySlug(slug, onlyActive)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// GetByID 根据 ID 获取产品
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// ListRelated 同分类的相关产品
func (s *ProductService) ListRelated(product *models.Product, limit int) ([]models.Product, error) {
	if product == nil {
		return nil, ErrNotFound
	}
	if limit <= 0 {
		limit = 4
	}
	return s.repo.ListRelated(product.CategoryID, product.ID, limit)
}

// PriceRange 在售产品价格区间
func (s *ProductService) PriceRange() (*models.Money, *models.Money, error) {
	return s.repo.PriceRange(true)
}

// Create 创建产品
func (s *ProductService) Create(input SaveProductInput) (*models.Product, error) {
	if err := s.validateInput(&input, nil); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:             input.Name,
		Slug:             input.Slug,
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		CategoryID:       input.CategoryID,
		BrandID:          input.BrandID,
		SKU:              input.SKU,
		Price:            input.Price,
		CostPrice:        input.CostPrice,
		StockQuantity:    input.StockQuantity,
		Weight:           input.Weight,
		Dimensions:       input.Dimensions,
		IsActive:         true,
		CreatedByID:      input.CreatedByID,
	}
	if input.MinStockLevel != nil {
		product.MinStockLevel = *input.MinStockLevel
	} else {
		product.MinStockLevel = 10
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update 更新产品
func (s *ProductService) Update(id uint, input SaveProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	if err := s.validateInput(&input, &id); err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Slug = input.Slug
	product.Description = input.Description
	product.ShortDescription = input.ShortDescription
	product.CategoryID = input.CategoryID
	product.BrandID = input.BrandID
	product.SKU = input.SKU
	product.Price = input.Price
	product.CostPrice = input.CostPrice
	product.StockQuantity = input.StockQuantity
	product.Weight = input.Weight
	product.Dimensions = input.Dimensions
	if input.MinStockLevel != nil {
		product.MinStockLevel = *input.MinStockLevel
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete 删除产品
func (s *ProductService) Delete(id uint) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

// SetAttributeValue 设置产品属性值（同一属性只保留一个值）
func (s *ProductService) SetAttributeValue(productID, attributeID uint, value string) error {
	product, err := s.repo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	attribute, err := s.repo.GetAttributeByID(attributeID)
	if err != nil {
		return err
	}
	if attribute == nil {
		return ErrNotFound
	}
	return s.repo.ReplaceAttributeValue(productID, attributeID, value)
}

// SaveAttributeInput 创建属性定义输入
type SaveAttributeInput struct {
	Name          string
	DisplayName   string
	AttributeType string
	IsRequired    bool
	IsFilterable  bool
}

// ListAttributes 属性定义列表
func (s *ProductService) ListAttributes() ([]models.ProductAttribute, error) {
	return s.repo.ListAttributes()
}

// CreateAttribute 创建属性定义，标识全局唯一
func (s *ProductService) CreateAttribute(input SaveAttributeInput) (*models.ProductAttribute, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.DisplayName = strings.TrimSpace(input.DisplayName)
	if input.Name == "" || input.DisplayName == "" {
		return nil, ErrValidation
	}
	count, err := s.repo.CountAttributeByName(input.Name)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAttributeConflict
	}

	attribute := &models.ProductAttribute{
		Name:          input.Name,
		DisplayName:   input.DisplayName,
		AttributeType: input.AttributeType,
		IsRequired:    input.IsRequired,
		IsFilterable:  input.IsFilterable,
	}
	if attribute.AttributeType == "" {
		attribute.AttributeType = "text"
	}
	if err := s.repo.CreateAttribute(attribute); err != nil {
		return nil, err
	}
	return attribute, nil
}

func (s *ProductService) validateInput(input *SaveProductInput, excludeID *uint) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Slug = strings.TrimSpace(input.Slug)
	input.SKU = strings.TrimSpace(input.SKU)
	if input.Name == "" || input.Slug == "" || input.SKU == "" || input.CategoryID == 0 {
		return ErrValidation
	}
	if input.Price.IsNegative() {
		return ErrValidation
	}
	if input.StockQuantity < 0 {
		return ErrValidation
	}

	slugCount, err := s.repo.CountBySlug(input.Slug, excludeID)
	if err != nil {
		return err
	}
	if slugCount > 0 {
		return ErrSlugExists
	}
	skuCount, err := s.repo.CountBySKU(input.SKU, excludeID)
	if err != nil {
		return err
	}
	if skuCount > 0 {
		return ErrSKUExists
	}

	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}
	return nil
}
