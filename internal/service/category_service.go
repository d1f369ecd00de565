package service

import (
	"strings"

	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/repository"
)

// CategoryService 分类业务服务
type CategoryService struct {
	repo        repository.CategoryRepository
	productRepo repository.ProductRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository, productRepo repository.ProductRepository) *CategoryService {
	return &CategoryService{repo: repo, productRepo: productRepo}
}

// SaveCategoryInput 创建/更新分类输入
type SaveCategoryInput struct {
	Name        string
	Description string
	ParentID    *uint
	Image       string
	IsActive    *bool
	SortOrder   int
}

// CategoryDetail 分类详情（含子分类与子树产品）
type CategoryDetail struct {
	Category models.Category  `json:"category"`
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
}

// ListTree 分类树（根分类带子级）
func (s *CategoryService) ListTree(onlyActive bool) ([]models.Category, error) {
	return s.repo.List(repository.CategoryListFilter{
		OnlyActive:   onlyActive,
		OnlyRoots:    true,
		WithChildren: true,
	})
}

// ListFlat 平铺分类列表
func (s *CategoryService) ListFlat(onlyActive bool) ([]models.Category, error) {
	return s.repo.List(repository.CategoryListFilter{OnlyActive: onlyActive})
}

// GetDetail 分类详情，产品集合覆盖本级与全部后代分类
func (s *CategoryService) GetDetail(id uint, page, pageSize int) (*CategoryDetail, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	ids, err := s.collectSubtreeIDs(id)
	if err != nil {
		return nil, err
	}
	products, total, err := s.productRepo.List(repository.ProductListFilter{
		Page:        page,
		PageSize:    pageSize,
		CategoryIDs: ids,
		OnlyActive:  true,
		WithAssoc:   true,
	})
	if err != nil {
		return nil, err
	}
	return &CategoryDetail{Category: *category, Products: products, Total: total}, nil
}

// Create 创建分类
func (s *CategoryService) Create(input SaveCategoryInput) (*models.Category, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrValidation
	}
	if input.ParentID != nil {
		parent, err := s.repo.GetByID(*input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrNotFound
		}
	}

	category := &models.Category{
		Name:        input.Name,
		Description: input.Description,
		ParentID:    input.ParentID,
		Image:       input.Image,
		IsActive:    true,
		SortOrder:   input.SortOrder,
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update 更新分类
func (s *CategoryService) Update(id uint, input SaveCategoryInput) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrValidation
	}
	if input.ParentID != nil {
		if *input.ParentID == id {
			return nil, ErrCircularCategory
		}
		descendants, err := s.collectSubtreeIDs(id)
		if err != nil {
			return nil, err
		}
		for _, descendantID := range descendants {
			if descendantID == *input.ParentID {
				return nil, ErrCircularCategory
			}
		}
		parent, err := s.repo.GetByID(*input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrNotFound
		}
	}

	category.Name = input.Name
	category.Description = input.Description
	category.ParentID = input.ParentID
	category.Image = input.Image
	category.SortOrder = input.SortOrder
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete 删除分类及其全部后代分类
func (s *CategoryService) Delete(id uint) error {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}
	return s.repo.DeleteCascade(id)
}

func (s *CategoryService) collectSubtreeIDs(rootID uint) ([]uint, error) {
	ids := []uint{rootID}
	frontier := []uint{rootID}
	for len(frontier) > 0 {
		var next []uint
		for _, id := range frontier {
			children, err := s.repo.ListChildIDs(id, false)
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
