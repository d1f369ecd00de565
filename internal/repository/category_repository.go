package repository

import (
	"errors"

	"github.com/shanhu-mall/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository 分类数据访问接口
type CategoryRepository interface {
	List(filter CategoryListFilter) ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	ListChildIDs(parentID uint, onlyActive bool) ([]uint, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	DeleteCascade(id uint) error
	WithTx(tx *gorm.DB) CategoryRepository
}

// GormCategoryRepository GORM 实现
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓库
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCategoryRepository) WithTx(tx *gorm.DB) CategoryRepository {
	if tx == nil {
		return r
	}
	return &GormCategoryRepository{db: tx}
}

// List 分类列表
func (r *GormCategoryRepository) List(filter CategoryListFilter) ([]models.Category, error) {
	query := r.db.Model(&models.Category{})
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if filter.OnlyRoots {
		query = query.Where("parent_id IS NULL")
	}
	if filter.WithChildren {
		query = query.Preload("Children", func(db *gorm.DB) *gorm.DB {
			if filter.OnlyActive {
				db = db.Where("is_active = ?", true)
			}
			return db.Order("sort_order ASC, name ASC")
		})
	}

	var categories []models.Category
	if err := query.Order("sort_order ASC, name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID 根据 ID 获取分类
func (r *GormCategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.Preload("Children", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC, name ASC")
	}).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// ListChildIDs 子分类 ID 集合
func (r *GormCategoryRepository) ListChildIDs(parentID uint, onlyActive bool) ([]uint, error) {
	query := r.db.Model(&models.Category{}).Where("parent_id = ?", parentID)
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	var ids []uint
	if err := query.Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Create 创建分类
func (r *GormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// Update 更新分类
func (r *GormCategoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// DeleteCascade 删除分类及其子分类（广度优先逐层清除，不做孤儿提升）
func (r *GormCategoryRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		frontier := []uint{id}
		all := []uint{id}
		for len(frontier) > 0 {
			var next []uint
			if err := tx.Model(&models.Category{}).
				Where("parent_id IN ?", frontier).
				Pluck("id", &next).Error; err != nil {
				return err
			}
			all = append(all, next...)
			frontier = next
		}
		return tx.Delete(&models.Category{}, "id IN ?", all).Error
	})
}
