package repository

import (
	"errors"

	"github.com/shanhu-mall/internal/models"

	"gorm.io/gorm"
)

// FAQRepository 常见问题数据访问接口
type FAQRepository interface {
	List(filter FAQListFilter) ([]models.FAQ, int64, error)
	GetByID(id uint) (*models.FAQ, error)
	Create(faq *models.FAQ) error
	Update(faq *models.FAQ) error
	Delete(id uint) error
	IncrementViewCount(id uint) error
}

// GormFAQRepository GORM 实现
type GormFAQRepository struct {
	db *gorm.DB
}

// NewFAQRepository 创建常见问题仓库
func NewFAQRepository(db *gorm.DB) *GormFAQRepository {
	return &GormFAQRepository{db: db}
}

// List 问题列表
func (r *GormFAQRepository) List(filter FAQListFilter) ([]models.FAQ, int64, error) {
	query := r.db.Model(&models.FAQ{})
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("question LIKE ? OR answer LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var faqs []models.FAQ
	if err := applyPagination(query, filter.Page, filter.PageSize).
		Order("sort_order ASC, id ASC").
		Find(&faqs).Error; err != nil {
		return nil, 0, err
	}
	return faqs, total, nil
}

// GetByID 根据 ID 获取问题
func (r *GormFAQRepository) GetByID(id uint) (*models.FAQ, error) {
	var faq models.FAQ
	if err := r.db.First(&faq, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &faq, nil
}

// Create 创建问题
func (r *GormFAQRepository) Create(faq *models.FAQ) error {
	return r.db.Create(faq).Error
}

// Update 更新问题
func (r *GormFAQRepository) Update(faq *models.FAQ) error {
	return r.db.Save(faq).Error
}

// Delete 删除问题
func (r *GormFAQRepository) Delete(id uint) error {
	return r.db.Delete(&models.FAQ{}, id).Error
}

// IncrementViewCount 原子自增浏览次数
func (r *GormFAQRepository) IncrementViewCount(id uint) error {
	return r.db.Model(&models.FAQ{}).
		Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + 1")).Error
}
