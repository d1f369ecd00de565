package repository

import (
	"errors"

	"github.com/shanhu-mall/internal/models"

	"gorm.io/gorm"
)

// EmailTemplateRepository 邮件模板数据访问接口
type EmailTemplateRepository interface {
	GetByCode(code string) (*models.EmailTemplate, error)
	GetByID(id uint) (*models.EmailTemplate, error)
	List(onlyActive bool) ([]models.EmailTemplate, error)
	Create(template *models.EmailTemplate) error
	Update(template *models.EmailTemplate) error
	Delete(id uint) error
	CountByCode(code string, excludeID uint) (int64, error)
}

// GormEmailTemplateRepository GORM 实现
type GormEmailTemplateRepository struct {
	db *gorm.DB
}

// NewEmailTemplateRepository 创建邮件模板仓库
func NewEmailTemplateRepository(db *gorm.DB) *GormEmailTemplateRepository {
	return &GormEmailTemplateRepository{db: db}
}

// GetByCode 根据编码获取模板
func (r *GormEmailTemplateRepository) GetByCode(code string) (*models.EmailTemplate, error) {
	var template models.EmailTemplate
	if err := r.db.Where("code = ?", code).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &template, nil
}

// GetByID 根据 ID 获取模板
func (r *GormEmailTemplateRepository) GetByID(id uint) (*models.EmailTemplate, error) {
	var template models.EmailTemplate
	if err := r.db.First(&template, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &template, nil
}

// List 模板列表
func (r *GormEmailTemplateRepository) List(onlyActive bool) ([]models.EmailTemplate, error) {
	query := r.db.Model(&models.EmailTemplate{})
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	var templates []models.EmailTemplate
	if err := query.Order("code ASC").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// Create 创建模板
func (r *GormEmailTemplateRepository) Create(template *models.EmailTemplate) error {
	return r.db.Create(template).Error
}

// Update 更新模板
func (r *GormEmailTemplateRepository) Update(template *models.EmailTemplate) error {
	return r.db.Save(template).Error
}

// Delete 删除模板
func (r *GormEmailTemplateRepository) Delete(id uint) error {
	return r.db.Delete(&models.EmailTemplate{}, id).Error
}

// CountByCode 编码存在性检查
func (r *GormEmailTemplateRepository) CountByCode(code string, excludeID uint) (int64, error) {
	query := r.db.Model(&models.EmailTemplate{}).Where("code = ?", code)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}
