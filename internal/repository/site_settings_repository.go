package repository

import (
	"errors"

	"github.com/shanhu-mall/internal/models"

	"gorm.io/gorm"
)

// SiteSettingsRepository 站点设置数据访问接口（单行表）
type SiteSettingsRepository interface {
	Get() (*models.SiteSettings, error)
	Count() (int64, error)
	Create(settings *models.SiteSettings) error
	Update(settings *models.SiteSettings) error
}

// GormSiteSettingsRepository GORM 实现
type GormSiteSettingsRepository struct {
	db *gorm.DB
}

// NewSiteSettingsRepository 创建站点设置仓库
func NewSiteSettingsRepository(db *gorm.DB) *GormSiteSettingsRepository {
	return &GormSiteSettingsRepository{db: db}
}

// Get 获取唯一一行设置
func (r *GormSiteSettingsRepository) Get() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	if err := r.db.Order("id ASC").First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

// Count 已存在的设置行数
func (r *GormSiteSettingsRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.SiteSettings{}).Count(&count).Error
	return count, err
}

// Create 创建设置行
func (r *GormSiteSettingsRepository) Create(settings *models.SiteSettings) error {
	return r.db.Create(settings).Error
}

// Update 更新设置行
func (r *GormSiteSettingsRepository) Update(settings *models.SiteSettings) error {
	return r.db.Save(settings).Error
}
