package repository

import (
	"errors"
	"time"

	"github.com/shanhu-mall/internal/models"

	"gorm.io/gorm"
)

// BannerRepository 轮播图数据访问接口
type BannerRepository interface {
	ListValid(now time.Time) ([]models.Banner, error)
	List(filter BannerListFilter) ([]models.Banner, int64, error)
	GetByID(id uint) (*models.Banner, error)
	Create(banner *models.Banner) error
	Update(banner *models.Banner) error
	Delete(id uint) error
}

// GormBannerRepository GORM 实现
type GormBannerRepository struct {
	db *gorm.DB
}

// NewBannerRepository 创建轮播图仓库
func NewBannerRepository(db *gorm.DB) *GormBannerRepository {
	return &GormBannerRepository{db: db}
}

// ListValid 当前有效的轮播图（启用且处于投放时间窗内）
func (r *GormBannerRepository) ListValid(now time.Time) ([]models.Banner, error) {
	var banners []models.Banner
	if err := r.db.Where("is_active = ?", true).
		Where("(start_date IS NULL OR start_date <= ?)", now).
		Where("(end_date IS NULL OR end_date >= ?)", now).
		Order("sort_order ASC, id ASC").
		Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// List 轮播图列表（后台）
func (r *GormBannerRepository) List(filter BannerListFilter) ([]models.Banner, int64, error) {
	query := r.db.Model(&models.Banner{})
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title LIKE ?", like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var banners []models.Banner
	if err := applyPagination(query, filter.Page, filter.PageSize).
		Order("sort_order ASC, id ASC").
		Find(&banners).Error; err != nil {
		return nil, 0, err
	}
	return banners, total, nil
}

// GetByID 根据 ID 获取轮播图
func (r *GormBannerRepository) GetByID(id uint) (*models.Banner, error) {
	var banner models.Banner
	if err := r.db.First(&banner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &banner, nil
}

// Create 创建轮播图
func (r *GormBannerRepository) Create(banner *models.Banner) error {
	return r.db.Create(banner).Error
}

// Update 更新轮播图
func (r *GormBannerRepository) Update(banner *models.Banner) error {
	return r.db.Save(banner).Error
}

// Delete 删除轮播图
func (r *GormBannerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Banner{}, id).Error
}
