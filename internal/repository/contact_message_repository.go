package repository

import (
	"errors"

	"github.com/shanhu-mall/internal/models"

	"gorm.io/gorm"
)

// ContactMessageRepository 联系消息数据访问接口
type ContactMessageRepository interface {
	List(filter ContactMessageListFilter) ([]models.ContactMessage, int64, error)
	GetByID(id uint) (*models.ContactMessage, error)
	Create(message *models.ContactMessage) error
	Update(message *models.ContactMessage) error
}

// GormContactMessageRepository GORM 实现
type GormContactMessageRepository struct {
	db *gorm.DB
}

// NewContactMessageRepository 创建联系消息仓库
func NewContactMessageRepository(db *gorm.DB) *GormContactMessageRepository {
	return &GormContactMessageRepository{db: db}
}

// List 消息列表
func (r *GormContactMessageRepository) List(filter ContactMessageListFilter) ([]models.ContactMessage, int64, error) {
	query := r.db.Model(&models.ContactMessage{})
	if filter.IsReplied != nil {
		query = query.Where("is_replied = ?", *filter.IsReplied)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR subject LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []models.ContactMessage
	if err := applyPagination(query, filter.Page, filter.PageSize).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// GetByID 根据 ID 获取消息
func (r *GormContactMessageRepository) GetByID(id uint) (*models.ContactMessage, error) {
	var message models.ContactMessage
	if err := r.db.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

// Create 创建消息
func (r *GormContactMessageRepository) Create(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

// Update 更新消息
func (r *GormContactMessageRepository) Update(message *models.ContactMessage) error {
	return r.db.Save(message).Error
}
