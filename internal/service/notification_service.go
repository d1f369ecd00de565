package service

import (
	"strings"
	"time"

	"github.com/shanhu-mall/internal/constants"
	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/repository"
)

// NotificationService 通知业务服务
type NotificationService struct {
	repo repository.NotificationRepository
}

// NewNotificationService 创建通知服务
func NewNotificationService(repo repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// NotifyInput 发送通知输入
type NotifyInput struct {
	UserID           uint
	Title            string
	Message          string
	NotificationType string
	Link             string
	RelatedType      string
	RelatedID        *uint
}

// List 用户通知列表
func (s *NotificationService) List(userID uint, onlyUnread bool, page, pageSize int) ([]models.Notification, int64, error) {
	return s.repo.List(repository.NotificationListFilter{
		Page:       page,
		PageSize:   pageSize,
		UserID:     userID,
		OnlyUnread: onlyUnread,
	})
}

// Notify 发送站内通知
func (s *NotificationService) Notify(input NotifyInput) (*models.Notification, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.UserID == 0 || input.Title == "" {
		return nil, ErrValidation
	}
	notificationType := strings.TrimSpace(input.NotificationType)
	if notificationType == "" {
		notificationType = constants.NotificationTypeInfo
	}
	notification := &models.Notification{
		UserID:           input.UserID,
		Title:            input.Title,
		Message:          input.Message,
		NotificationType: notificationType,
		Link:             input.Link,
		RelatedType:      input.RelatedType,
		RelatedID:        input.RelatedID,
	}
	if err := s.repo.Create(notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// MarkRead 标记单条已读。重复调用不改变首次已读时间
func (s *NotificationService) MarkRead(id, userID uint) error {
	notification, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if notification == nil || notification.UserID != userID {
		return ErrNotFound
	}
	_, err = s.repo.MarkRead(id, userID, time.Now())
	return err
}

// MarkAllRead 全部标记已读，返回本次置为已读的条数
func (s *NotificationService) MarkAllRead(userID uint) (int64, error) {
	return s.repo.MarkAllRead(userID, time.Now())
}

// UnreadCount 未读数量
func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	return s.repo.UnreadCount(userID)
}
