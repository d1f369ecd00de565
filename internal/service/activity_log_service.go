package service

import (
	"strings"

	"github.com/shanhu-mall/internal/logger"
	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/repository"
)

// ActivityLogService 活动日志业务服务（追加写，不支持修改删除）
type ActivityLogService struct {
	repo repository.ActivityLogRepository
}

// NewActivityLogService 创建活动日志服务
func NewActivityLogService(repo repository.ActivityLogRepository) *ActivityLogService {
	return &ActivityLogService{repo: repo}
}

// RecordInput 记录日志输入
type RecordInput struct {
	UserID      *uint
	Action      string
	Description string
	IPAddress   string
	UserAgent   string
	RelatedType string
	RelatedID   *uint
	ExtraData   models.JSON
}

// Record 追加一条日志。记录失败只告警，不阻断主流程
func (s *ActivityLogService) Record(input RecordInput) {
	action := strings.TrimSpace(input.Action)
	if action == "" {
		return
	}
	log := &models.ActivityLog{
		UserID:      input.UserID,
		Action:      action,
		Description: input.Description,
		IPAddress:   input.IPAddress,
		UserAgent:   input.UserAgent,
		RelatedType: input.RelatedType,
		RelatedID:   input.RelatedID,
		ExtraData:   input.ExtraData,
	}
	if err := s.repo.Create(log); err != nil {
		logger.Warnw("activity_log_record_failed", "action", action, "error", err)
	}
}

// List 日志列表
func (s *ActivityLogService) List(filter repository.ActivityLogListFilter) ([]models.ActivityLog, int64, error) {
	return s.repo.List(filter)
}
