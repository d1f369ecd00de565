package service

import (
	"net/mail"
	"strings"
	"time"

	"github.com/shanhu-mall/internal/logger"
	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/repository"
)

// ContactService 联系消息业务服务
type ContactService struct {
	repo         repository.ContactMessageRepository
	captcha      *CaptchaService
	emailService *EmailService
}

// NewContactService 创建联系消息服务
func NewContactService(repo repository.ContactMessageRepository, captcha *CaptchaService, emailService *EmailService) *ContactService {
	return &ContactService{repo: repo, captcha: captcha, emailService: emailService}
}

// SubmitContactInput 提交留言输入
type SubmitContactInput struct {
	Name        string
	Email       string
	Phone       string
	Subject     string
	Message     string
	CaptchaID   string
	CaptchaCode string
}

// ReplyContactInput 回复留言输入
type ReplyContactInput struct {
	ReplyMessage string
	RepliedByID  uint
	SendEmail    bool
}

// Submit 提交留言
func (s *ContactService) Submit(input SubmitContactInput) (*models.ContactMessage, error) {
	if s.captcha != nil {
		if err := s.captcha.Verify(input.CaptchaID, input.CaptchaCode); err != nil {
			return nil, err
		}
	}
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Subject = strings.TrimSpace(input.Subject)
	input.Message = strings.TrimSpace(input.Message)
	if input.Name == "" || input.Subject == "" || input.Message == "" {
		return nil, ErrValidation
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, ErrValidation
	}

	message := &models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := s.repo.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}

// List 留言列表
func (s *ContactService) List(filter repository.ContactMessageListFilter) ([]models.ContactMessage, int64, error) {
	return s.repo.List(filter)
}

// GetByID 留言详情
func (s *ContactService) GetByID(id uint) (*models.ContactMessage, error) {
	message, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, ErrNotFound
	}
	return message, nil
}

// Reply 回复留言，可选抄送邮件
func (s *ContactService) Reply(id uint, input ReplyContactInput) (*models.ContactMessage, error) {
	message, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, ErrNotFound
	}
	input.ReplyMessage = strings.TrimSpace(input.ReplyMessage)
	if input.ReplyMessage == "" {
		return nil, ErrValidation
	}

	now := time.Now()
	message.IsReplied = true
	message.ReplyMessage = input.ReplyMessage
	message.RepliedAt = &now
	if input.RepliedByID != 0 {
		message.RepliedByID = &input.RepliedByID
	}
	if err := s.repo.Update(message); err != nil {
		return nil, err
	}

	if input.SendEmail && s.emailService != nil {
		subject := "回复：" + message.Subject
		if err := s.emailService.SendContactReplyEmail(message.Email, subject, input.ReplyMessage); err != nil {
			logger.Warnw("contact_reply_email_failed", "message_id", message.ID, "error", err)
		}
	}
	return message, nil
}
