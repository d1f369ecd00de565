package service

import (
	"strings"

	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/repository"
)

// EmailTemplateService 邮件模板业务服务
type EmailTemplateService struct {
	repo repository.EmailTemplateRepository
}

// NewEmailTemplateService 创建邮件模板服务
func NewEmailTemplateService(repo repository.EmailTemplateRepository) *EmailTemplateService {
	return &EmailTemplateService{repo: repo}
}

// SaveEmailTemplateInput 创建/更新模板输入
type SaveEmailTemplateInput struct {
	Name        string
	Code        string
	Subject     string
	HTMLContent string
	TextContent string
	Variables   models.JSON
	IsActive    *bool
}

// GetByCode 根据编码获取模板
func (s *EmailTemplateService) GetByCode(code string) (*models.EmailTemplate, error) {
	return s.repo.GetByCode(code)
}

// List 模板列表
func (s *EmailTemplateService) List(onlyActive bool) ([]models.EmailTemplate, error) {
	return s.repo.List(onlyActive)
}

// Create 创建模板
func (s *EmailTemplateService) Create(input SaveEmailTemplateInput) (*models.EmailTemplate, error) {
	input.Code = strings.TrimSpace(input.Code)
	input.Subject = strings.TrimSpace(input.Subject)
	if input.Code == "" || input.Subject == "" {
		return nil, ErrValidation
	}
	count, err := s.repo.CountByCode(input.Code, 0)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCodeExists
	}

	template := &models.EmailTemplate{
		Name:        input.Name,
		Code:        input.Code,
		Subject:     input.Subject,
		HTMLContent: input.HTMLContent,
		TextContent: input.TextContent,
		Variables:   input.Variables,
		IsActive:    true,
	}
	if input.IsActive != nil {
		template.IsActive = *input.IsActive
	}
	if err := s.repo.Create(template); err != nil {
		return nil, err
	}
	return template, nil
}

// Update 更新模板
func (s *EmailTemplateService) Update(id uint, input SaveEmailTemplateInput) (*models.EmailTemplate, error) {
	template, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrNotFound
	}
	input.Code = strings.TrimSpace(input.Code)
	input.Subject = strings.TrimSpace(input.Subject)
	if input.Code == "" || input.Subject == "" {
		return nil, ErrValidation
	}
	count, err := s.repo.CountByCode(input.Code, id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCodeExists
	}

	template.Name = input.Name
	template.Code = input.Code
	template.Subject = input.Subject
	template.HTMLContent = input.HTMLContent
	template.TextContent = input.TextContent
	template.Variables = input.Variables
	if input.IsActive != nil {
		template.IsActive = *input.IsActive
	}
	if err := s.repo.Update(template); err != nil {
		return nil, err
	}
	return template, nil
}

// Delete 删除模板
func (s *EmailTemplateService) Delete(id uint) error {
	template, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if template == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

// RenderTemplate 以 {{name}} 占位符渲染模板内容
func RenderTemplate(content string, variables map[string]string) string {
	if content == "" || len(variables) == 0 {
		return content
	}
	replacements := make([]string, 0, len(variables)*2)
	for name, value := range variables {
		replacements = append(replacements, "{{"+name+"}}", value)
	}
	return strings.NewReplacer(replacements...).Replace(content)
}
