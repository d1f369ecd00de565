package service

import (
	"strings"

	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/repository"
)

// FAQService 常见问题业务服务
type FAQService struct {
	repo repository.FAQRepository
}

// NewFAQService 创建常见问题服务
func NewFAQService(repo repository.FAQRepository) *FAQService {
	return &FAQService{repo: repo}
}

// SaveFAQInput 创建/更新问题输入
type SaveFAQInput struct {
	Question  string
	Answer    string
	Category  string
	IsActive  *bool
	SortOrder int
}

// List 问题列表
func (s *FAQService) List(filter repository.FAQListFilter) ([]models.FAQ, int64, error) {
	return s.repo.List(filter)
}

// GetDetail 问题详情并累计浏览次数
func (s *FAQService) GetDetail(id uint) (*models.FAQ, error) {
	faq, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if faq == nil {
		return nil, ErrNotFound
	}
	if err := s.repo.IncrementViewCount(id); err != nil {
		return nil, err
	}
	faq.ViewCount++
	return faq, nil
}

// Create 创建问题
func (s *FAQService) Create(input SaveFAQInput) (*models.FAQ, error) {
	input.Question = strings.TrimSpace(input.Question)
	input.Answer = strings.TrimSpace(input.Answer)
	if input.Question == "" || input.Answer == "" {
		return nil, ErrValidation
	}
	faq := &models.FAQ{
		Question:  input.Question,
		Answer:    input.Answer,
		Category:  input.Category,
		IsActive:  true,
		SortOrder: input.SortOrder,
	}
	if input.IsActive != nil {
		faq.IsActive = *input.IsActive
	}
	if err := s.repo.Create(faq); err != nil {
		return nil, err
	}
	return faq, nil
}

// Update 更新问题
func (s *FAQService) Update(id uint, input SaveFAQInput) (*models.FAQ, error) {
	faq, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if faq == nil {
		return nil, ErrNotFound
	}
	input.Question = strings.TrimSpace(input.Question)
	input.Answer = strings.TrimSpace(input.Answer)
	if input.Question == "" || input.Answer == "" {
		return nil, ErrValidation
	}
	faq.Question = input.Question
	faq.Answer = input.Answer
	faq.Category = input.Category
	faq.SortOrder = input.SortOrder
	if input.IsActive != nil {
		faq.IsActive = *input.IsActive
	}
	if err := s.repo.Update(faq); err != nil {
		return nil, err
	}
	return faq, nil
}

// Delete 删除问题
func (s *FAQService) Delete(id uint) error {
	faq, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if faq == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
