package service

import (
	"strings"

	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/repository"
)

// BrandService 品牌业务服务
type BrandService struct {
	repo repository.BrandRepository
}

// NewBrandService 创建品牌服务
func NewBrandService(repo repository.BrandRepository) *BrandService {
	return &BrandService{repo: repo}
}

// SaveBrandInput 创建/更新品牌输入
type SaveBrandInput struct {
	Name        string
	Logo        string
	Description string
	Website     string
	IsActive    *bool
}

// List 品牌列表
func (s *BrandService) List(onlyActive bool) ([]models.Brand, error) {
	return s.repo.List(onlyActive)
}

// GetByID 品牌详情
func (s *BrandService) GetByID(id uint) (*models.Brand, error) {
	brand, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, ErrNotFound
	}
	return brand, nil
}

// Create 创建品牌
func (s *BrandService) Create(input SaveBrandInput) (*models.Brand, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrValidation
	}
	brand := &models.Brand{
		Name:        input.Name,
		Logo:        input.Logo,
		Description: input.Description,
		Website:     input.Website,
		IsActive:    true,
	}
	if input.IsActive != nil {
		brand.IsActive = *input.IsActive
	}
	if err := s.repo.Create(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// Update 更新品牌
func (s *BrandService) Update(id uint, input SaveBrandInput) (*models.Brand, error) {
	brand, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, ErrNotFound
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrValidation
	}
	brand.Name = input.Name
	brand.Logo = input.Logo
	brand.Description = input.Description
	brand.Website = input.Website
	if input.IsActive != nil {
		brand.IsActive = *input.IsActive
	}
	if err := s.repo.Update(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// Delete 删除品牌
func (s *BrandService) Delete(id uint) error {
	brand, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if brand == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
