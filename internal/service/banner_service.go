package service

import (
	"context"
	"strings"
	"time"

	"github.com/shanhu-mall/internal/cache"
	"github.com/shanhu-mall/internal/logger"
	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/repository"
)

// BannerService 轮播图业务服务
type BannerService struct {
	repo repository.BannerRepository
}

// NewBannerService 创建轮播图服务
func NewBannerService(repo repository.BannerRepository) *BannerService {
	return &BannerService{repo: repo}
}

// SaveBannerInput 创建/更新轮播图输入
type SaveBannerInput struct {
	Title      string
	Subtitle   string
	Image      string
	Link       string
	ButtonText string
	IsActive   *bool
	SortOrder  int
	StartDate  *time.Time
	EndDate    *time.Time
}

// ListValid 当前有效的轮播图，带短时缓存
func (s *BannerService) ListValid(ctx context.Context) ([]models.Banner, error) {
	if banners, hit, err := cache.GetValidBanners(ctx); err == nil && hit {
		return banners, nil
	}
	banners, err := s.repo.ListValid(time.Now())
	if err != nil {
		return nil, err
	}
	if err := cache.SetValidBanners(ctx, banners); err != nil {
		logger.Debugw("banner_cache_set_failed", "error", err)
	}
	return banners, nil
}

// ListAdmin 后台轮播图列表
func (s *BannerService) ListAdmin(filter repository.BannerListFilter) ([]models.Banner, int64, error) {
	return s.repo.List(filter)
}

// Create 创建轮播图
func (s *BannerService) Create(ctx context.Context, input SaveBannerInput) (*models.Banner, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Image = strings.TrimSpace(input.Image)
	if input.Title == "" || input.Image == "" {
		return nil, ErrValidation
	}
	banner := &models.Banner{
		Title:      input.Title,
		Subtitle:   input.Subtitle,
		Image:      input.Image,
		Link:       input.Link,
		ButtonText: input.ButtonText,
		IsActive:   true,
		SortOrder:  input.SortOrder,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}
	if err := s.repo.Create(banner); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return banner, nil
}

// Update 更新轮播图
func (s *BannerService) Update(ctx context.Context, id uint, input SaveBannerInput) (*models.Banner, error) {
	banner, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, ErrNotFound
	}
	input.Title = strings.TrimSpace(input.Title)
	input.Image = strings.TrimSpace(input.Image)
	if input.Title == "" || input.Image == "" {
		return nil, ErrValidation
	}
	banner.Title = input.Title
	banner.Subtitle = input.Subtitle
	banner.Image = input.Image
	banner.Link = input.Link
	banner.ButtonText = input.ButtonText
	banner.SortOrder = input.SortOrder
	banner.StartDate = input.StartDate
	banner.EndDate = input.EndDate
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}
	if err := s.repo.Update(banner); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return banner, nil
}

// Delete 删除轮播图
func (s *BannerService) Delete(ctx context.Context, id uint) error {
	banner, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if banner == nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *BannerService) invalidateCache(ctx context.Context) {
	if err := cache.DelValidBanners(ctx); err != nil {
		logger.Debugw("banner_cache_del_failed", "error", err)
	}
}
