package service

import (
	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/repository"
)

// WishlistService 心愿单业务服务
type WishlistService struct {
	repo        repository.WishlistRepository
	productRepo repository.ProductRepository
}

// NewWishlistService 创建心愿单服务
func NewWishlistService(repo repository.WishlistRepository, productRepo repository.ProductRepository) *WishlistService {
	return &WishlistService{repo: repo, productRepo: productRepo}
}

// List 用户心愿单
func (s *WishlistService) List(userID uint) ([]models.WishlistItem, error) {
	return s.repo.ListByUser(userID)
}

// Add 加入心愿单（重复加入幂等）
func (s *WishlistService) Add(userID, productID uint) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	return s.repo.Add(userID, productID)
}

// Remove 移出心愿单
func (s *WishlistService) Remove(userID, productID uint) error {
	affected, err := s.repo.Remove(userID, productID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Contains 是否在心愿单中
func (s *WishlistService) Contains(userID, productID uint) (bool, error) {
	return s.repo.Exists(userID, productID)
}
