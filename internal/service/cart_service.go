package service

import (
	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/repository"

	"github.com/shopspring/decimal"
)

// CartService 购物车业务服务
type CartService struct {
	repo        repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(repo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{repo: repo, productRepo: productRepo}
}

// CartSummary 购物车汇总：小计随当前产品价格实时计算，不做快照
type CartSummary struct {
	Items      []CartLine   `json:"items"`
	TotalItems int          `json:"total_items"`
	TotalPrice models.Money `json:"total_price"`
}

// CartLine 购物车行
type CartLine struct {
	models.CartItem
	Subtotal models.Money `json:"subtotal"`
}

// Summary 用户购物车汇总
func (s *CartService) Summary(userID uint) (*CartSummary, error) {
	items, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	summary := &CartSummary{Items: make([]CartLine, 0, len(items))}
	total := decimal.Zero
	for _, item := range items {
		subtotal := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(subtotal)
		summary.TotalItems += item.Quantity
		summary.Items = append(summary.Items, CartLine{
			CartItem: item,
			Subtotal: models.NewMoneyFromDecimal(subtotal),
		})
	}
	summary.TotalPrice = models.NewMoneyFromDecimal(total)
	return summary, nil
}

// Add 加入购物车：已存在时累加数量（唯一键冲突原子累加）
func (s *CartService) Add(userID, productID uint, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil || !product.IsActive {
		return ErrProductNotAvailable
	}
	return s.repo.Upsert(userID, productID, quantity)
}

// UpdateQuantity 覆盖条目数量
func (s *CartService) UpdateQuantity(userID, productID uint, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	affected, err := s.repo.UpdateQuantity(userID, productID, quantity)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Remove 移除条目
func (s *CartService) Remove(userID, productID uint) error {
	affected, err := s.repo.Remove(userID, productID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Clear 清空购物车
func (s *CartService) Clear(userID uint) error {
	return s.repo.Clear(userID)
}
