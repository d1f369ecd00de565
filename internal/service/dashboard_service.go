package service

import (
	"time"

	"github.com/shanhu-mall/internal/constants"
	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/repository"
)

// DashboardService 后台概览统计服务
type DashboardService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

// NewDashboardService 创建概览统计服务
func NewDashboardService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *DashboardService {
	return &DashboardService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// DashboardOverview 概览数据
type DashboardOverview struct {
	OrderStatusCounts map[string]int64 `json:"order_status_counts"`
	PendingOrders     int64            `json:"pending_orders"`
	MonthlySales      models.Money     `json:"monthly_sales"`
	NewUsersThisWeek  int64            `json:"new_users_this_week"`
	LowStockProducts  []models.Product `json:"low_stock_products"`
}

// Overview 汇总概览数据
func (s *DashboardService) Overview() (*DashboardOverview, error) {
	counts, err := s.orderRepo.StatusCounts(0)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthlySales, err := s.orderRepo.SumFinalAmountSince(constants.OrderStatusDelivered, monthStart)
	if err != nil {
		return nil, err
	}

	weekStart := now.AddDate(0, 0, -7)
	newUsers, err := s.userRepo.CountSince(weekStart)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.productRepo.ListLowStock(10)
	if err != nil {
		return nil, err
	}

	return &DashboardOverview{
		OrderStatusCounts: counts,
		PendingOrders:     counts[constants.OrderStatusPending],
		MonthlySales:      monthlySales,
		NewUsersThisWeek:  newUsers,
		LowStockProducts:  lowStock,
	}, nil
}
