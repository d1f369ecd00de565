package service

import (
	"strings"
	"time"

	"github.com/shanhu-mall/internal/constants"
	"github.com/shanhu-mall/internal/models"
	"github.com/shanhu-mall/internal/repository"
)

// ShippingService 物流业务服务
type ShippingService struct {
	orderRepo repository.OrderRepository
}

// NewShippingService 创建物流服务
func NewShippingService(orderRepo repository.OrderRepository) *ShippingService {
	return &ShippingService{orderRepo: orderRepo}
}

// CreateShippingInput 创建物流记录输入
type CreateShippingInput struct {
	ShippingCompany string
	TrackingNumber  string
}

// AddTrackingInput 追加物流轨迹输入
type AddTrackingInput struct {
	Location    string
	Description string
	Timestamp   *time.Time
}

// GetByOrderNumber 查询订单物流（userID 非零时校验归属）
func (s *ShippingService) GetByOrderNumber(orderNumber string, userID uint) (*models.Shipping, error) {
	order, err := s.orderRepo.GetByOrderNumber(orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if userID != 0 && order.UserID != userID {
		return nil, ErrNotFound
	}
	shipping, err := s.orderRepo.GetShippingByOrderID(order.ID)
	if err != nil {
		return nil, err
	}
	if shipping == nil {
		return nil, ErrNotFound
	}
	return shipping, nil
}

// Create 为订单创建物流记录（每单最多一条）
func (s *ShippingService) Create(orderNumber string, input CreateShippingInput) (*models.Shipping, error) {
	order, err := s.orderRepo.GetByOrderNumber(orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	existing, err := s.orderRepo.GetShippingByOrderID(order.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		// 标记发货时自动建立的空白记录允许补填快递信息
		if existing.ShippingCompany != "" || existing.TrackingNumber != "" {
			return nil, ErrShippingExists
		}
		existing.ShippingCompany = strings.TrimSpace(input.ShippingCompany)
		existing.TrackingNumber = strings.TrimSpace(input.TrackingNumber)
		if err := s.orderRepo.UpdateShipping(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	shipping := &models.Shipping{
		OrderID:         order.ID,
		ShippingCompany: strings.TrimSpace(input.ShippingCompany),
		TrackingNumber:  strings.TrimSpace(input.TrackingNumber),
		ShippingStatus:  constants.ShippingStatusPreparing,
	}
	if err := s.orderRepo.CreateShipping(shipping); err != nil {
		return nil, err
	}
	return shipping, nil
}

// UpdateStatus 更新物流状态，可同步追加一条轨迹
func (s *ShippingService) UpdateStatus(orderNumber, status string, tracking *AddTrackingInput) (*models.Shipping, error) {
	if !constants.IsValidShippingStatus(status) {
		return nil, ErrValidation
	}
	order, err := s.orderRepo.GetByOrderNumber(orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	shipping, err := s.orderRepo.GetShippingByOrderID(order.ID)
	if err != nil {
		return nil, err
	}
	if shipping == nil {
		return nil, ErrNotFound
	}

	shipping.ShippingStatus = status
	if err := s.orderRepo.UpdateShipping(shipping); err != nil {
		return nil, err
	}
	if tracking != nil {
		if _, err := s.appendTracking(shipping.ID, *tracking); err != nil {
			return nil, err
		}
	}
	return s.orderRepo.GetShippingByOrderID(order.ID)
}

// AddTracking 为订单追加物流轨迹
func (s *ShippingService) AddTracking(orderNumber string, input AddTrackingInput) (*models.ShippingTracking, error) {
	order, err := s.orderRepo.GetByOrderNumber(orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	shipping, err := s.orderRepo.GetShippingByOrderID(order.ID)
	if err != nil {
		return nil, err
	}
	if shipping == nil {
		return nil, ErrNotFound
	}
	return s.appendTracking(shipping.ID, input)
}

func (s *ShippingService) appendTracking(shippingID uint, input AddTrackingInput) (*models.ShippingTracking, error) {
	input.Description = strings.TrimSpace(input.Description)
	if input.Description == "" {
		return nil, ErrValidation
	}
	timestamp := time.Now()
	if input.Timestamp != nil {
		timestamp = *input.Timestamp
	}
	record := &models.ShippingTracking{
		ShippingID:  shippingID,
		Location:    strings.TrimSpace(input.Location),
		Description: input.Description,
		Timestamp:   timestamp,
	}
	if err := s.orderRepo.CreateTracking(record); err != nil {
		return nil, err
	}
	return record, nil
}
