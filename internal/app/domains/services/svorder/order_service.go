package svorder

import (
	"context"
	"fmt"

	"sop/apiserver/internal/app/domains/entity/etorder"
	"sop/apiserver/internal/app/domains/repo/rporder"
)

// OrderService 内部订单服务（不经过供应商报文转换的 CRUD）
type OrderService struct {
	orderRepo rporder.OrderRepository
}

// NewOrderService 创建订单服务实例
func NewOrderService(orderRepo rporder.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// CreateOrder 创建内部订单
func (s *OrderService) CreateOrder(ctx context.Context, order *etorder.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return fmt.Errorf("save order failed: %w", err)
	}
	return nil
}

// GetOrder 查询订单
func (s *OrderService) GetOrder(ctx context.Context, orderID int64) (*etorder.Order, error) {
	return s.orderRepo.GetByID(ctx, orderID)
}

// ListOrders 分页查询订单
func (s *OrderService) ListOrders(ctx context.Context, customerID *int64, page, limit int) ([]*etorder.Order, int64, error) {
	return s.orderRepo.List(ctx, customerID, page, limit)
}

// UpdateOrderStatus 更新订单状态，按领域规则校验流转合法性
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID int64, next etorder.OrderStatus) (*etorder.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.TransitionTo(next); err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, fmt.Errorf("update order status failed: %w", err)
	}
	return order, nil
}

// DeleteOrder 删除订单
func (s *OrderService) DeleteOrder(ctx context.Context, orderID int64) error {
	return s.orderRepo.Delete(ctx, orderID)
}
