package rporder

import (
	"context"

	"sop/apiserver/internal/app/domains/entity/etorder"
)

// OrderRepository 订单仓储接口
type OrderRepository interface {
	// Create 创建订单，成功后回填存储层分配的 ID
	Create(ctx context.Context, order *etorder.Order) error

	// GetByID 根据ID查询订单，未命中返回 errorx.ErrNotFound
	GetByID(ctx context.Context, orderID int64) (*etorder.Order, error)

	// List 分页查询订单，customerID 非空时按客户过滤
	List(ctx context.Context, customerID *int64, page, limit int) ([]*etorder.Order, int64, error)

	// UpdateStatus 更新订单状态
	UpdateStatus(ctx context.Context, orderID int64, status etorder.OrderStatus) error

	// Delete 删除订单
	Delete(ctx context.Context, orderID int64) error
}
