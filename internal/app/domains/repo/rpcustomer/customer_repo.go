package rpcustomer

import (
	"context"

	"sop/apiserver/internal/app/domains/entity/etcustomer"
)

// CustomerRepository 客户仓储接口
type CustomerRepository interface {
	// Create 创建客户，成功后回填 ID
	Create(ctx context.Context, customer *etcustomer.Customer) error

	// GetByID 根据ID查询客户，未命中返回 errorx.ErrNotFound
	GetByID(ctx context.Context, customerID int64) (*etcustomer.Customer, error)

	// GetByEmail 根据邮箱查询客户，未命中返回 errorx.ErrNotFound
	GetByEmail(ctx context.Context, email string) (*etcustomer.Customer, error)

	// List 分页查询客户
	List(ctx context.Context, page, limit int) ([]*etcustomer.Customer, int64, error)

	// Update 更新客户
	Update(ctx context.Context, customer *etcustomer.Customer) error

	// Delete 删除客户
	Delete(ctx context.Context, customerID int64) error

	// Exists 检查客户是否存在
	Exists(ctx context.Context, customerID int64) (bool, error)
}
