package rpsupplier

import (
	"context"

	"sop/apiserver/internal/app/domains/entity/etsupplier"
)

// SupplierRepository 供应商仓储接口
type SupplierRepository interface {
	// Create 创建供应商，成功后回填 ID
	Create(ctx context.Context, supplier *etsupplier.Supplier) error

	// GetByID 根据ID查询供应商，未命中返回 errorx.ErrNotFound
	GetByID(ctx context.Context, supplierID int64) (*etsupplier.Supplier, error)

	// List 查询全部供应商
	List(ctx context.Context) ([]*etsupplier.Supplier, error)
}
