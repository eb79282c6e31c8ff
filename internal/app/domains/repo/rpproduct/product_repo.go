package rpproduct

import (
	"context"

	"github.com/google/uuid"
	"sop/apiserver/internal/app/domains/entity/etproduct"
)

// ProductRepository 商品仓储接口
type ProductRepository interface {
	// Create 创建商品，成功后回填 ID
	Create(ctx context.Context, product *etproduct.Product) error

	// GetByID 根据ID查询商品，未命中返回 errorx.ErrNotFound
	GetByID(ctx context.Context, productID int64) (*etproduct.Product, error)

	// GetByCode 根据 GUID 编码查询商品，未命中返回 errorx.ErrNotFound
	GetByCode(ctx context.Context, code uuid.UUID) (*etproduct.Product, error)

	// List 分页查询商品
	List(ctx context.Context, page, limit int) ([]*etproduct.Product, int64, error)

	// Update 更新商品
	Update(ctx context.Context, product *etproduct.Product) error

	// Delete 删除商品
	Delete(ctx context.Context, productID int64) error

	// Exists 检查商品是否存在
	Exists(ctx context.Context, productID int64) (bool, error)
}
