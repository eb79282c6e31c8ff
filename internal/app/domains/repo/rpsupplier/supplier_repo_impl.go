package rpsupplier

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sop/apiserver/internal/app/domains/entity/etsupplier"
	"sop/apiserver/internal/app/infra/persistence/entity"
	"sop/apiserver/internal/app/pkg/errorx"
)

// SupplierRepositoryImpl 供应商仓储实现（MySQL）
type SupplierRepositoryImpl struct {
	db *gorm.DB
}

// NewSupplierRepository 创建供应商仓储实例
func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &SupplierRepositoryImpl{db: db}
}

// Create 创建供应商，回填分配的 ID
func (r *SupplierRepositoryImpl) Create(ctx context.Context, supplier *etsupplier.Supplier) error {
	po := &entity.Supplier{
		ID:           supplier.ID,
		Name:         supplier.Name,
		ContactEmail: supplier.ContactEmail,
	}
	if err := r.db.WithContext(ctx).Create(po).Error; err != nil {
		return err
	}
	supplier.ID = po.ID
	supplier.CreatedAt = po.CreatedAt
	return nil
}

// GetByID 根据ID查询供应商
func (r *SupplierRepositoryImpl) GetByID(ctx context.Context, supplierID int64) (*etsupplier.Supplier, error) {
	var po entity.Supplier
	err := r.db.WithContext(ctx).Where("id = ?", supplierID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrNotFound
		}
		return nil, err
	}
	return r.toDomainModel(&po), nil
}

// List 查询全部供应商
func (r *SupplierRepositoryImpl) List(ctx context.Context) ([]*etsupplier.Supplier, error) {
	var pos []entity.Supplier
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&pos).Error; err != nil {
		return nil, err
	}

	suppliers := make([]*etsupplier.Supplier, 0, len(pos))
	for i := range pos {
		suppliers = append(suppliers, r.toDomainModel(&pos[i]))
	}
	return suppliers, nil
}

// toDomainModel 持久化模型 → 领域对象
func (r *SupplierRepositoryImpl) toDomainModel(po *entity.Supplier) *etsupplier.Supplier {
	return &etsupplier.Supplier{
		ID:           po.ID,
		Name:         po.Name,
		ContactEmail: po.ContactEmail,
		CreatedAt:    po.CreatedAt,
	}
}
