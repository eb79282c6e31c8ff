package svsupplier

import (
	"context"
	"fmt"

	"sop/apiserver/internal/app/domains/entity/etsupplier"
	"sop/apiserver/internal/app/domains/repo/rpsupplier"
)

// SupplierService 供应商服务
type SupplierService struct {
	supplierRepo rpsupplier.SupplierRepository
}

// NewSupplierService 创建供应商服务实例
func NewSupplierService(supplierRepo rpsupplier.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// CreateSupplier 创建供应商
func (s *SupplierService) CreateSupplier(ctx context.Context, name, contactEmail string) (*etsupplier.Supplier, error) {
	supplier := &etsupplier.Supplier{
		Name:         name,
		ContactEmail: contactEmail,
	}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, fmt.Errorf("create supplier failed: %w", err)
	}
	return supplier, nil
}

// GetSupplier 查询供应商
func (s *SupplierService) GetSupplier(ctx context.Context, supplierID int64) (*etsupplier.Supplier, error) {
	return s.supplierRepo.GetByID(ctx, supplierID)
}

// ListSuppliers 查询全部供应商
func (s *SupplierService) ListSuppliers(ctx context.Context) ([]*etsupplier.Supplier, error) {
	return s.supplierRepo.List(ctx)
}
