package rpproduct

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sop/apiserver/internal/app/domains/entity/etproduct"
	"sop/apiserver/internal/app/infra/persistence/entity"
	"sop/apiserver/internal/app/pkg/errorx"
)

// ProductRepositoryImpl 商品仓储实现（MySQL）
type ProductRepositoryImpl struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储实例
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

// Create 创建商品，回填分配的 ID；编码重复返回 errorx.ErrConflict
func (r *ProductRepositoryImpl) Create(ctx context.Context, product *etproduct.Product) error {
	po := r.toGormModel(product)
	if err := r.db.WithContext(ctx).Create(po).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errorx.ErrConflict
		}
		return err
	}
	product.ID = po.ID
	product.CreatedAt = po.CreatedAt
	product.UpdatedAt = po.UpdatedAt
	return nil
}

// GetByID 根据ID查询商品
func (r *ProductRepositoryImpl) GetByID(ctx context.Context, productID int64) (*etproduct.Product, error) {
	var po entity.Product
	err := r.db.WithContext(ctx).Where("id = ?", productID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrNotFound
		}
		return nil, err
	}
	return r.toDomainModel(&po)
}

// GetByCode 根据 GUID 编码查询商品
func (r *ProductRepositoryImpl) GetByCode(ctx context.Context, code uuid.UUID) (*etproduct.Product, error) {
	var po entity.Product
	err := r.db.WithContext(ctx).Where("product_code = ?", code.String()).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrNotFound
		}
		return nil, err
	}
	return r.toDomainModel(&po)
}

// List 分页查询商品
func (r *ProductRepositoryImpl) List(ctx context.Context, page, limit int) ([]*etproduct.Product, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Product{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var pos []entity.Product
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&pos).Error
	if err != nil {
		return nil, 0, err
	}

	products := make([]*etproduct.Product, 0, len(pos))
	for i := range pos {
		product, err := r.toDomainModel(&pos[i])
		if err != nil {
			return nil, 0, err
		}
		products = append(products, product)
	}
	return products, total, nil
}

// Update 更新商品（编码不可变更）
func (r *ProductRepositoryImpl) Update(ctx context.Context, product *etproduct.Product) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":  product.Name,
			"sku":   product.SKU,
			"price": product.Price,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errorx.ErrNotFound
	}
	return nil
}

// Delete 删除商品
func (r *ProductRepositoryImpl) Delete(ctx context.Context, productID int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", productID).Delete(&entity.Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errorx.ErrNotFound
	}
	return nil
}

// Exists 检查商品是否存在
func (r *ProductRepositoryImpl) Exists(ctx context.Context, productID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Where("id = ?", productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// toGormModel 领域对象 → 持久化模型
func (r *ProductRepositoryImpl) toGormModel(product *etproduct.Product) *entity.Product {
	return &entity.Product{
		ID:          product.ID,
		Name:        product.Name,
		SKU:         product.SKU,
		Price:       product.Price,
		ProductCode: product.ProductCode.String(),
	}
}

// toDomainModel 持久化模型 → 领域对象
func (r *ProductRepositoryImpl) toDomainModel(po *entity.Product) (*etproduct.Product, error) {
	code, err := uuid.Parse(po.ProductCode)
	if err != nil {
		return nil, fmt.Errorf("parse product code %q failed: %w", po.ProductCode, err)
	}
	return &etproduct.Product{
		ID:          po.ID,
		Name:        po.Name,
		SKU:         po.SKU,
		Price:       po.Price,
		ProductCode: code,
		CreatedAt:   po.CreatedAt,
		UpdatedAt:   po.UpdatedAt,
	}, nil
}
