package svproduct

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"sop/apiserver/internal/app/domains/entity/etproduct"
	"sop/apiserver/internal/app/domains/repo/rpproduct"
)

// ProductService 商品服务
type ProductService struct {
	productRepo rpproduct.ProductRepository
}

// NewProductService 创建商品服务实例
func NewProductService(productRepo rpproduct.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProduct 创建商品，编码缺省时生成新的 GUID
func (s *ProductService) CreateProduct(ctx context.Context, name, sku string, price float64, productCode string) (*etproduct.Product, error) {
	var code uuid.UUID
	if productCode == "" {
		code = uuid.New()
	} else {
		parsed, err := uuid.Parse(productCode)
		if err != nil {
			return nil, fmt.Errorf("invalid product code %q: %w", productCode, err)
		}
		code = parsed
	}

	product := &etproduct.Product{
		Name:        name,
		SKU:         sku,
		Price:       price,
		ProductCode: code,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product failed: %w", err)
	}
	return product, nil
}

// GetProduct 查询商品
func (s *ProductService) GetProduct(ctx context.Context, productID int64) (*etproduct.Product, error) {
	return s.productRepo.GetByID(ctx, productID)
}

// GetProductByCode 根据 GUID 编码查询商品
func (s *ProductService) GetProductByCode(ctx context.Context, code uuid.UUID) (*etproduct.Product, error) {
	return s.productRepo.GetByCode(ctx, code)
}

// ListProducts 分页查询商品
func (s *ProductService) ListProducts(ctx context.Context, page, limit int) ([]*etproduct.Product, int64, error) {
	return s.productRepo.List(ctx, page, limit)
}

// UpdateProduct 更新商品
func (s *ProductService) UpdateProduct(ctx context.Context, product *etproduct.Product) error {
	return s.productRepo.Update(ctx, product)
}

// DeleteProduct 删除商品
func (s *ProductService) DeleteProduct(ctx context.Context, productID int64) error {
	return s.productRepo.Delete(ctx, productID)
}
