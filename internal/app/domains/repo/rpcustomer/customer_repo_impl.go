package rpcustomer

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sop/apiserver/internal/app/domains/entity/etcustomer"
	"sop/apiserver/internal/app/infra/persistence/entity"
	"sop/apiserver/internal/app/pkg/errorx"
)

// CustomerRepositoryImpl 客户仓储实现（MySQL）
type CustomerRepositoryImpl struct {
	db *gorm.DB
}

// NewCustomerRepository 创建客户仓储实例
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &CustomerRepositoryImpl{db: db}
}

// Create 创建客户，回填分配的 ID；邮箱重复返回 errorx.ErrConflict
func (r *CustomerRepositoryImpl) Create(ctx context.Context, customer *etcustomer.Customer) error {
	po := r.toGormModel(customer)
	if err := r.db.WithContext(ctx).Create(po).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errorx.ErrConflict
		}
		return err
	}
	customer.ID = po.ID
	customer.CreatedAt = po.CreatedAt
	customer.UpdatedAt = po.UpdatedAt
	return nil
}

// GetByID 根据ID查询客户
func (r *CustomerRepositoryImpl) GetByID(ctx context.Context, customerID int64) (*etcustomer.Customer, error) {
	var po entity.Customer
	err := r.db.WithContext(ctx).Where("id = ?", customerID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrNotFound
		}
		return nil, err
	}
	return r.toDomainModel(&po), nil
}

// GetByEmail 根据邮箱查询客户
func (r *CustomerRepositoryImpl) GetByEmail(ctx context.Context, email string) (*etcustomer.Customer, error) {
	var po entity.Customer
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrNotFound
		}
		return nil, err
	}
	return r.toDomainModel(&po), nil
}

// List 分页查询客户
func (r *CustomerRepositoryImpl) List(ctx context.Context, page, limit int) ([]*etcustomer.Customer, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Customer{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var pos []entity.Customer
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&pos).Error
	if err != nil {
		return nil, 0, err
	}

	customers := make([]*etcustomer.Customer, 0, len(pos))
	for i := range pos {
		customers = append(customers, r.toDomainModel(&pos[i]))
	}
	return customers, total, nil
}

// Update 更新客户
func (r *CustomerRepositoryImpl) Update(ctx context.Context, customer *etcustomer.Customer) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Customer{}).
		Where("id = ?", customer.ID).
		Updates(map[string]interface{}{
			"name":  customer.Name,
			"email": customer.Email,
			"phone": customer.Phone,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errorx.ErrConflict
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errorx.ErrNotFound
	}
	return nil
}

// Delete 删除客户
func (r *CustomerRepositoryImpl) Delete(ctx context.Context, customerID int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", customerID).Delete(&entity.Customer{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errorx.ErrNotFound
	}
	return nil
}

// Exists 检查客户是否存在
func (r *CustomerRepositoryImpl) Exists(ctx context.Context, customerID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Customer{}).
		Where("id = ?", customerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// toGormModel 领域对象 → 持久化模型
func (r *CustomerRepositoryImpl) toGormModel(customer *etcustomer.Customer) *entity.Customer {
	return &entity.Customer{
		ID:    customer.ID,
		Name:  customer.Name,
		Email: customer.Email,
		Phone: customer.Phone,
	}
}

// toDomainModel 持久化模型 → 领域对象
func (r *CustomerRepositoryImpl) toDomainModel(po *entity.Customer) *etcustomer.Customer {
	return &etcustomer.Customer{
		ID:        po.ID,
		Name:      po.Name,
		Email:     po.Email,
		Phone:     po.Phone,
		CreatedAt: po.CreatedAt,
		UpdatedAt: po.UpdatedAt,
	}
}
