package rporder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"sop/apiserver/internal/app/domains/entity/etorder"
	"sop/apiserver/internal/app/infra/persistence/entity"
	"sop/apiserver/internal/app/pkg/errorx"
)

// OrderRepositoryImpl 订单仓储实现（MySQL）
type OrderRepositoryImpl struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储实例
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// Create 创建订单，将领域对象转换为 GORM 模型后存储，回填分配的 ID
func (r *OrderRepositoryImpl) Create(ctx context.Context, order *etorder.Order) error {
	po, err := r.toGormModel(order)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(po).Error; err != nil {
		return err
	}
	order.ID = po.ID
	order.CreatedAt = po.CreatedAt
	order.UpdatedAt = po.UpdatedAt
	return nil
}

// GetByID 根据ID查询订单
func (r *OrderRepositoryImpl) GetByID(ctx context.Context, orderID int64) (*etorder.Order, error) {
	var po entity.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrNotFound
		}
		return nil, err
	}
	return r.toDomainModel(&po)
}

// List 分页查询订单，customerID 非空时按客户过滤
func (r *OrderRepositoryImpl) List(ctx context.Context, customerID *int64, page, limit int) ([]*etorder.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Order{})
	if customerID != nil {
		query = query.Where("customer_id = ?", *customerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var pos []entity.Order
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&pos).Error
	if err != nil {
		return nil, 0, err
	}

	orders := make([]*etorder.Order, 0, len(pos))
	for i := range pos {
		order, err := r.toDomainModel(&pos[i])
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}
	return orders, total, nil
}

// UpdateStatus 更新订单状态
func (r *OrderRepositoryImpl) UpdateStatus(ctx context.Context, orderID int64, status etorder.OrderStatus) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errorx.ErrNotFound
	}
	return nil
}

// Delete 删除订单
func (r *OrderRepositoryImpl) Delete(ctx context.Context, orderID int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", orderID).Delete(&entity.Order{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errorx.ErrNotFound
	}
	return nil
}

// toGormModel 领域对象 → 持久化模型
func (r *OrderRepositoryImpl) toGormModel(order *etorder.Order) (*entity.Order, error) {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal order items failed: %w", err)
	}

	po := &entity.Order{
		ID:            order.ID,
		CustomerID:    order.CustomerID,
		CustomerEmail: order.CustomerEmail,
		SupplierID:    order.SupplierID,
		OrderDate:     order.OrderDate,
		Status:        string(order.Status),
		Items:         itemsJSON,
	}

	if order.BillingAddress != nil {
		addrJSON, err := json.Marshal(order.BillingAddress)
		if err != nil {
			return nil, fmt.Errorf("marshal billing address failed: %w", err)
		}
		po.BillingAddress = addrJSON
	}
	if order.DeliveryAddress != nil {
		addrJSON, err := json.Marshal(order.DeliveryAddress)
		if err != nil {
			return nil, fmt.Errorf("marshal delivery address failed: %w", err)
		}
		po.DeliveryAddress = addrJSON
	}

	return po, nil
}

// toDomainModel 持久化模型 → 领域对象
func (r *OrderRepositoryImpl) toDomainModel(po *entity.Order) (*etorder.Order, error) {
	order := &etorder.Order{
		ID:            po.ID,
		CustomerID:    po.CustomerID,
		CustomerEmail: po.CustomerEmail,
		SupplierID:    po.SupplierID,
		OrderDate:     po.OrderDate.UTC(),
		Status:        etorder.OrderStatus(po.Status),
		Items:         make([]etorder.OrderItem, 0),
		CreatedAt:     po.CreatedAt,
		UpdatedAt:     po.UpdatedAt,
	}

	if len(po.Items) > 0 {
		if err := json.Unmarshal(po.Items, &order.Items); err != nil {
			return nil, fmt.Errorf("unmarshal order items failed: %w", err)
		}
	}
	if len(po.BillingAddress) > 0 {
		var addr etorder.Address
		if err := json.Unmarshal(po.BillingAddress, &addr); err != nil {
			return nil, fmt.Errorf("unmarshal billing address failed: %w", err)
		}
		order.BillingAddress = &addr
	}
	if len(po.DeliveryAddress) > 0 {
		var addr etorder.Address
		if err := json.Unmarshal(po.DeliveryAddress, &addr); err != nil {
			return nil, fmt.Errorf("unmarshal delivery address failed: %w", err)
		}
		order.DeliveryAddress = &addr
	}

	return order, nil
}
