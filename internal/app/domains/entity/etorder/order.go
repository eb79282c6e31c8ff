package etorder

import (
	"errors"
	"time"
)

// 错误定义
var (
	ErrInvalidSupplierID       = errors.New("invalid supplier ID")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
	ErrMissingCustomerRef      = errors.New("order must reference a customer by ID or email")
)

// Order 订单聚合根（领域对象）
// 客户引用二选一：CustomerID 与 CustomerEmail 有且仅有一个有值，
// 取决于订单来源（Speedy 用 ID，Vault 用邮箱）
type Order struct {
	ID              int64       // 订单ID，落库时由存储层分配
	CustomerID      *int64      // 客户ID（Speedy 来源）
	CustomerEmail   string      // 客户邮箱（Vault 来源）
	SupplierID      int64       // 供应商ID（来源标记）
	OrderDate       time.Time   // 下单时间（UTC）
	Status          OrderStatus // 订单状态
	BillingAddress  *Address    // 账单地址（可选）
	DeliveryAddress *Address    // 收货地址（可选）
	Items           []OrderItem // 订单明细，可为空
	CreatedAt       time.Time   // 创建时间
	UpdatedAt       time.Time   // 更新时间
}

// OrderStatus 订单状态
type OrderStatus string

const (
	OrderStatusReceived   OrderStatus = "RECEIVED"
	OrderStatusPicking    OrderStatus = "PICKING"
	OrderStatusDispatched OrderStatus = "DISPATCHED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
)

// statusRank 状态流转顺序
var statusRank = map[OrderStatus]int{
	OrderStatusReceived:   0,
	OrderStatusPicking:    1,
	OrderStatusDispatched: 2,
	OrderStatusDelivered:  3,
}

// IsValidStatus 判断是否为合法状态值
func IsValidStatus(s OrderStatus) bool {
	_, ok := statusRank[s]
	return ok
}

// Address 地址（值对象），各字段均可为空
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	County     string `json:"county"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// OrderItem 订单明细（值对象）
type OrderItem struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Total 计算订单总额：Σ 数量×单价。
// 每次读取时重新计算，不做缓存；明细为空时返回 0
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += float64(item.Quantity) * item.Price
	}
	return total
}

// Validate 业务规则校验
func (o *Order) Validate() error {
	if o.SupplierID <= 0 {
		return ErrInvalidSupplierID
	}
	hasID := o.CustomerID != nil
	hasEmail := o.CustomerEmail != ""
	if hasID == hasEmail {
		return ErrMissingCustomerRef
	}
	return nil
}

// TransitionTo 状态流转（领域行为），仅允许按顺序推进到下一个状态
func (o *Order) TransitionTo(next OrderStatus) error {
	nextRank, ok := statusRank[next]
	if !ok {
		return ErrInvalidStatusTransition
	}
	if nextRank != statusRank[o.Status]+1 {
		return ErrInvalidStatusTransition
	}
	o.Status = next
	o.UpdatedAt = time.Now()
	return nil
}
