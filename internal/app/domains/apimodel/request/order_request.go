package request

import "time"

// CreateOrderRequest 创建内部订单请求（不经过供应商报文转换）
// CustomerID 与 CustomerEmail 二选一
type CreateOrderRequest struct {
	CustomerID      *int64        `json:"customer_id"`
	CustomerEmail   string        `json:"customer_email" binding:"omitempty,email"`
	SupplierID      int64         `json:"supplier_id" binding:"required"`
	OrderDate       time.Time     `json:"order_date" binding:"required"`
	BillingAddress  *OrderAddress `json:"billing_address"`
	DeliveryAddress *OrderAddress `json:"delivery_address"`
	Items           []*OrderItem  `json:"items" binding:"omitempty,dive,required"`
}

// OrderAddress 内部订单地址
type OrderAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	County     string `json:"county"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// OrderItem 内部订单明细
type OrderItem struct {
	ProductID int64   `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	Price     float64 `json:"price" binding:"required"`
}

// UpdateOrderStatusRequest 更新订单状态请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required" example:"PICKING"`
}
