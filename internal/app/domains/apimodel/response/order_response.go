package response

import "time"

// OrderResponse 订单响应（DTO）
type OrderResponse struct {
	ID              int64                `json:"id"`
	CustomerID      *int64               `json:"customer_id,omitempty"`
	CustomerEmail   string               `json:"customer_email,omitempty"`
	SupplierID      int64                `json:"supplier_id"`
	Supplier        string               `json:"supplier"`
	OrderDate       time.Time            `json:"order_date"`
	Status          string               `json:"status"`
	BillingAddress  *AddressResponse     `json:"billing_address,omitempty"`
	DeliveryAddress *AddressResponse     `json:"delivery_address,omitempty"`
	Items           []OrderItemResponse  `json:"items"`
	TotalAmount     float64              `json:"total_amount"`
	CreatedAt       time.Time            `json:"created_at,omitempty"`
	UpdatedAt       time.Time            `json:"updated_at,omitempty"`
}

// AddressResponse 地址响应（DTO）
type AddressResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	County     string `json:"county"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// OrderItemResponse 订单明细响应（DTO）
type OrderItemResponse struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
