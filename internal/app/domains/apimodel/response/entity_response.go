package response

import "time"

// CustomerResponse 客户响应（DTO）
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductResponse 商品响应（DTO）
type ProductResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	SKU         string    `json:"sku"`
	Price       float64   `json:"price"`
	ProductCode string    `json:"product_code"`
	CreatedAt   time.Time `json:"created_at"`
}

// SupplierResponse 供应商响应（DTO）
type SupplierResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email,omitempty"`
}

// ListResponse 分页列表响应（DTO）
type ListResponse struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}
