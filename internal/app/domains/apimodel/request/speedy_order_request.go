package request

import "time"

// SpeedyOrderRequest Speedy 供应商订单报文
// 客户以数字ID引用，时间为 ISO-8601 字符串，商品以数字ID引用
type SpeedyOrderRequest struct {
	CustomerID      int64              `json:"customerId" binding:"required" example:"42"`
	OrderDate       time.Time          `json:"orderDate" binding:"required" example:"2024-01-15T10:50:00Z"`
	BillingAddress  *SpeedyAddress     `json:"billingAddress"`
	ShippingAddress *SpeedyAddress     `json:"shippingAddress"`
	Items           []*SpeedyOrderItem `json:"items" binding:"omitempty,dive,required"`
}

// SpeedyAddress Speedy 地址对象
type SpeedyAddress struct {
	StreetAddress string `json:"streetAddress" example:"123 Billing St"`
	City          string `json:"city" example:"London"`
	Region        string `json:"region" example:"Greater London"`
	PostCode      string `json:"postCode" example:"SW1A 1AA"`
	Country       string `json:"country" example:"United Kingdom"`
}

// SpeedyOrderItem Speedy 订单明细
type SpeedyOrderItem struct {
	ProductID int64   `json:"productId" binding:"required" example:"1"`
	Qty       int     `json:"qty" binding:"required" example:"5"`
	UnitPrice float64 `json:"unitPrice" binding:"required" example:"29.99"`
}
