package response

import "time"

// ResolutionRecord 单条商品编码解析记录
type ResolutionRecord struct {
	ProductCode string `json:"product_code"`
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
}

// SpeedyTransformResult Speedy 转换预览结果
type SpeedyTransformResult struct {
	Order *OrderResponse `json:"order"`
}

// VaultTransformResult Vault 转换预览结果，附带编码解析记录
type VaultTransformResult struct {
	Order       *OrderResponse     `json:"order"`
	Resolutions []ResolutionRecord `json:"resolutions"`
}

// SpeedyCreateResult Speedy 订单创建结果
type SpeedyCreateResult struct {
	Success        bool      `json:"success"`
	OrderID        int64     `json:"order_id"`
	OrderReference string    `json:"order_reference"`
	TotalAmount    float64   `json:"total_amount"`
	ItemCount      int       `json:"item_count"`
	OrderDate      time.Time `json:"order_date"`
	Status         string    `json:"status"`
	Supplier       string    `json:"supplier"`
}

// VaultCreateResult Vault 订单创建结果，附带编码解析记录
type VaultCreateResult struct {
	Success        bool               `json:"success"`
	OrderID        int64              `json:"order_id"`
	OrderReference string             `json:"order_reference"`
	TotalAmount    float64            `json:"total_amount"`
	ItemCount      int                `json:"item_count"`
	OrderDate      time.Time          `json:"order_date"`
	Status         string             `json:"status"`
	Supplier       string             `json:"supplier"`
	Resolutions    []ResolutionRecord `json:"resolutions"`
}

// ResolverStatsResponse 解析器计数响应
type ResolverStatsResponse struct {
	Lookups int64 `json:"lookups"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}
