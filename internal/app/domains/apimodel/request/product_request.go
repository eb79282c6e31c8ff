package request

// CreateProductRequest 创建商品请求
// ProductCode 可选，缺省时由服务端生成
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required" example:"Wireless Mouse"`
	SKU         string  `json:"sku" binding:"required" example:"WM-001"`
	Price       float64 `json:"price" binding:"required" example:"29.99"`
	ProductCode string  `json:"productCode" binding:"omitempty,uuid"`
}

// UpdateProductRequest 更新商品请求
type UpdateProductRequest struct {
	Name  string  `json:"name" binding:"required"`
	SKU   string  `json:"sku" binding:"required"`
	Price float64 `json:"price" binding:"required"`
}
