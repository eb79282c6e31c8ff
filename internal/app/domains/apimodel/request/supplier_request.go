package request

// CreateSupplierRequest 创建供应商请求
type CreateSupplierRequest struct {
	Name         string `json:"name" binding:"required" example:"Speedy"`
	ContactEmail string `json:"contactEmail" binding:"omitempty,email" example:"ops@speedy.example.com"`
}
