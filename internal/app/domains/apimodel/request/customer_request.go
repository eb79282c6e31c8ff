package request

// CreateCustomerRequest 创建客户请求
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required" example:"Jane Smith"`
	Email string `json:"email" binding:"required,email" example:"jane@example.com"`
	Phone string `json:"phone" example:"+44-20-7946-0100"`
}

// UpdateCustomerRequest 更新客户请求
type UpdateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}
