package customer

import (
	"sop/apiserver/internal/app/domains/services/svcustomer"
	"sop/apiserver/internal/app/pkg/logger"
)

// CustomerHandler 客户 HTTP 处理器
type CustomerHandler struct {
	customerService *svcustomer.CustomerService
	log             logger.Logger
}

// NewCustomerHandler 创建客户处理器实例
func NewCustomerHandler(customerService *svcustomer.CustomerService, log logger.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		log:             log,
	}
}
