package order

import (
	"sop/apiserver/internal/app/domains/services/svorder"
	"sop/apiserver/internal/app/pkg/logger"
)

// OrderHandler 内部订单 HTTP 处理器
type OrderHandler struct {
	orderService *svorder.OrderService
	log          logger.Logger
}

// NewOrderHandler 创建订单处理器实例
func NewOrderHandler(orderService *svorder.OrderService, log logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}
