package external

import (
	"sop/apiserver/internal/app/domains/services/svexternal"
	"sop/apiserver/internal/app/pkg/logger"
)

// ExternalOrderHandler 外部订单接入 HTTP 处理器
// 每个供应商两个端点：transform 仅预览转换结果，orders 校验并落库
type ExternalOrderHandler struct {
	externalService *svexternal.ExternalOrderService
	log             logger.Logger
}

// NewExternalOrderHandler 创建外部订单处理器实例
func NewExternalOrderHandler(externalService *svexternal.ExternalOrderService, log logger.Logger) *ExternalOrderHandler {
	return &ExternalOrderHandler{
		externalService: externalService,
		log:             log,
	}
}
