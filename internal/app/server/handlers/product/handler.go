package product

import (
	"sop/apiserver/internal/app/domains/services/svproduct"
	"sop/apiserver/internal/app/pkg/logger"
)

// ProductHandler 商品 HTTP 处理器
type ProductHandler struct {
	productService *svproduct.ProductService
	log            logger.Logger
}

// NewProductHandler 创建商品处理器实例
func NewProductHandler(productService *svproduct.ProductService, log logger.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		log:            log,
	}
}
