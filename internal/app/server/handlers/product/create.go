package product

import (
	"github.com/gin-gonic/gin"

	"sop/apiserver/internal/app/domains/apimodel/request"
	"sop/apiserver/internal/app/domains/apimodel/response"
	"sop/apiserver/internal/app/pkg/ginx"
)

// Create 创建商品接口
// POST /api/v1/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	ctx := c.Request.Context()
	product, err := h.productService.CreateProduct(ctx, req.Name, req.SKU, req.Price, req.ProductCode)
	if err != nil {
		h.log.Errorf(ctx, "create product failed: %v", err)
		ginx.RespondError(c, err)
		return
	}

	ginx.Created(c, response.FromProductEntity(product))
}
