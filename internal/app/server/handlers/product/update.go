package product

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"sop/apiserver/internal/app/domains/apimodel/request"
	"sop/apiserver/internal/app/pkg/ginx"
)

// Update 更新商品接口（编码不可变更）
// PUT /api/v1/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ginx.BadRequest(c, "invalid product id")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	ctx := c.Request.Context()
	product, err := h.productService.GetProduct(ctx, productID)
	if err != nil {
		ginx.RespondError(c, err)
		return
	}

	product.Name = req.Name
	product.SKU = req.SKU
	product.Price = req.Price
	if err := h.productService.UpdateProduct(ctx, product); err != nil {
		ginx.RespondError(c, err)
		return
	}

	ginx.Success(c, gin.H{"updated": productID})
}

// Delete 删除商品接口
// DELETE /api/v1/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ginx.BadRequest(c, "invalid product id")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), productID); err != nil {
		ginx.RespondError(c, err)
		return
	}

	ginx.Success(c, gin.H{"deleted": productID})
}
