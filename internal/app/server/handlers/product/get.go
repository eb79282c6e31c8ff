package product

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sop/apiserver/internal/app/domains/apimodel/response"
	"sop/apiserver/internal/app/pkg/ginx"
)

// Get 查询商品接口
// GET /api/v1/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ginx.BadRequest(c, "invalid product id")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		ginx.RespondError(c, err)
		return
	}

	ginx.Success(c, response.FromProductEntity(product))
}

// GetByCode 根据 GUID 编码查询商品接口
// GET /api/v1/products/code/:code
func (h *ProductHandler) GetByCode(c *gin.Context) {
	code, err := uuid.Parse(c.Param("code"))
	if err != nil {
		ginx.BadRequest(c, "invalid product code")
		return
	}

	product, err := h.productService.GetProductByCode(c.Request.Context(), code)
	if err != nil {
		ginx.RespondError(c, err)
		return
	}

	ginx.Success(c, response.FromProductEntity(product))
}

// List 查询商品列表接口
// GET /api/v1/products?page=1&limit=20
func (h *ProductHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	page, limit := ginx.Pagination(c)

	products, total, err := h.productService.ListProducts(ctx, page, limit)
	if err != nil {
		h.log.Errorf(ctx, "list products failed: %v", err)
		ginx.InternalError(c, "internal server error")
		return
	}

	items := make([]*response.ProductResponse, 0, len(products))
	for _, product := range products {
		items = append(items, response.FromProductEntity(product))
	}
	ginx.Success(c, response.ListResponse{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
