package order

import (
	"errors"

	"github.com/gin-gonic/gin"

	"sop/apiserver/internal/app/domains/apimodel/request"
	"sop/apiserver/internal/app/domains/apimodel/response"
	"sop/apiserver/internal/app/domains/entity/etorder"
	"sop/apiserver/internal/app/pkg/ginx"
)

// Create 创建内部订单接口
// POST /api/v1/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	ctx := c.Request.Context()
	order := req.ToOrderEntity()
	if err := h.orderService.CreateOrder(ctx, order); err != nil {
		if errors.Is(err, etorder.ErrMissingCustomerRef) || errors.Is(err, etorder.ErrInvalidSupplierID) {
			ginx.BadRequest(c, err.Error())
			return
		}
		h.log.Errorf(ctx, "create order failed: %v", err)
		ginx.RespondError(c, err)
		return
	}

	ginx.Created(c, response.FromOrderEntity(order))
}
