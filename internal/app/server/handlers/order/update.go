package order

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"sop/apiserver/internal/app/domains/apimodel/request"
	"sop/apiserver/internal/app/domains/apimodel/response"
	"sop/apiserver/internal/app/domains/entity/etorder"
	"sop/apiserver/internal/app/pkg/ginx"
)

// UpdateStatus 更新订单状态接口，仅允许按顺序推进
// PATCH /api/v1/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ginx.BadRequest(c, "invalid order id")
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	next := etorder.OrderStatus(req.Status)
	if !etorder.IsValidStatus(next) {
		ginx.BadRequest(c, "unknown order status: "+req.Status)
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), orderID, next)
	if err != nil {
		if errors.Is(err, etorder.ErrInvalidStatusTransition) {
			ginx.BadRequest(c, err.Error())
			return
		}
		ginx.RespondError(c, err)
		return
	}

	ginx.Success(c, response.FromOrderEntity(order))
}

// Delete 删除订单接口
// DELETE /api/v1/orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ginx.BadRequest(c, "invalid order id")
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), orderID); err != nil {
		ginx.RespondError(c, err)
		return
	}

	ginx.Success(c, gin.H{"deleted": orderID})
}
