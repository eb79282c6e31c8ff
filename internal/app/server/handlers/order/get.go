package order

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"sop/apiserver/internal/app/domains/apimodel/response"
	"sop/apiserver/internal/app/pkg/ginx"
)

// Get 查询订单接口
// GET /api/v1/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ginx.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		ginx.RespondError(c, err)
		return
	}

	ginx.Success(c, response.FromOrderEntity(order))
}

// List 查询订单列表接口，支持按客户过滤
// GET /api/v1/orders?customer_id=42&page=1&limit=20
func (h *OrderHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var customerID *int64
	if idStr := c.Query("customer_id"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			ginx.BadRequest(c, "invalid customer_id")
			return
		}
		customerID = &id
	}

	page, limit := ginx.Pagination(c)
	orders, total, err := h.orderService.ListOrders(ctx, customerID, page, limit)
	if err != nil {
		h.log.Errorf(ctx, "list orders failed: %v", err)
		ginx.InternalError(c, "internal server error")
		return
	}

	items := make([]*response.OrderResponse, 0, len(orders))
	for _, order := range orders {
		items = append(items, response.FromOrderEntity(order))
	}
	ginx.Success(c, response.ListResponse{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
