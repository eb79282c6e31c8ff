package external

import (
	"github.com/gin-gonic/gin"

	"sop/apiserver/internal/app/domains/apimodel/request"
	"sop/apiserver/internal/app/domains/apimodel/response"
	"sop/apiserver/internal/app/pkg/ginx"
)

// TransformSpeedy 转换预览接口：Speedy 报文 → 内部订单
// POST /api/v1/external/speedy/transform
func (h *ExternalOrderHandler) TransformSpeedy(c *gin.Context) {
	var req request.SpeedyOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	order := h.externalService.TransformSpeedyOrder(&req)
	ginx.Success(c, response.SpeedyTransformResult{
		Order: response.FromOrderEntity(order),
	})
}

// CreateSpeedy 创建 Speedy 订单接口：校验引用后转换并落库
// POST /api/v1/external/speedy/orders
func (h *ExternalOrderHandler) CreateSpeedy(c *gin.Context) {
	var req request.SpeedyOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	ctx := c.Request.Context()
	order, err := h.externalService.CreateSpeedyOrder(ctx, &req)
	if err != nil {
		h.log.Warnf(ctx, "create speedy order failed: %v", err)
		ginx.RespondError(c, err)
		return
	}

	ginx.Created(c, response.NewSpeedyCreateResult(order))
}
