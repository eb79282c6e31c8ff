package external

import (
	"github.com/gin-gonic/gin"

	"sop/apiserver/internal/app/domains/apimodel/request"
	"sop/apiserver/internal/app/domains/apimodel/response"
	"sop/apiserver/internal/app/pkg/ginx"
)

// TransformVault 转换预览接口：Vault 报文 → 内部订单
// 编码解析失败返回 400，而非静默跳过
// POST /api/v1/external/vault/transform
func (h *ExternalOrderHandler) TransformVault(c *gin.Context) {
	var req request.VaultOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	ctx := c.Request.Context()
	order, resolutions, err := h.externalService.TransformVaultOrder(ctx, &req)
	if err != nil {
		h.log.Warnf(ctx, "transform vault order failed: %v", err)
		ginx.RespondError(c, err)
		return
	}

	ginx.Success(c, response.VaultTransformResult{
		Order:       response.FromOrderEntity(order),
		Resolutions: response.FromResolutions(resolutions),
	})
}

// CreateVault 创建 Vault 订单接口：解析编码、校验后转换并落库
// POST /api/v1/external/vault/orders
func (h *ExternalOrderHandler) CreateVault(c *gin.Context) {
	var req request.VaultOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	ctx := c.Request.Context()
	order, resolutions, err := h.externalService.CreateVaultOrder(ctx, &req)
	if err != nil {
		h.log.Warnf(ctx, "create vault order failed: %v", err)
		ginx.RespondError(c, err)
		return
	}

	ginx.Created(c, response.NewVaultCreateResult(order, resolutions))
}

// ResolverStats 编码解析器计数接口
// GET /api/v1/external/stats/resolver
func (h *ExternalOrderHandler) ResolverStats(c *gin.Context) {
	stats := h.externalService.ResolverStats()
	ginx.Success(c, response.ResolverStatsResponse{
		Lookups: stats.Lookups,
		Hits:    stats.Hits,
		Misses:  stats.Misses,
	})
}
