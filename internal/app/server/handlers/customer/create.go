package customer

import (
	"github.com/gin-gonic/gin"

	"sop/apiserver/internal/app/domains/apimodel/request"
	"sop/apiserver/internal/app/domains/apimodel/response"
	"sop/apiserver/internal/app/pkg/ginx"
)

// Create 创建客户接口
// POST /api/v1/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	ctx := c.Request.Context()
	customer, err := h.customerService.CreateCustomer(ctx, req.Name, req.Email, req.Phone)
	if err != nil {
		h.log.Errorf(ctx, "create customer failed: %v", err)
		ginx.RespondError(c, err)
		return
	}

	ginx.Created(c, response.FromCustomerEntity(customer))
}
