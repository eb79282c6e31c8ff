package customer

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"sop/apiserver/internal/app/domains/apimodel/request"
	"sop/apiserver/internal/app/domains/apimodel/response"
	"sop/apiserver/internal/app/domains/entity/etcustomer"
	"sop/apiserver/internal/app/pkg/ginx"
)

// Update 更新客户接口
// PUT /api/v1/customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ginx.BadRequest(c, "invalid customer id")
		return
	}

	var req request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	customer := &etcustomer.Customer{
		ID:    customerID,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := h.customerService.UpdateCustomer(c.Request.Context(), customer); err != nil {
		ginx.RespondError(c, err)
		return
	}

	ginx.Success(c, response.FromCustomerEntity(customer))
}
