package customer

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"sop/apiserver/internal/app/domains/apimodel/response"
	"sop/apiserver/internal/app/pkg/ginx"
)

// Get 查询客户接口
// GET /api/v1/customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ginx.BadRequest(c, "invalid customer id")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), customerID)
	if err != nil {
		ginx.RespondError(c, err)
		return
	}

	ginx.Success(c, response.FromCustomerEntity(customer))
}

// List 查询客户列表接口，支持按邮箱精确查询
// GET /api/v1/customers?page=1&limit=20
// GET /api/v1/customers?email=jane@example.com
func (h *CustomerHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if email := c.Query("email"); email != "" {
		customer, err := h.customerService.GetCustomerByEmail(ctx, email)
		if err != nil {
			ginx.RespondError(c, err)
			return
		}
		ginx.Success(c, response.FromCustomerEntity(customer))
		return
	}

	page, limit := ginx.Pagination(c)
	customers, total, err := h.customerService.ListCustomers(ctx, page, limit)
	if err != nil {
		h.log.Errorf(ctx, "list customers failed: %v", err)
		ginx.InternalError(c, "internal server error")
		return
	}

	items := make([]*response.CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		items = append(items, response.FromCustomerEntity(customer))
	}
	ginx.Success(c, response.ListResponse{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
