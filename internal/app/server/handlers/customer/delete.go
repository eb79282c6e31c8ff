package customer

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"sop/apiserver/internal/app/pkg/ginx"
)

// Delete 删除客户接口
// DELETE /api/v1/customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ginx.BadRequest(c, "invalid customer id")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), customerID); err != nil {
		ginx.RespondError(c, err)
		return
	}

	ginx.Success(c, gin.H{"deleted": customerID})
}
