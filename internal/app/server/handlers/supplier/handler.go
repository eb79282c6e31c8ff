package supplier

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"sop/apiserver/internal/app/domains/apimodel/request"
	"sop/apiserver/internal/app/domains/apimodel/response"
	"sop/apiserver/internal/app/domains/services/svsupplier"
	"sop/apiserver/internal/app/pkg/ginx"
	"sop/apiserver/internal/app/pkg/logger"
)

// SupplierHandler 供应商 HTTP 处理器
type SupplierHandler struct {
	supplierService *svsupplier.SupplierService
	log             logger.Logger
}

// NewSupplierHandler 创建供应商处理器实例
func NewSupplierHandler(supplierService *svsupplier.SupplierService, log logger.Logger) *SupplierHandler {
	return &SupplierHandler{
		supplierService: supplierService,
		log:             log,
	}
}

// Create 创建供应商接口
// POST /api/v1/suppliers
func (h *SupplierHandler) Create(c *gin.Context) {
	var req request.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	ctx := c.Request.Context()
	supplier, err := h.supplierService.CreateSupplier(ctx, req.Name, req.ContactEmail)
	if err != nil {
		h.log.Errorf(ctx, "create supplier failed: %v", err)
		ginx.InternalError(c, "internal server error")
		return
	}

	ginx.Created(c, response.FromSupplierEntity(supplier))
}

// Get 查询供应商接口
// GET /api/v1/suppliers/:id
func (h *SupplierHandler) Get(c *gin.Context) {
	supplierID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ginx.BadRequest(c, "invalid supplier id")
		return
	}

	supplier, err := h.supplierService.GetSupplier(c.Request.Context(), supplierID)
	if err != nil {
		ginx.RespondError(c, err)
		return
	}

	ginx.Success(c, response.FromSupplierEntity(supplier))
}

// List 查询供应商列表接口
// GET /api/v1/suppliers
func (h *SupplierHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	suppliers, err := h.supplierService.ListSuppliers(ctx)
	if err != nil {
		h.log.Errorf(ctx, "list suppliers failed: %v", err)
		ginx.InternalError(c, "internal server error")
		return
	}

	items := make([]*response.SupplierResponse, 0, len(suppliers))
	for _, supplier := range suppliers {
		items = append(items, response.FromSupplierEntity(supplier))
	}
	ginx.Success(c, items)
}
