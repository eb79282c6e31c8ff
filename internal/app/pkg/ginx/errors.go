package ginx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sop/apiserver/internal/app/pkg/errorx"
)

// RespondError 将业务错误映射为 HTTP 响应
// 引用校验失败 → 400（客户端错误）；存储层未命中 → 404；
// 唯一约束冲突 → 409；存储层异常 → 500（服务端错误）。
// 服务端错误不向客户端回显底层错误内容
func RespondError(c *gin.Context, err error) {
	if refErr, ok := errorx.AsReferenceNotFound(err); ok {
		BadRequest(c, refErr.Error())
		return
	}
	if errors.Is(err, errorx.ErrNotFound) {
		NotFound(c, "record not found")
		return
	}
	if errors.Is(err, errorx.ErrConflict) {
		Error(c, http.StatusConflict, errorx.ErrConflict.Error())
		return
	}
	InternalError(c, "internal server error")
}
