package ginx

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination 解析分页参数，page 从 1 开始，limit 上限 100，默认 1/20
func Pagination(c *gin.Context) (page, limit int) {
	page = 1
	limit = 20

	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
