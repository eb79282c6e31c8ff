package etproduct

import (
	"time"

	"github.com/google/uuid"
)

// Product 商品（领域对象）
// ProductCode 是商品的 GUID 别名，Vault 供应商用它代替数字ID引用商品
type Product struct {
	ID          int64     // 商品ID
	Name        string    // 商品名称
	SKU         string    // SKU
	Price       float64   // 标准单价
	ProductCode uuid.UUID // 商品编码（GUID 别名）
	CreatedAt   time.Time // 创建时间
	UpdatedAt   time.Time // 更新时间
}
