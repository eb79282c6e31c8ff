package etsupplier

import (
	"fmt"
	"time"
)

// 内置供应商ID，作为订单来源标记写入 Order.SupplierID
const (
	IDSpeedy int64 = 1
	IDVault  int64 = 2
)

// Supplier 供应商（领域对象）
type Supplier struct {
	ID           int64     // 供应商ID
	Name         string    // 供应商名称
	ContactEmail string    // 联系邮箱
	CreatedAt    time.Time // 创建时间
}

// Tag 返回供应商的订单号前缀标记
func Tag(supplierID int64) string {
	switch supplierID {
	case IDSpeedy:
		return "SPEEDY"
	case IDVault:
		return "VAULT"
	default:
		return "UNKNOWN"
	}
}

// Name 返回供应商展示名称
func Name(supplierID int64) string {
	switch supplierID {
	case IDSpeedy:
		return "Speedy"
	case IDVault:
		return "Vault"
	default:
		return "Unknown"
	}
}

// OrderReference 生成对外订单号，如 SPEEDY-123 / VAULT-124
func OrderReference(supplierID, orderID int64) string {
	return fmt.Sprintf("%s-%d", Tag(supplierID), orderID)
}
