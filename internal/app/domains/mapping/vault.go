package mapping

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sop/apiserver/internal/app/domains/apimodel/request"
	"sop/apiserver/internal/app/domains/entity/etorder"
	"sop/apiserver/internal/app/domains/entity/etproduct"
	"sop/apiserver/internal/app/domains/entity/etsupplier"
)

// ItemCodes 解析 Vault 明细中的商品编码，保持输入顺序（nil 元素跳过）
// 编码格式非法视为报文不合法，立即失败
func ItemCodes(items []*request.VaultOrderItem) ([]uuid.UUID, error) {
	codes := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		code, err := uuid.Parse(item.ProductCode)
		if err != nil {
			return nil, fmt.Errorf("invalid product code %q: %w", item.ProductCode, err)
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// VaultOrder 将 Vault 报文转换为内部订单
// 逐项解析商品编码（一次查询，结果复用）；解析不到的明细直接跳过，
// 不报错也不占位。需要报错的调用方必须在转换前自行校验
func VaultOrder(ctx context.Context, resolver *Resolver, req *request.VaultOrderRequest) (*etorder.Order, error) {
	codes, err := ItemCodes(req.Items)
	if err != nil {
		return nil, err
	}

	resolved := make(map[uuid.UUID]*etproduct.Product, len(codes))
	for _, res := range resolver.ResolveAll(ctx, codes) {
		if res.Err != nil {
			return nil, fmt.Errorf("resolve product code %s: %w", res.Code, res.Err)
		}
		if res.Resolved() {
			resolved[res.Code] = res.Product
		}
	}

	return VaultOrderWith(req, resolved), nil
}

// VaultOrderWith 使用已解析的编码映射构造订单，不再发起查询
// 供校验路径复用解析结果，避免同一编码解析两次
func VaultOrderWith(req *request.VaultOrderRequest, resolved map[uuid.UUID]*etproduct.Product) *etorder.Order {
	order := &etorder.Order{
		CustomerID:    nil,
		CustomerEmail: req.CustomerEmail,
		SupplierID:    etsupplier.IDVault,
		OrderDate:     time.Unix(req.OrderTimestamp, 0).UTC(),
		Status:        etorder.OrderStatusReceived,
		Items:         vaultItems(req.Items, resolved),
	}

	// deliveryDetails 整体缺省时，两个地址均为空
	if dd := req.DeliveryDetails; dd != nil {
		order.BillingAddress = vaultAddress(dd.Billing)
		order.DeliveryAddress = vaultAddress(dd.Shipping)
	}

	return order
}

// vaultAddress 逐字段换名：addressLine→Street, stateProvince→County,
// zipPostal→PostalCode, countryCode→Country
func vaultAddress(dto *request.VaultLocation) *etorder.Address {
	if dto == nil {
		return nil
	}
	return &etorder.Address{
		Street:     dto.AddressLine,
		City:       dto.CityName,
		County:     dto.StateProvince,
		PostalCode: dto.ZipPostal,
		Country:    dto.CountryCode,
	}
}

// vaultItems 按输入顺序生成明细；nil 元素与映射中不存在的编码直接跳过
func vaultItems(dtos []*request.VaultOrderItem, resolved map[uuid.UUID]*etproduct.Product) []etorder.OrderItem {
	items := make([]etorder.OrderItem, 0, len(dtos))
	for _, dto := range dtos {
		if dto == nil {
			continue
		}
		code, err := uuid.Parse(dto.ProductCode)
		if err != nil {
			continue
		}
		product, ok := resolved[code]
		if !ok || product == nil {
			continue
		}
		items = append(items, etorder.OrderItem{
			ProductID: product.ID,
			Quantity:  dto.QuantityOrdered,
			Price:     dto.PricePerUnit,
		})
	}
	return items
}
