package mapping

import (
	"sop/apiserver/internal/app/domains/apimodel/request"
	"sop/apiserver/internal/app/domains/entity/etorder"
	"sop/apiserver/internal/app/domains/entity/etsupplier"
)

// SpeedyOrder 将 Speedy 报文转换为内部订单（纯函数，无 I/O）
// 客户ID原样拷贝，邮箱置空；来源标记固定为 Speedy，状态固定为 RECEIVED
func SpeedyOrder(req *request.SpeedyOrderRequest) *etorder.Order {
	customerID := req.CustomerID
	return &etorder.Order{
		CustomerID:      &customerID,
		CustomerEmail:   "",
		SupplierID:      etsupplier.IDSpeedy,
		OrderDate:       req.OrderDate.UTC(),
		Status:          etorder.OrderStatusReceived,
		BillingAddress:  speedyAddress(req.BillingAddress),
		DeliveryAddress: speedyAddress(req.ShippingAddress),
		Items:           speedyItems(req.Items),
	}
}

// speedyAddress 逐字段换名：streetAddress→Street, region→County, postCode→PostalCode
// 地址缺省时返回 nil，不合成默认值
func speedyAddress(dto *request.SpeedyAddress) *etorder.Address {
	if dto == nil {
		return nil
	}
	return &etorder.Address{
		Street:     dto.StreetAddress,
		City:       dto.City,
		County:     dto.Region,
		PostalCode: dto.PostCode,
		Country:    dto.Country,
	}
}

// speedyItems 明细 1:1 换名；源为 nil 或空时返回空切片，nil 元素跳过
func speedyItems(dtos []*request.SpeedyOrderItem) []etorder.OrderItem {
	items := make([]etorder.OrderItem, 0, len(dtos))
	for _, dto := range dtos {
		if dto == nil {
			continue
		}
		items = append(items, etorder.OrderItem{
			ProductID: dto.ProductID,
			Quantity:  dto.Qty,
			Price:     dto.UnitPrice,
		})
	}
	return items
}
