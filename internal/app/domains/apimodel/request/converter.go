package request

import "sop/apiserver/internal/app/domains/entity/etorder"

// ToOrderEntity 将内部订单请求转换为领域对象
func (r *CreateOrderRequest) ToOrderEntity() *etorder.Order {
	return &etorder.Order{
		CustomerID:      r.CustomerID,
		CustomerEmail:   r.CustomerEmail,
		SupplierID:      r.SupplierID,
		OrderDate:       r.OrderDate.UTC(),
		Status:          etorder.OrderStatusReceived,
		BillingAddress:  toAddressEntity(r.BillingAddress),
		DeliveryAddress: toAddressEntity(r.DeliveryAddress),
		Items:           toItemsEntity(r.Items),
	}
}

func toAddressEntity(dto *OrderAddress) *etorder.Address {
	if dto == nil {
		return nil
	}
	return &etorder.Address{
		Street:     dto.Street,
		City:       dto.City,
		County:     dto.County,
		PostalCode: dto.PostalCode,
		Country:    dto.Country,
	}
}

func toItemsEntity(dtos []*OrderItem) []etorder.OrderItem {
	items := make([]etorder.OrderItem, 0, len(dtos))
	for _, dto := range dtos {
		if dto == nil {
			continue
		}
		items = append(items, etorder.OrderItem{
			ProductID: dto.ProductID,
			Quantity:  dto.Quantity,
			Price:     dto.Price,
		})
	}
	return items
}
