package response

import (
	"sop/apiserver/internal/app/domains/entity/etcustomer"
	"sop/apiserver/internal/app/domains/entity/etorder"
	"sop/apiserver/internal/app/domains/entity/etproduct"
	"sop/apiserver/internal/app/domains/entity/etsupplier"
	"sop/apiserver/internal/app/domains/mapping"
)

// FromOrderEntity 从领域对象转换为订单响应 DTO，总额在转换时重新计算
func FromOrderEntity(order *etorder.Order) *OrderResponse {
	return &OrderResponse{
		ID:              order.ID,
		CustomerID:      order.CustomerID,
		CustomerEmail:   order.CustomerEmail,
		SupplierID:      order.SupplierID,
		Supplier:        etsupplier.Name(order.SupplierID),
		OrderDate:       order.OrderDate,
		Status:          string(order.Status),
		BillingAddress:  fromAddressEntity(order.BillingAddress),
		DeliveryAddress: fromAddressEntity(order.DeliveryAddress),
		Items:           fromItemsEntity(order.Items),
		TotalAmount:     order.Total(),
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

func fromAddressEntity(addr *etorder.Address) *AddressResponse {
	if addr == nil {
		return nil
	}
	return &AddressResponse{
		Street:     addr.Street,
		City:       addr.City,
		County:     addr.County,
		PostalCode: addr.PostalCode,
		Country:    addr.Country,
	}
}

func fromItemsEntity(items []etorder.OrderItem) []OrderItemResponse {
	dtos := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, OrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return dtos
}

// FromCustomerEntity 从领域对象转换为客户响应 DTO
func FromCustomerEntity(customer *etcustomer.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Email:     customer.Email,
		Phone:     customer.Phone,
		CreatedAt: customer.CreatedAt,
	}
}

// FromProductEntity 从领域对象转换为商品响应 DTO
func FromProductEntity(product *etproduct.Product) *ProductResponse {
	return &ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		SKU:         product.SKU,
		Price:       product.Price,
		ProductCode: product.ProductCode.String(),
		CreatedAt:   product.CreatedAt,
	}
}

// FromSupplierEntity 从领域对象转换为供应商响应 DTO
func FromSupplierEntity(supplier *etsupplier.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:           supplier.ID,
		Name:         supplier.Name,
		ContactEmail: supplier.ContactEmail,
	}
}

// FromResolutions 将解析结果转换为解析记录，仅保留解析成功的条目
func FromResolutions(resolutions []mapping.Resolution) []ResolutionRecord {
	records := make([]ResolutionRecord, 0, len(resolutions))
	for _, res := range resolutions {
		if !res.Resolved() {
			continue
		}
		records = append(records, ResolutionRecord{
			ProductCode: res.Code.String(),
			ProductID:   res.Product.ID,
			ProductName: res.Product.Name,
		})
	}
	return records
}

// NewSpeedyCreateResult 构造 Speedy 创建结果摘要
func NewSpeedyCreateResult(order *etorder.Order) *SpeedyCreateResult {
	return &SpeedyCreateResult{
		Success:        true,
		OrderID:        order.ID,
		OrderReference: etsupplier.OrderReference(order.SupplierID, order.ID),
		TotalAmount:    order.Total(),
		ItemCount:      len(order.Items),
		OrderDate:      order.OrderDate,
		Status:         string(order.Status),
		Supplier:       etsupplier.Name(order.SupplierID),
	}
}

// NewVaultCreateResult 构造 Vault 创建结果摘要（附解析记录）
func NewVaultCreateResult(order *etorder.Order, resolutions []mapping.Resolution) *VaultCreateResult {
	return &VaultCreateResult{
		Success:        true,
		OrderID:        order.ID,
		OrderReference: etsupplier.OrderReference(order.SupplierID, order.ID),
		TotalAmount:    order.Total(),
		ItemCount:      len(order.Items),
		OrderDate:      order.OrderDate,
		Status:         string(order.Status),
		Supplier:       etsupplier.Name(order.SupplierID),
		Resolutions:    FromResolutions(resolutions),
	}
}
