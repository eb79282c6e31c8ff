package request

// VaultOrderRequest Vault 供应商订单报文
// 客户以邮箱引用，时间为 Unix 秒，商品以 GUID 编码引用
type VaultOrderRequest struct {
	CustomerEmail   string                `json:"customerEmail" binding:"required,email" example:"buyer@example.com"`
	OrderTimestamp  int64                 `json:"orderTimestamp" binding:"required" example:"1705315800"`
	DeliveryDetails *VaultDeliveryDetails `json:"deliveryDetails"`
	Items           []*VaultOrderItem     `json:"items" binding:"omitempty,dive,required"`
}

// VaultDeliveryDetails Vault 配送信息，Billing/Shipping 各自可选
type VaultDeliveryDetails struct {
	Billing  *VaultLocation `json:"billing"`
	Shipping *VaultLocation `json:"shipping"`
}

// VaultLocation Vault 地址对象
type VaultLocation struct {
	AddressLine   string `json:"addressLine" example:"456 Delivery Ave"`
	CityName      string `json:"cityName" example:"Manchester"`
	StateProvince string `json:"stateProvince" example:"Greater Manchester"`
	ZipPostal     string `json:"zipPostal" example:"M1 1AE"`
	CountryCode   string `json:"countryCode" example:"GB"`
}

// VaultOrderItem Vault 订单明细，ProductCode 为商品 GUID 编码
type VaultOrderItem struct {
	ProductCode     string  `json:"productCode" binding:"required,uuid" example:"7f9c24e5-2b31-4bc0-bb7a-80a1b6e0c9d4"`
	QuantityOrdered int     `json:"quantityOrdered" binding:"required" example:"3"`
	PricePerUnit    float64 `json:"pricePerUnit" binding:"required" example:"15.50"`
}
