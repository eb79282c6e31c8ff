package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Customer 客户持久化模型
type Customer struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"`
	Email     string    `gorm:"column:email;type:varchar(255);uniqueIndex:uk_email;not null"`
	Phone     string    `gorm:"column:phone;type:varchar(32)"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (Customer) TableName() string {
	return "customers"
}

// Product 商品持久化模型
// product_code 是 Vault 供应商使用的 GUID 别名，与数字ID一一对应
type Product struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;type:varchar(255);not null"`
	SKU         string    `gorm:"column:sku;type:varchar(64);not null"`
	Price       float64   `gorm:"column:price;not null"`
	ProductCode string    `gorm:"column:product_code;type:varchar(36);uniqueIndex:uk_product_code;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// Supplier 供应商持久化模型
type Supplier struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name;type:varchar(255);not null"`
	ContactEmail string    `gorm:"column:contact_email;type:varchar(255)"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
}

// TableName 指定表名
func (Supplier) TableName() string {
	return "suppliers"
}

// Order 订单持久化模型
// 地址与明细以 JSON 列存储，客户引用二选一（customer_id / customer_email）
type Order struct {
	ID              int64          `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID      *int64         `gorm:"column:customer_id;index:idx_customer"`
	CustomerEmail   string         `gorm:"column:customer_email;type:varchar(255);index:idx_customer_email"`
	SupplierID      int64          `gorm:"column:supplier_id;not null;index:idx_supplier"`
	OrderDate       time.Time      `gorm:"column:order_date;not null"`
	Status          string         `gorm:"column:status;type:varchar(16);not null;default:'RECEIVED'"`
	BillingAddress  datatypes.JSON `gorm:"column:billing_address;type:json"`
	DeliveryAddress datatypes.JSON `gorm:"column:delivery_address;type:json"`
	Items           datatypes.JSON `gorm:"column:items;type:json;not null"`
	CreatedAt       time.Time      `gorm:"column:created_at;not null;index:idx_created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
