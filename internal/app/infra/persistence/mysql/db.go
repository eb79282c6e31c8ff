package mysql

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"sop/apiserver/internal/app/infra/persistence/entity"
)

// Open 连接 MySQL 并返回 GORM 实例
// TranslateError 开启后，唯一约束冲突统一转为 gorm.ErrDuplicatedKey
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// AutoMigrate 同步表结构
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Customer{},
		&entity.Product{},
		&entity.Supplier{},
		&entity.Order{},
	)
}

// Seed 写入初始数据（幂等，已存在时跳过）
// 供应商 1=Speedy、2=Vault 是外部订单接入依赖的固定行
func Seed(db *gorm.DB) error {
	suppliers := []entity.Supplier{
		{ID: 1, Name: "Speedy", ContactEmail: "ops@speedy.example.com"},
		{ID: 2, Name: "Vault", ContactEmail: "ops@vault.example.com"},
	}
	for i := range suppliers {
		var count int64
		if err := db.Model(&entity.Supplier{}).Where("id = ?", suppliers[i].ID).Count(&count).Error; err != nil {
			return fmt.Errorf("seed suppliers failed: %w", err)
		}
		if count == 0 {
			if err := db.Create(&suppliers[i]).Error; err != nil {
				return fmt.Errorf("seed suppliers failed: %w", err)
			}
		}
	}

	var productCount int64
	if err := db.Model(&entity.Product{}).Count(&productCount).Error; err != nil {
		return fmt.Errorf("seed products failed: %w", err)
	}
	if productCount == 0 {
		products := []entity.Product{
			{Name: "Wireless Mouse", SKU: "WM-001", Price: 29.99, ProductCode: uuid.MustParse("7f9c24e5-2b31-4bc0-bb7a-80a1b6e0c9d4").String()},
			{Name: "Mechanical Keyboard", SKU: "MK-002", Price: 89.50, ProductCode: uuid.MustParse("3c1a8fd2-9e47-4f6b-a2d8-5b0c7e91f3a6").String()},
			{Name: "USB-C Hub", SKU: "UH-003", Price: 45.00, ProductCode: uuid.MustParse("b54d0e87-6a2f-4c19-9d3e-1f8a4b627c05").String()},
		}
		if err := db.Create(&products).Error; err != nil {
			return fmt.Errorf("seed products failed: %w", err)
		}
	}

	var customerCount int64
	if err := db.Model(&entity.Customer{}).Count(&customerCount).Error; err != nil {
		return fmt.Errorf("seed customers failed: %w", err)
	}
	if customerCount == 0 {
		customers := []entity.Customer{
			{Name: "Jane Smith", Email: "jane@example.com", Phone: "+44-20-7946-0100"},
			{Name: "Tom Chen", Email: "tom@example.com", Phone: "+44-20-7946-0200"},
		}
		if err := db.Create(&customers).Error; err != nil {
			return fmt.Errorf("seed customers failed: %w", err)
		}
	}

	return nil
}
