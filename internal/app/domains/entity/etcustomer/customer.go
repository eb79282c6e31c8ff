package etcustomer

import "time"

// Customer 客户（领域对象）
type Customer struct {
	ID        int64     // 客户ID
	Name      string    // 客户名称
	Email     string    // 邮箱（唯一）
	Phone     string    // 联系电话
	CreatedAt time.Time // 创建时间
	UpdatedAt time.Time // 更新时间
}
