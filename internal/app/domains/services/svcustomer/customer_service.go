package svcustomer

import (
	"context"
	"fmt"

	"sop/apiserver/internal/app/domains/entity/etcustomer"
	"sop/apiserver/internal/app/domains/repo/rpcustomer"
)

// CustomerService 客户服务
type CustomerService struct {
	customerRepo rpcustomer.CustomerRepository
}

// NewCustomerService 创建客户服务实例
func NewCustomerService(customerRepo rpcustomer.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomer 创建客户
func (s *CustomerService) CreateCustomer(ctx context.Context, name, email, phone string) (*etcustomer.Customer, error) {
	customer := &etcustomer.Customer{
		Name:  name,
		Email: email,
		Phone: phone,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer failed: %w", err)
	}
	return customer, nil
}

// GetCustomer 查询客户
func (s *CustomerService) GetCustomer(ctx context.Context, customerID int64) (*etcustomer.Customer, error) {
	return s.customerRepo.GetByID(ctx, customerID)
}

// GetCustomerByEmail 根据邮箱查询客户
func (s *CustomerService) GetCustomerByEmail(ctx context.Context, email string) (*etcustomer.Customer, error) {
	return s.customerRepo.GetByEmail(ctx, email)
}

// ListCustomers 分页查询客户
func (s *CustomerService) ListCustomers(ctx context.Context, page, limit int) ([]*etcustomer.Customer, int64, error) {
	return s.customerRepo.List(ctx, page, limit)
}

// UpdateCustomer 更新客户
func (s *CustomerService) UpdateCustomer(ctx context.Context, customer *etcustomer.Customer) error {
	return s.customerRepo.Update(ctx, customer)
}

// DeleteCustomer 删除客户
func (s *CustomerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	return s.customerRepo.Delete(ctx, customerID)
}
