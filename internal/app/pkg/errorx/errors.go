package errorx

import (
	"errors"
	"fmt"
)

// ErrNotFound 存储层未命中时的统一哨兵错误
var ErrNotFound = errors.New("record not found")

// ErrConflict 唯一约束冲突（如邮箱、商品编码重复）
var ErrConflict = errors.New("record already exists")

// ReferenceKind 引用校验失败的类别
type ReferenceKind string

const (
	ReferenceCustomer    ReferenceKind = "customer"
	ReferenceProduct     ReferenceKind = "product"
	ReferenceProductCode ReferenceKind = "product_code"
)

// ReferenceNotFoundError 引用校验失败（客户端错误）
// 携带类别和具体标识，调用方据此修正请求
type ReferenceNotFoundError struct {
	Kind       ReferenceKind
	Identifier string
}

// Error 实现 error 接口
func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Identifier)
}

// NewReferenceNotFound 创建引用校验失败错误
func NewReferenceNotFound(kind ReferenceKind, identifier string) *ReferenceNotFoundError {
	return &ReferenceNotFoundError{
		Kind:       kind,
		Identifier: identifier,
	}
}

// AsReferenceNotFound 判断错误链中是否包含引用校验失败
func AsReferenceNotFound(err error) (*ReferenceNotFoundError, bool) {
	var refErr *ReferenceNotFoundError
	if errors.As(err, &refErr) {
		return refErr, true
	}
	return nil, false
}

// PersistenceError 存储层异常（服务端错误），与引用校验失败严格区分
type PersistenceError struct {
	Cause error
}

// Error 实现 error 接口
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed: %v", e.Cause)
}

// Unwrap 支持 errors.Is / errors.As
func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

// NewPersistenceError 包装存储层异常
func NewPersistenceError(cause error) *PersistenceError {
	return &PersistenceError{Cause: cause}
}

// AsPersistenceError 判断错误链中是否包含存储层异常
func AsPersistenceError(err error) (*PersistenceError, bool) {
	var pErr *PersistenceError
	if errors.As(err, &pErr) {
		return pErr, true
	}
	return nil, false
}
