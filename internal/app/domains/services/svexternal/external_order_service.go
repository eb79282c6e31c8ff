package svexternal

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"sop/apiserver/internal/app/domains/apimodel/request"
	"sop/apiserver/internal/app/domains/entity/etorder"
	"sop/apiserver/internal/app/domains/entity/etproduct"
	"sop/apiserver/internal/app/domains/mapping"
	"sop/apiserver/internal/app/domains/repo/rpcustomer"
	"sop/apiserver/internal/app/domains/repo/rporder"
	"sop/apiserver/internal/app/domains/repo/rpproduct"
	"sop/apiserver/internal/app/pkg/errorx"
	"sop/apiserver/internal/app/pkg/logger"
)

// ExternalOrderService 外部订单接入服务
// 负责两条供应商管线的编排：校验引用 → 报文转换 → 落库。
// 转换预览（Transform）路径不校验客户/商品存在性，也不落库
type ExternalOrderService struct {
	customerRepo rpcustomer.CustomerRepository
	productRepo  rpproduct.ProductRepository
	orderRepo    rporder.OrderRepository
	resolver     *mapping.Resolver
	log          logger.Logger
}

// NewExternalOrderService 创建外部订单服务实例
func NewExternalOrderService(
	customerRepo rpcustomer.CustomerRepository,
	productRepo rpproduct.ProductRepository,
	orderRepo rporder.OrderRepository,
	resolver *mapping.Resolver,
	log logger.Logger,
) *ExternalOrderService {
	return &ExternalOrderService{
		customerRepo: customerRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		resolver:     resolver,
		log:          log,
	}
}

// TransformSpeedyOrder 转换预览：Speedy 报文 → 内部订单，不校验不落库
func (s *ExternalOrderService) TransformSpeedyOrder(req *request.SpeedyOrderRequest) *etorder.Order {
	return mapping.SpeedyOrder(req)
}

// TransformVaultOrder 转换预览：Vault 报文 → 内部订单，不落库。
// 编码解析是产出正确明细的前提，因此仍然执行；
// 与转换器内部的静默跳过不同，这里任一编码解析失败都作为客户端错误返回
func (s *ExternalOrderService) TransformVaultOrder(ctx context.Context, req *request.VaultOrderRequest) (*etorder.Order, []mapping.Resolution, error) {
	resolved, resolutions, err := s.resolveItems(ctx, req.Items)
	if err != nil {
		return nil, nil, err
	}

	order := mapping.VaultOrderWith(req, resolved)
	return order, resolutions, nil
}

// CreateSpeedyOrder 创建 Speedy 订单（完整业务流程）
// 1. 校验客户存在
// 2. 逐项校验商品存在
// 3. 报文转换
// 4. 落库
// 校验失败时不落任何数据
func (s *ExternalOrderService) CreateSpeedyOrder(ctx context.Context, req *request.SpeedyOrderRequest) (*etorder.Order, error) {
	exists, err := s.customerRepo.Exists(ctx, req.CustomerID)
	if err != nil {
		return nil, errorx.NewPersistenceError(fmt.Errorf("check customer exists failed: %w", err))
	}
	if !exists {
		return nil, errorx.NewReferenceNotFound(errorx.ReferenceCustomer, strconv.FormatInt(req.CustomerID, 10))
	}

	for _, item := range req.Items {
		exists, err := s.productRepo.Exists(ctx, item.ProductID)
		if err != nil {
			return nil, errorx.NewPersistenceError(fmt.Errorf("check product exists failed: %w", err))
		}
		if !exists {
			return nil, errorx.NewReferenceNotFound(errorx.ReferenceProduct, strconv.FormatInt(item.ProductID, 10))
		}
	}

	order := mapping.SpeedyOrder(req)
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, errorx.NewPersistenceError(fmt.Errorf("save speedy order failed: %w", err))
	}

	s.log.Infof(ctx, "speedy order created: id=%d customer=%d items=%d", order.ID, req.CustomerID, len(order.Items))
	return order, nil
}

// CreateVaultOrder 创建 Vault 订单（完整业务流程）
// 1. 一次性解析全部商品编码（结果透传给转换器，不重复解析）
// 2. 任一编码未解析 → 引用校验失败，不落库
// 3. 报文转换 + 落库
func (s *ExternalOrderService) CreateVaultOrder(ctx context.Context, req *request.VaultOrderRequest) (*etorder.Order, []mapping.Resolution, error) {
	resolved, resolutions, err := s.resolveItems(ctx, req.Items)
	if err != nil {
		return nil, nil, err
	}

	order := mapping.VaultOrderWith(req, resolved)
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, nil, errorx.NewPersistenceError(fmt.Errorf("save vault order failed: %w", err))
	}

	s.log.Infof(ctx, "vault order created: id=%d customer=%s items=%d", order.ID, req.CustomerEmail, len(order.Items))
	return order, resolutions, nil
}

// ResolverStats 返回编码解析器计数快照
func (s *ExternalOrderService) ResolverStats() mapping.ResolverStats {
	return s.resolver.Stats()
}

// resolveItems 解析全部明细编码，任一未命中即返回引用校验失败
func (s *ExternalOrderService) resolveItems(ctx context.Context, items []*request.VaultOrderItem) (map[uuid.UUID]*etproduct.Product, []mapping.Resolution, error) {
	codes, err := mapping.ItemCodes(items)
	if err != nil {
		return nil, nil, err
	}

	resolutions := s.resolver.ResolveAll(ctx, codes)
	resolved := make(map[uuid.UUID]*etproduct.Product, len(resolutions))
	for _, res := range resolutions {
		if res.Err != nil {
			return nil, nil, errorx.NewPersistenceError(fmt.Errorf("resolve product code %s failed: %w", res.Code, res.Err))
		}
		if !res.Resolved() {
			return nil, nil, errorx.NewReferenceNotFound(errorx.ReferenceProductCode, res.Code.String())
		}
		resolved[res.Code] = res.Product
	}
	return resolved, resolutions, nil
}
