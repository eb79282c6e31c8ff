package mapping

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"sop/apiserver/internal/app/domains/entity/etproduct"
	"sop/apiserver/internal/app/domains/repo/rpproduct"
	"sop/apiserver/internal/app/pkg/errorx"
)

// DefaultLookupTimeout 单次编码查询的默认超时
const DefaultLookupTimeout = 2 * time.Second

// ProductCodeCache 商品编码缓存接口（可选，如 Redis 读穿缓存）
type ProductCodeCache interface {
	// Get 查缓存，未命中返回 (nil, false)
	Get(ctx context.Context, code uuid.UUID) (*etproduct.Product, bool)
	// Set 写缓存，失败静默
	Set(ctx context.Context, code uuid.UUID, product *etproduct.Product)
}

// Resolution 单个编码的解析结果
type Resolution struct {
	Code    uuid.UUID          // 输入编码
	Product *etproduct.Product // 解析出的商品，nil 表示未解析
	Err     error              // 基础设施错误（区别于未命中）
}

// Resolved 是否解析成功
func (r Resolution) Resolved() bool {
	return r.Product != nil
}

// ResolverStats 解析器计数
type ResolverStats struct {
	Lookups int64 `json:"lookups"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

// Resolver 商品编码解析器
// 将 Vault 的 GUID 商品编码解析为内部商品；未命中与单次查询超时同等对待
type Resolver struct {
	products rpproduct.ProductRepository
	cache    ProductCodeCache // 可为 nil
	timeout  time.Duration

	lookups atomic.Int64
	hits    atomic.Int64
	misses  atomic.Int64
}

// NewResolver 创建解析器实例，timeout<=0 时使用默认超时
func NewResolver(products rpproduct.ProductRepository, cache ProductCodeCache, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	return &Resolver{
		products: products,
		cache:    cache,
		timeout:  timeout,
	}
}

// Resolve 解析单个编码
// 返回 (product, true, nil) 命中；(nil, false, nil) 未命中或超时；
// 其余基础设施错误原样返回
func (r *Resolver) Resolve(ctx context.Context, code uuid.UUID) (*etproduct.Product, bool, error) {
	r.lookups.Inc()

	if r.cache != nil {
		if product, ok := r.cache.Get(ctx, code); ok {
			r.hits.Inc()
			return product, true, nil
		}
	}

	lookupCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	product, err := r.products.GetByCode(lookupCtx, code)
	if err != nil {
		// 未命中与超时同等对待
		if errors.Is(err, errorx.ErrNotFound) || errors.Is(err, context.DeadlineExceeded) {
			r.misses.Inc()
			return nil, false, nil
		}
		return nil, false, err
	}

	r.hits.Inc()
	if r.cache != nil {
		r.cache.Set(ctx, code, product)
	}
	return product, true, nil
}

// ResolveAll 并发解析一组编码（fan-out/fan-in）
// 重复编码只查询一次；结果按输入顺序返回；单个编码失败不阻塞其余编码
func (r *Resolver) ResolveAll(ctx context.Context, codes []uuid.UUID) []Resolution {
	// 去重，保留首次出现顺序
	distinct := make([]uuid.UUID, 0, len(codes))
	seen := make(map[uuid.UUID]int, len(codes))
	for _, code := range codes {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = len(distinct)
		distinct = append(distinct, code)
	}

	resolved := make([]Resolution, len(distinct))
	var wg sync.WaitGroup
	for i, code := range distinct {
		wg.Add(1)
		go func(i int, code uuid.UUID) {
			defer wg.Done()
			product, _, err := r.Resolve(ctx, code)
			resolved[i] = Resolution{Code: code, Product: product, Err: err}
		}(i, code)
	}
	wg.Wait()

	// 按输入顺序回填
	results := make([]Resolution, len(codes))
	for i, code := range codes {
		results[i] = resolved[seen[code]]
	}
	return results
}

// Stats 返回解析器计数快照
func (r *Resolver) Stats() ResolverStats {
	return ResolverStats{
		Lookups: r.lookups.Load(),
		Hits:    r.hits.Load(),
		Misses:  r.misses.Load(),
	}
}
