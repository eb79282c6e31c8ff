package mapping

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"sop/apiserver/internal/app/domains/entity/etproduct"
	"sop/apiserver/internal/app/pkg/errorx"
)

// fakeProductRepo 商品仓储桩，按编码映射返回；delay>0 时模拟慢查询
type fakeProductRepo struct {
	mu        sync.Mutex
	byCode    map[uuid.UUID]*etproduct.Product
	delay     time.Duration
	codeCalls []uuid.UUID
}

func newFakeProductRepo(products ...*etproduct.Product) *fakeProductRepo {
	byCode := make(map[uuid.UUID]*etproduct.Product)
	for _, p := range products {
		byCode[p.ProductCode] = p
	}
	return &fakeProductRepo{byCode: byCode}
}

func (f *fakeProductRepo) Create(ctx context.Context, product *etproduct.Product) error {
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, productID int64) (*etproduct.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.byCode {
		if p.ID == productID {
			return p, nil
		}
	}
	return nil, errorx.ErrNotFound
}

func (f *fakeProductRepo) GetByCode(ctx context.Context, code uuid.UUID) (*etproduct.Product, error) {
	f.mu.Lock()
	f.codeCalls = append(f.codeCalls, code)
	delay := f.delay
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.byCode[code]; ok {
		return p, nil
	}
	return nil, errorx.ErrNotFound
}

func (f *fakeProductRepo) List(ctx context.Context, page, limit int) ([]*etproduct.Product, int64, error) {
	return nil, 0, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *etproduct.Product) error {
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, productID int64) error {
	return nil
}

func (f *fakeProductRepo) Exists(ctx context.Context, productID int64) (bool, error) {
	_, err := f.GetByID(ctx, productID)
	if err == errorx.ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (f *fakeProductRepo) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.codeCalls)
}

func TestResolver_ResolveHitAndMiss(t *testing.T) {
	codeA := uuid.MustParse("7f9c24e5-2b31-4bc0-bb7a-80a1b6e0c9d4")
	repo := newFakeProductRepo(&etproduct.Product{ID: 10, Name: "Wireless Mouse", ProductCode: codeA})
	resolver := NewResolver(repo, nil, 0)

	product, ok, err := resolver.Resolve(context.Background(), codeA)
	if err != nil || !ok {
		t.Fatalf("resolve known code: ok=%v err=%v", ok, err)
	}
	if product.ID != 10 {
		t.Fatalf("product id = %d, want 10", product.ID)
	}

	_, ok, err = resolver.Resolve(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("resolve unknown code: err = %v", err)
	}
	if ok {
		t.Fatal("resolve unknown code: ok = true, want false")
	}

	stats := resolver.Stats()
	if stats.Lookups != 2 || stats.Hits != 1 || stats.Misses != 1 {
		t.Fatalf("stats = %+v, want lookups=2 hits=1 misses=1", stats)
	}
}

func TestResolver_TimeoutTreatedAsMiss(t *testing.T) {
	codeA := uuid.MustParse("7f9c24e5-2b31-4bc0-bb7a-80a1b6e0c9d4")
	repo := newFakeProductRepo(&etproduct.Product{ID: 10, ProductCode: codeA})
	repo.delay = 200 * time.Millisecond

	resolver := NewResolver(repo, nil, 10*time.Millisecond)
	_, ok, err := resolver.Resolve(context.Background(), codeA)
	if err != nil {
		t.Fatalf("timed-out lookup: err = %v, want nil", err)
	}
	if ok {
		t.Fatal("timed-out lookup: ok = true, want false")
	}
}

func TestResolver_ResolveAll_PreservesInputOrder(t *testing.T) {
	codeA := uuid.MustParse("7f9c24e5-2b31-4bc0-bb7a-80a1b6e0c9d4")
	codeB := uuid.MustParse("3c1a8fd2-9e47-4f6b-a2d8-5b0c7e91f3a6")
	codeC := uuid.MustParse("b54d0e87-6a2f-4c19-9d3e-1f8a4b627c05")
	repo := newFakeProductRepo(
		&etproduct.Product{ID: 1, ProductCode: codeA},
		&etproduct.Product{ID: 2, ProductCode: codeB},
		&etproduct.Product{ID: 3, ProductCode: codeC},
	)
	resolver := NewResolver(repo, nil, 0)

	codes := []uuid.UUID{codeC, codeA, codeB}
	results := resolver.ResolveAll(context.Background(), codes)

	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	wantIDs := []int64{3, 1, 2}
	for i, res := range results {
		if res.Code != codes[i] {
			t.Fatalf("result %d code = %s, want %s", i, res.Code, codes[i])
		}
		if !res.Resolved() || res.Product.ID != wantIDs[i] {
			t.Fatalf("result %d = %+v, want product id %d", i, res, wantIDs[i])
		}
	}
}

func TestResolver_ResolveAll_DeduplicatesLookups(t *testing.T) {
	codeA := uuid.MustParse("7f9c24e5-2b31-4bc0-bb7a-80a1b6e0c9d4")
	repo := newFakeProductRepo(&etproduct.Product{ID: 1, ProductCode: codeA})
	resolver := NewResolver(repo, nil, 0)

	results := resolver.ResolveAll(context.Background(), []uuid.UUID{codeA, codeA, codeA})
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	for i, res := range results {
		if !res.Resolved() {
			t.Fatalf("result %d unresolved", i)
		}
	}
	if repo.callCount() != 1 {
		t.Fatalf("repo lookups = %d, want 1 (deduplicated)", repo.callCount())
	}
}

func TestResolver_ResolveAll_OneMissDoesNotBlockOthers(t *testing.T) {
	codeA := uuid.MustParse("7f9c24e5-2b31-4bc0-bb7a-80a1b6e0c9d4")
	repo := newFakeProductRepo(&etproduct.Product{ID: 1, ProductCode: codeA})
	resolver := NewResolver(repo, nil, 0)

	unknown := uuid.New()
	results := resolver.ResolveAll(context.Background(), []uuid.UUID{unknown, codeA})

	if results[0].Resolved() {
		t.Fatal("unknown code resolved, want miss")
	}
	if !results[1].Resolved() || results[1].Product.ID != 1 {
		t.Fatalf("known code result = %+v, want product id 1", results[1])
	}
}

// fakeCache 进程内缓存桩
type fakeCache struct {
	mu    sync.Mutex
	store map[uuid.UUID]*etproduct.Product
	gets  int
	sets  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[uuid.UUID]*etproduct.Product)}
}

func (c *fakeCache) Get(ctx context.Context, code uuid.UUID) (*etproduct.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	p, ok := c.store[code]
	return p, ok
}

func (c *fakeCache) Set(ctx context.Context, code uuid.UUID, product *etproduct.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.store[code] = product
}

func TestResolver_CacheReadThrough(t *testing.T) {
	codeA := uuid.MustParse("7f9c24e5-2b31-4bc0-bb7a-80a1b6e0c9d4")
	repo := newFakeProductRepo(&etproduct.Product{ID: 1, ProductCode: codeA})
	cache := newFakeCache()
	resolver := NewResolver(repo, cache, 0)

	// 第一次走仓储并回填缓存
	if _, ok, _ := resolver.Resolve(context.Background(), codeA); !ok {
		t.Fatal("first resolve missed")
	}
	// 第二次命中缓存，不再查仓储
	if _, ok, _ := resolver.Resolve(context.Background(), codeA); !ok {
		t.Fatal("second resolve missed")
	}
	if repo.callCount() != 1 {
		t.Fatalf("repo lookups = %d, want 1", repo.callCount())
	}
	if cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", cache.sets)
	}
}
