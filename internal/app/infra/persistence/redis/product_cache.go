package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"sop/apiserver/internal/app/domains/entity/etproduct"
)

// ProductCodeCache 商品编码读穿缓存（Redis）
// 缓存读写失败一律按未命中处理，不影响主流程
type ProductCodeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProductCodeCache 创建缓存实例并检查连通性
func NewProductCodeCache(addr, password string, db int, ttl time.Duration) (*ProductCodeCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &ProductCodeCache{
		client: client,
		ttl:    ttl,
	}, nil
}

// cacheKey 生成缓存键
func (c *ProductCodeCache) cacheKey(code uuid.UUID) string {
	return "product_code:" + code.String()
}

// Get 查缓存，未命中或反序列化失败返回 (nil, false)
func (c *ProductCodeCache) Get(ctx context.Context, code uuid.UUID) (*etproduct.Product, bool) {
	data, err := c.client.Get(ctx, c.cacheKey(code)).Bytes()
	if err != nil {
		return nil, false
	}

	var product etproduct.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, false
	}
	return &product, true
}

// Set 写缓存，失败静默
func (c *ProductCodeCache) Set(ctx context.Context, code uuid.UUID, product *etproduct.Product) {
	data, err := json.Marshal(product)
	if err != nil {
		return
	}
	c.client.Set(ctx, c.cacheKey(code), data, c.ttl)
}

// Close 关闭连接
func (c *ProductCodeCache) Close() error {
	return c.client.Close()
}
