package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sop/apiserver/internal/app/config"
	"sop/apiserver/internal/app/domains/mapping"
	"sop/apiserver/internal/app/domains/repo/rpcustomer"
	"sop/apiserver/internal/app/domains/repo/rporder"
	"sop/apiserver/internal/app/domains/repo/rpproduct"
	"sop/apiserver/internal/app/domains/repo/rpsupplier"
	"sop/apiserver/internal/app/domains/services/svcustomer"
	"sop/apiserver/internal/app/domains/services/svexternal"
	"sop/apiserver/internal/app/domains/services/svorder"
	"sop/apiserver/internal/app/domains/services/svproduct"
	"sop/apiserver/internal/app/domains/services/svsupplier"
	"sop/apiserver/internal/app/infra/persistence/mysql"
	"sop/apiserver/internal/app/infra/persistence/redis"
	"sop/apiserver/internal/app/pkg/logger"
	"sop/apiserver/internal/app/server/handlers/customer"
	"sop/apiserver/internal/app/server/handlers/external"
	"sop/apiserver/internal/app/server/handlers/order"
	"sop/apiserver/internal/app/server/handlers/product"
	"sop/apiserver/internal/app/server/handlers/supplier"
	"sop/apiserver/internal/app/server/routers"
)

func main() {
	// 1. 加载配置
	cfg, err := config.LoadDefault()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	// 2. 初始化日志
	appLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer appLogger.Sync()

	// 3. 初始化存储
	db, err := mysql.Open(cfg.MySQL.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to mysql: %v", err)
	}
	if err := mysql.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	if err := mysql.Seed(db); err != nil {
		log.Fatalf("Failed to seed data: %v", err)
	}

	// 4. 商品编码缓存（可选）
	var codeCache mapping.ProductCodeCache
	if cfg.Redis.Addr != "" {
		cache, err := redis.NewProductCodeCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.CacheTTL())
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer cache.Close()
		codeCache = cache
	}

	// 5. 组装仓储、服务、处理器
	customerRepo := rpcustomer.NewCustomerRepository(db)
	productRepo := rpproduct.NewProductRepository(db)
	supplierRepo := rpsupplier.NewSupplierRepository(db)
	orderRepo := rporder.NewOrderRepository(db)

	resolver := mapping.NewResolver(productRepo, codeCache, cfg.LookupTimeout())

	customerService := svcustomer.NewCustomerService(customerRepo)
	productService := svproduct.NewProductService(productRepo)
	supplierService := svsupplier.NewSupplierService(supplierRepo)
	orderService := svorder.NewOrderService(orderRepo)
	externalService := svexternal.NewExternalOrderService(customerRepo, productRepo, orderRepo, resolver, appLogger)

	engine := routers.SetupRoutes(
		customer.NewCustomerHandler(customerService, appLogger),
		product.NewProductHandler(productService, appLogger),
		supplier.NewSupplierHandler(supplierService, appLogger),
		order.NewOrderHandler(orderService, appLogger),
		external.NewExternalOrderHandler(externalService, appLogger),
		appLogger,
	)

	// 6. 启动 HTTP Server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: engine,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	// 7. 优雅停机处理
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrChan:
		log.Fatalf("HTTP server failed: %v", err)
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down...", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}
