package routers

import (
	"github.com/gin-gonic/gin"

	"sop/apiserver/internal/app/pkg/logger"
	"sop/apiserver/internal/app/server/handlers/customer"
	"sop/apiserver/internal/app/server/handlers/external"
	"sop/apiserver/internal/app/server/handlers/order"
	"sop/apiserver/internal/app/server/handlers/product"
	"sop/apiserver/internal/app/server/handlers/supplier"
	"sop/apiserver/internal/app/server/middlewares"
)

// SetupRoutes 配置所有路由，使用 Route Group 分类
func SetupRoutes(
	customerHandler *customer.CustomerHandler,
	productHandler *product.ProductHandler,
	supplierHandler *supplier.SupplierHandler,
	orderHandler *order.OrderHandler,
	externalHandler *external.ExternalOrderHandler,
	log logger.Logger,
) *gin.Engine {
	r := gin.New()

	r.Use(middlewares.Recovery(log))
	r.Use(middlewares.CORS())
	r.Use(middlewares.RequestLogger(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "sop-apiserver",
			"message": "Service is running",
		})
	})

	v1 := r.Group("/api/v1")
	{
		customers := v1.Group("/customers")
		{
			customers.POST("", customerHandler.Create)
			customers.GET("", customerHandler.List)
			customers.GET("/:id", customerHandler.Get)
			customers.PUT("/:id", customerHandler.Update)
			customers.DELETE("/:id", customerHandler.Delete)
		}

		products := v1.Group("/products")
		{
			products.POST("", productHandler.Create)
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
			products.GET("/code/:code", productHandler.GetByCode)
			products.PUT("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)
		}

		suppliers := v1.Group("/suppliers")
		{
			suppliers.POST("", supplierHandler.Create)
			suppliers.GET("", supplierHandler.List)
			suppliers.GET("/:id", supplierHandler.Get)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", orderHandler.Create)
			orders.GET("", orderHandler.List)
			orders.GET("/:id", orderHandler.Get)
			orders.PATCH("/:id/status", orderHandler.UpdateStatus)
			orders.DELETE("/:id", orderHandler.Delete)
		}

		ext := v1.Group("/external")
		{
			ext.POST("/speedy/transform", externalHandler.TransformSpeedy)
			ext.POST("/speedy/orders", externalHandler.CreateSpeedy)
			ext.POST("/vault/transform", externalHandler.TransformVault)
			ext.POST("/vault/orders", externalHandler.CreateVault)
			ext.GET("/stats/resolver", externalHandler.ResolverStats)
		}
	}

	return r
}
