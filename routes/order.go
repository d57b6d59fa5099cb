package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aboh505/BestLife/config"
	orderControllers "github.com/aboh505/BestLife/controllers/order"
	"github.com/aboh505/BestLife/middleware"
)

// SetupOrderRoutes registers the "/orders/*" endpoints. Everything requires
// authentication; the full listing and status updates require admin.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	orders := r.Group("/orders")
	orders.Use(middleware.RequireAuth(db, cfg.JWTSecret))
	{
		orders.POST("", orderControllers.PlaceOrderHandler(db))
		orders.GET("/myorders", orderControllers.GetMyOrdersHandler(db))
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))

		adminOnly := orders.Group("")
		adminOnly.Use(middleware.RequireAdmin)
		{
			adminOnly.GET("", orderControllers.GetAllOrdersHandler(db))
			adminOnly.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
		}
	}
}
