package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aboh505/BestLife/config"
	productcontroller "github.com/aboh505/BestLife/controllers/product"
	"github.com/aboh505/BestLife/middleware"
)

// SetupProductRoutes registers the "/products/*" endpoints. Reads are
// public; writes require an authenticated admin.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		// registered before /:id so "brands" is not captured as an id
		products.GET("/brands", productcontroller.GetBrands(db))
		products.GET("/:id", productcontroller.GetProductByID(db))

		adminOnly := products.Group("")
		adminOnly.Use(middleware.RequireAuth(db, cfg.JWTSecret), middleware.RequireAdmin)
		{
			adminOnly.POST("", productcontroller.CreateProduct(db))
			adminOnly.PUT("/:id", productcontroller.UpdateProduct(db))
			adminOnly.DELETE("/:id", productcontroller.DeleteProduct(db))
		}
	}
}
