package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aboh505/BestLife/config"
	uploadController "github.com/aboh505/BestLife/controllers/upload"
	"github.com/aboh505/BestLife/middleware"
)

// SetupUploadRoutes registers the admin-only image upload endpoints.
func SetupUploadRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {
	upload := r.Group("/upload")
	upload.Use(middleware.RequireAuth(db, cfg.JWTSecret), middleware.RequireAdmin)
	{
		upload.POST("/product", uploadController.UploadProductImage(cfg.UploadDir, logger))
		upload.DELETE("/product/:filename", uploadController.DeleteProductImage(cfg.UploadDir, logger))
	}
}
