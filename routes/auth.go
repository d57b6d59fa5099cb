package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aboh505/BestLife/auth"
	"github.com/aboh505/BestLife/config"
	"github.com/aboh505/BestLife/middleware"
)

// SetupAuthRoutes registers the "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(db, cfg))
		authGroup.POST("/login", auth.LoginHandler(db, cfg))
		authGroup.GET("/me", middleware.RequireAuth(db, cfg.JWTSecret), auth.MeHandler())
	}
}
