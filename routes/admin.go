package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aboh505/BestLife/config"
	adminController "github.com/aboh505/BestLife/controllers/admin"
	userControllers "github.com/aboh505/BestLife/controllers/user"
	"github.com/aboh505/BestLife/middleware"
)

// SetupAdminRoutes registers the back-office endpoints: user management
// under "/users" and reporting under "/admin". All admin-gated.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	users := r.Group("/users")
	users.Use(middleware.RequireAuth(db, cfg.JWTSecret), middleware.RequireAdmin)
	{
		users.GET("", userControllers.GetAllUsers(db))
		users.GET("/:id", userControllers.GetUserByID(db))
		users.PUT("/:id", userControllers.UpdateUser(db))
		users.DELETE("/:id", userControllers.DeleteUser(db))
		users.PUT("/:id/toggle-status", userControllers.ToggleUserStatus(db))
	}

	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuth(db, cfg.JWTSecret), middleware.RequireAdmin)
	{
		admin.GET("/dashboard", adminController.GetDashboardStats(db))
		admin.GET("/sales-stats", adminController.GetSalesStats(db))
	}
}
