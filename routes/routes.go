package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aboh505/BestLife/config"
	"github.com/aboh505/BestLife/mail"
)

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.Logger, sender mail.Sender) {
	// Public auth routes
	SetupAuthRoutes(r, db, cfg)

	// Public catalog browsing + admin catalog management
	SetupProductRoutes(r, db, cfg)

	// Order placement and lifecycle
	SetupOrderRoutes(r, db, cfg)

	// Admin back-office: users, dashboard, sales stats
	SetupAdminRoutes(r, db, cfg)

	// Product image uploads
	SetupUploadRoutes(r, db, cfg, logger)

	// Contact form and newsletter
	SetupContactRoutes(r, sender, cfg)
}
