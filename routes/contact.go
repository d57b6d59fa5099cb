package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/aboh505/BestLife/config"
	contactController "github.com/aboh505/BestLife/controllers/contact"
	"github.com/aboh505/BestLife/mail"
)

// SetupContactRoutes registers the public contact endpoints.
func SetupContactRoutes(r *gin.Engine, sender mail.Sender, cfg *config.Config) {
	contact := r.Group("/contact")
	{
		contact.POST("", contactController.SendContactEmail(sender, cfg.AdminEmail))
		contact.POST("/newsletter", contactController.SubscribeNewsletter(sender))
	}
}
