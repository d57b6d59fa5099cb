package contactController

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aboh505/BestLife/mail"
)

var emailPattern = regexp.MustCompile(`^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,})+$`)

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type NewsletterRequest struct {
	Email string `json:"email"`
}

// SendContactEmail forwards a contact-form submission to the shop inbox and
// confirms receipt to the sender.
func SendContactEmail(sender mail.Sender, adminEmail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payload"})
			return
		}
		if strings.TrimSpace(req.Name) == "" || req.Email == "" ||
			strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Message) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required"})
			return
		}
		if !emailPattern.MatchString(req.Email) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid email format"})
			return
		}

		adminBody := fmt.Sprintf(
			"New contact message from %s (%s)\n\nSubject: %s\n\nMessage:\n%s",
			req.Name, req.Email, req.Subject, req.Message,
		)
		if err := sender.Send(adminEmail, "[Contact] "+req.Subject, "", adminBody); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to send message, please try again"})
			return
		}

		userBody := fmt.Sprintf(
			"Hello %s,\n\nWe received your message about %q and will get back to you within 24-48 hours.\n\nThe BestLife team",
			req.Name, req.Subject,
		)
		if err := sender.Send(req.Email, "We received your message", "", userBody); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to send message, please try again"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message sent, we will reply soon"})
	}
}

// SubscribeNewsletter sends the welcome mail to a new subscriber.
func SubscribeNewsletter(sender mail.Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req NewsletterRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email is required"})
			return
		}
		if !emailPattern.MatchString(req.Email) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid email format"})
			return
		}

		body := "Welcome!\n\nThanks for subscribing to the BestLife newsletter. Enjoy 10% off your first order with code WELCOME10.\n\nThe BestLife team"
		if err := sender.Send(req.Email, "Welcome to BestLife!", "", body); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to subscribe, please try again"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Subscription confirmed"})
	}
}
