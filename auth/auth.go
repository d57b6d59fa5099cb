package auth

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/aboh505/BestLife/config"
	"github.com/aboh505/BestLife/middleware"
	"github.com/aboh505/BestLife/models"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,})+$`)

type RegisterRequest struct {
	LastName  string `json:"last_name" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterHandler creates a client account and opens a session.
// The role is always forced to client; admins are promoted out of band.
func RegisterHandler(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "last_name, first_name, email and password are required"})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		if !emailPattern.MatchString(email) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid email format"})
			return
		}
		if len(req.Password) < minPasswordLength {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Password must be at least 6 characters"})
			return
		}

		var existing models.User
		if err := db.First(&existing, "email = ?", email).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email is already in use"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), cfg.HashCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create account"})
			return
		}

		user := models.User{
			ID:           uuid.NewString(),
			LastName:     strings.TrimSpace(req.LastName),
			FirstName:    strings.TrimSpace(req.FirstName),
			Email:        email,
			PasswordHash: string(hash),
			Role:         models.RoleClient,
			Active:       true,
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create account"})
			return
		}

		token, err := IssueJWT(cfg.JWTSecret, cfg.JWTExpiry, user.ID, user.Email, string(user.Role))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to issue token"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Registration successful",
			"data":    user.View(),
			"token":   token,
		})
	}
}

// LoginHandler verifies credentials and opens a session. Unknown email and
// wrong password produce the same response so the two cannot be told apart.
func LoginHandler(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and password are required"})
			return
		}
		email := strings.ToLower(strings.TrimSpace(req.Email))

		var user models.User
		if err := db.First(&user, "email = ?", email).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Incorrect email or password"})
			return
		}
		if !user.Active {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Account is disabled"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Incorrect email or password"})
			return
		}

		token, err := IssueJWT(cfg.JWTSecret, cfg.JWTExpiry, user.ID, user.Email, string(user.Role))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Login successful",
			"data":    user.View(),
			"token":   token,
		})
	}
}

// MeHandler returns the user resolved by the auth middleware.
func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": user.View()})
	}
}
