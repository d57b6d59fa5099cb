package userControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aboh505/BestLife/models"
)

type UpdateUserRequest struct {
	LastName  *string `json:"last_name"`
	FirstName *string `json:"first_name"`
	Email     *string `json:"email"`
	Role      *string `json:"role"`
	Active    *bool   `json:"active"`
}

// GetAllUsers lists every account. Admin only.
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Order("created_at DESC").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch users"})
			return
		}
		views := make([]models.UserView, 0, len(users))
		for i := range users {
			views = append(views, users[i].View())
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "count": len(views), "data": views})
	}
}

// GetUserByID fetches one account. Admin only.
func GetUserByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": user.View()})
	}
}

// UpdateUser applies a partial update to an account. Admin only.
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch user"})
			return
		}

		var req UpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payload"})
			return
		}

		if req.LastName != nil {
			user.LastName = strings.TrimSpace(*req.LastName)
		}
		if req.FirstName != nil {
			user.FirstName = strings.TrimSpace(*req.FirstName)
		}
		if req.Email != nil {
			email := strings.ToLower(strings.TrimSpace(*req.Email))
			var existing models.User
			if err := db.First(&existing, "email = ? AND id <> ?", email, user.ID).Error; err == nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email is already in use"})
				return
			}
			user.Email = email
		}
		if req.Role != nil {
			role := models.Role(*req.Role)
			if role != models.RoleClient && role != models.RoleAdmin {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Role must be client or admin"})
				return
			}
			user.Role = role
		}
		if req.Active != nil {
			user.Active = *req.Active
		}

		if err := db.Save(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User updated", "data": user.View()})
	}
}

// DeleteUser removes an account. Admin only.
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch user"})
			return
		}
		if err := db.Delete(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted"})
	}
}

// ToggleUserStatus flips the active flag, locking or unlocking the account.
// Admin only.
func ToggleUserStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch user"})
			return
		}

		user.Active = !user.Active
		if err := db.Model(&user).Update("active", user.Active).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User status updated", "data": user.View()})
	}
}
