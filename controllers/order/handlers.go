package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aboh505/BestLife/middleware"
	"github.com/aboh505/BestLife/models"
)

// GetMyOrdersHandler lists the authenticated user's orders, newest first.
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", user.ID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "count": len(orders), "data": orders})
	}
}

// GetOrderByIDHandler fetches a single order. Only the owner or an admin
// may see it.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
			return
		}
		orderID := c.Param("orderID")

		var order models.Order
		if err := db.
			Preload("Items").
			Preload("User").
			First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch order"})
			return
		}

		if order.UserID != user.ID && user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Not authorized to view this order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
	}
}

// GetAllOrdersHandler lists every order, newest first. Admin only.
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Preload("User").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "count": len(orders), "data": orders})
	}
}

// UpdateOrderStatusHandler moves an order through its lifecycle. Transitions
// are forward-only: preparing → shipped → delivered, cancelled allowed from
// any non-terminal state.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Status is required"})
			return
		}

		newStatus := models.OrderStatus(req.Status)
		switch newStatus {
		case models.OrderStatusPreparing, models.OrderStatusShipped,
			models.OrderStatusDelivered, models.OrderStatusCancelled:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order status"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch order"})
			return
		}

		if !order.Status.CanTransition(newStatus) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Illegal status transition from " + string(order.Status) + " to " + string(newStatus),
			})
			return
		}

		if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update order status"})
			return
		}
		order.Status = newStatus

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Order status updated",
			"data":    order,
		})
	}
}
