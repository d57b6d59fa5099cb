package adminController

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aboh505/BestLife/models"
)

const lowStockThreshold = 10

type StatusCount struct {
	Status models.OrderStatus `json:"status"`
	Count  int64              `json:"count"`
}

type CategoryCount struct {
	Category models.Category `json:"category"`
	Count    int64           `json:"count"`
}

type DaySales struct {
	Day        string  `json:"day"`
	TotalSales float64 `json:"total_sales"`
	OrderCount int64   `json:"order_count"`
}

// GetDashboardStats aggregates the back-office landing page numbers:
// entity totals, revenue (cancelled orders excluded), the five most recent
// orders, products running low on stock and group-bys per status/category.
func GetDashboardStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalUsers, totalProducts, totalOrders int64
		if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to compute stats"})
			return
		}
		if err := db.Model(&models.Product{}).Count(&totalProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to compute stats"})
			return
		}
		if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to compute stats"})
			return
		}

		var totalRevenue float64
		if err := db.Model(&models.Order{}).
			Where("status <> ?", models.OrderStatusCancelled).
			Select("COALESCE(SUM(total), 0)").
			Scan(&totalRevenue).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to compute stats"})
			return
		}

		var recentOrders []models.Order
		if err := db.Preload("Items").Preload("User").
			Order("created_at DESC").Limit(5).
			Find(&recentOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to compute stats"})
			return
		}

		var lowStock []models.Product
		if err := db.Where("stock < ?", lowStockThreshold).
			Order("stock ASC").Limit(5).
			Find(&lowStock).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to compute stats"})
			return
		}

		var ordersByStatus []StatusCount
		if err := db.Model(&models.Order{}).
			Select("status, COUNT(*) AS count").
			Group("status").
			Scan(&ordersByStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to compute stats"})
			return
		}

		var productsByCategory []CategoryCount
		if err := db.Model(&models.Product{}).
			Select("category, COUNT(*) AS count").
			Group("category").
			Scan(&productsByCategory).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to compute stats"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"totals": gin.H{
					"users":    totalUsers,
					"products": totalProducts,
					"orders":   totalOrders,
					"revenue":  totalRevenue,
				},
				"recent_orders":        recentOrders,
				"low_stock_products":   lowStock,
				"orders_by_status":     ordersByStatus,
				"products_by_category": productsByCategory,
			},
		})
	}
}

// GetSalesStats returns per-day sales totals and order counts, optionally
// bounded by start_date/end_date (YYYY-MM-DD). Cancelled orders excluded.
func GetSalesStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Order{}).
			Where("status <> ?", models.OrderStatusCancelled)

		if startStr := c.Query("start_date"); startStr != "" {
			start, err := time.Parse("2006-01-02", startStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid start_date"})
				return
			}
			query = query.Where("created_at >= ?", start)
		}
		if endStr := c.Query("end_date"); endStr != "" {
			end, err := time.Parse("2006-01-02", endStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid end_date"})
				return
			}
			query = query.Where("created_at <= ?", end.Add(24*time.Hour))
		}

		var sales []DaySales
		if err := query.
			Select("to_char(created_at, 'YYYY-MM-DD') AS day, SUM(total) AS total_sales, COUNT(*) AS order_count").
			Group("day").
			Order("day ASC").
			Scan(&sales).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to compute sales stats"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": sales})
	}
}
