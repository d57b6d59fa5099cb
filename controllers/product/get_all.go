package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aboh505/BestLife/models"
)

var sortableFields = map[string]bool{
	"created_at": true,
	"price":      true,
	"name":       true,
	"stock":      true,
}

// GetProducts lists active products with free-text search, category/brand
// filters, a price range and sorting.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		category := c.Query("category")
		brand := c.Query("brand")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}
		if !sortableFields[sortBy] {
			sortBy = "created_at"
		}

		query := db.Model(&models.Product{}).Where("active = ?", true)

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where(
				"name ILIKE ? OR brand ILIKE ? OR description ILIKE ?",
				likePattern, likePattern, likePattern,
			)
		}
		if category != "" {
			if !models.ValidCategory(models.Category(category)) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category"})
				return
			}
			query = query.Where("category = ?", category)
		}
		if brand != "" {
			query = query.Where("brand = ?", brand)
		}
		if minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid min_price"})
				return
			}
			query = query.Where("price >= ?", mp)
		}
		if maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid max_price"})
				return
			}
			query = query.Where("price <= ?", mp)
		}

		var products []models.Product
		if err := query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder)).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "count": len(products), "data": products})
	}
}

// GetBrands returns the distinct brands of active products, for the
// storefront filter sidebar.
func GetBrands(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var brands []string
		if err := db.Model(&models.Product{}).
			Where("active = ?", true).
			Distinct("brand").
			Order("brand ASC").
			Pluck("brand", &brands).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch brands"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": brands})
	}
}
