package productcontroller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aboh505/BestLife/models"
)

// UpdateProduct applies a partial update. Absent fields keep their value.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch product"})
			return
		}

		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product payload"})
			return
		}

		if v := strings.TrimSpace(req.Name); v != "" {
			product.Name = v
		}
		if v := strings.TrimSpace(req.Brand); v != "" {
			product.Brand = v
		}
		if req.Category != "" {
			if !models.ValidCategory(models.Category(req.Category)) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category"})
				return
			}
			product.Category = models.Category(req.Category)
		}
		if req.Price != nil {
			if *req.Price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Price must be non-negative"})
				return
			}
			product.Price = *req.Price
		}
		if req.OldPrice != nil {
			if *req.OldPrice < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Old price must be non-negative"})
				return
			}
			product.OldPrice = *req.OldPrice
		}
		if v := strings.TrimSpace(req.Description); v != "" {
			product.Description = v
		}
		if req.LongDescription != "" {
			product.LongDescription = req.LongDescription
		}
		if req.Stock != nil {
			if *req.Stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Stock must be non-negative"})
				return
			}
			product.Stock = *req.Stock
		}
		if req.Image != "" {
			product.Image = req.Image
		}
		if req.Features != nil {
			product.Features = req.Features
		}
		if req.Active != nil {
			product.Active = *req.Active
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product updated", "data": product})
	}
}
