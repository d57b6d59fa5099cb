package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aboh505/BestLife/models"
)

type ProductRequest struct {
	Name            string   `json:"name"`
	Brand           string   `json:"brand"`
	Category        string   `json:"category"`
	Price           *float64 `json:"price"`
	OldPrice        *float64 `json:"old_price"`
	Description     string   `json:"description"`
	LongDescription string   `json:"long_description"`
	Stock           *int     `json:"stock"`
	Image           string   `json:"image"`
	Features        []string `json:"features"`
	Active          *bool    `json:"active"`
}

// validate checks the required fields and numeric bounds for creation.
func (r *ProductRequest) validate() string {
	if strings.TrimSpace(r.Name) == "" {
		return "Product name is required"
	}
	if strings.TrimSpace(r.Brand) == "" {
		return "Brand is required"
	}
	if !models.ValidCategory(models.Category(r.Category)) {
		return "Category must be one of: smartphone, electronics, realestate"
	}
	if r.Price == nil || *r.Price < 0 {
		return "Price is required and must be non-negative"
	}
	if r.OldPrice != nil && *r.OldPrice < 0 {
		return "Old price must be non-negative"
	}
	if strings.TrimSpace(r.Description) == "" {
		return "Description is required"
	}
	if r.Stock != nil && *r.Stock < 0 {
		return "Stock must be non-negative"
	}
	return ""
}

// CreateProduct adds a catalog entry. Admin only (enforced by the route).
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product payload"})
			return
		}
		if msg := req.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
			return
		}

		product := models.Product{
			Name:            strings.TrimSpace(req.Name),
			Brand:           strings.TrimSpace(req.Brand),
			Category:        models.Category(req.Category),
			Price:           *req.Price,
			Description:     strings.TrimSpace(req.Description),
			LongDescription: req.LongDescription,
			Features:        req.Features,
			Active:          true,
		}
		if req.OldPrice != nil {
			product.OldPrice = *req.OldPrice
		}
		if req.Stock != nil {
			product.Stock = *req.Stock
		}
		if req.Image != "" {
			product.Image = req.Image
		}
		if req.Active != nil {
			product.Active = *req.Active
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Product created", "data": product})
	}
}
