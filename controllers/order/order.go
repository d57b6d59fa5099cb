package orderControllers

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aboh505/BestLife/middleware"
	"github.com/aboh505/BestLife/models"
)

// Business failures surfaced by PlaceOrder. Handlers map them to statuses
// with errors.Is so the messages can carry product names.
var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrTotalMismatch     = errors.New("order total does not match item prices")
)

// -------- Request Structs --------

type LineItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderRequest struct {
	Items   []LineItemRequest `json:"items"`
	Total   float64           `json:"total"`
	Address models.Address    `json:"delivery_address"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Core Logic --------

// PlaceOrder turns a submitted cart into a durable order. Stock is taken
// with a conditional decrement (stock = stock - n only while stock >= n)
// inside one transaction, so a failing line rolls back every earlier
// decrement and stock can never go negative, even under concurrent orders
// for the same product.
func PlaceOrder(db *gorm.DB, userID string, req PlaceOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}
	for _, line := range req.Items {
		// A quantity below one would turn the conditional decrement into
		// an increment.
		if line.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var total float64
		items := make([]models.OrderItem, 0, len(req.Items))

		for _, line := range req.Items {
			var product models.Product
			if err := tx.First(&product, "id = ?", line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: product %d", ErrProductNotFound, line.ProductID)
				}
				return err
			}

			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", line.ProductID, line.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", line.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w for %s", ErrInsufficientStock, product.Name)
			}

			// Snapshot name and price so later catalog edits never touch
			// this order.
			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				Price:     product.Price,
				Quantity:  line.Quantity,
			})
			total += product.Price * float64(line.Quantity)
		}

		if math.Abs(total-req.Total) > 0.01 {
			return fmt.Errorf("%w: expected %.2f", ErrTotalMismatch, total)
		}

		order = models.Order{
			UserID:  userID,
			Items:   items,
			Total:   total,
			Status:  models.OrderStatusPreparing,
			Address: req.Address,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// -------- Handlers --------

// PlaceOrderHandler creates a new order for the authenticated user.
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order payload"})
			return
		}

		order, err := PlaceOrder(db, user.ID, req)
		if err != nil {
			switch {
			case errors.Is(err, ErrProductNotFound):
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
			case errors.Is(err, ErrEmptyCart), errors.Is(err, ErrInvalidQuantity),
				errors.Is(err, ErrInsufficientStock), errors.Is(err, ErrTotalMismatch):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create order"})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Order created successfully",
			"data":    order,
		})
	}
}
