package models

import "time"

type OrderStatus string

const (
	OrderStatusPreparing OrderStatus = "preparing" // placed, being prepared for dispatch
	OrderStatusShipped   OrderStatus = "shipped"   // out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // customer received the items
	OrderStatusCancelled OrderStatus = "cancelled" // terminal, no further transitions
)

// CanTransition enforces the forward-only order lifecycle:
// preparing → shipped → delivered, with cancelled reachable from any
// non-terminal state.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	switch s {
	case OrderStatusPreparing:
		return to == OrderStatusShipped || to == OrderStatusCancelled
	case OrderStatusShipped:
		return to == OrderStatusDelivered || to == OrderStatusCancelled
	default:
		return false
	}
}

type Order struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	UserID    string      `gorm:"not null;index" json:"user_id"`
	User      User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total     float64     `gorm:"not null" json:"total"`
	Status    OrderStatus `gorm:"type:VARCHAR(20);default:'preparing'" json:"status"`
	Address   Address     `gorm:"embedded;embeddedPrefix:address_" json:"delivery_address"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderItem is a denormalized snapshot: name and price are copied from the
// product at order time so later catalog edits never rewrite a receipt.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   uint    `gorm:"index" json:"-"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Address is the delivery address embedded in an order.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
}
