package models

import "time"

type Category string

const (
	CategorySmartphone  Category = "smartphone"
	CategoryElectronics Category = "electronics"
	CategoryRealEstate  Category = "realestate"
)

// ValidCategory reports whether c is one of the catalog categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategorySmartphone, CategoryElectronics, CategoryRealEstate:
		return true
	}
	return false
}

type Product struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	Brand           string    `gorm:"not null" json:"brand"`
	Category        Category  `gorm:"type:VARCHAR(20);not null" json:"category"`
	Price           float64   `gorm:"not null" json:"price"`
	OldPrice        float64   `json:"old_price,omitempty"` // strike-through price
	Description     string    `gorm:"not null" json:"description"`
	LongDescription string    `json:"long_description,omitempty"`
	Stock           int       `gorm:"default:0" json:"stock"`
	Image           string    `gorm:"default:'/placeholder.jpg'" json:"image"`
	Features        []string  `gorm:"serializer:json" json:"features"`
	Active          bool      `gorm:"default:true" json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
