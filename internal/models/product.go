package models

import "github.com/google/uuid"

// ProductStatusActive marks products that show up in listings.
const ProductStatusActive = "active"

// Product is a catalog entry owned by a seller. Metadata holds a free-form
// attribute map serialized as JSON.
type Product struct {
	BaseModel
	SellerID    uuid.UUID  `gorm:"type:uuid;index" json:"seller_id"`
	Seller      *User      `json:"seller,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CategoryID  *uuid.UUID `gorm:"type:uuid" json:"category_id"`
	Category    *Category  `json:"category,omitempty"`
	Price       float64    `json:"price"`
	ImageURL    string     `json:"image_url"`
	Metadata    string     `gorm:"type:jsonb;default:'{}'" json:"metadata"`
	Status      string     `gorm:"default:active" json:"status"`
}
