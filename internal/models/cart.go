package models

import "github.com/google/uuid"

// CartLine ties a quantity of one product to one user. A single line exists
// per (user, product) pair; quantity 0 marks the line as removed without
// deleting the row.
type CartLine struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Product   *Product  `json:"product,omitempty"`
	Quantity  int       `json:"quantity"`
}

// TableName keeps the historical table name.
func (CartLine) TableName() string {
	return "cart"
}
