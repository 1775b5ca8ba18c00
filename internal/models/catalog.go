package models

// Category is a flat id/name lookup referenced by products.
type Category struct {
	BaseModel
	Name     string    `json:"name"`
	Products []Product `json:"products,omitempty"`
}
