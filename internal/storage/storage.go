// Package storage defines the repository interfaces handlers depend on,
// plus their Postgres implementations. Lookups that find nothing return
// apperrors.ErrNotFound regardless of backend.
package storage

import (
	"github.com/google/uuid"

	"github.com/example/bazaar/internal/models"
)

// UserRepository persists and looks up accounts.
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uuid.UUID) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByEmailAndCode(email, code string) (*models.User, error)
	MarkVerified(id uuid.UUID) error
}

// CategoryRepository persists and lists catalog categories.
type CategoryRepository interface {
	List() ([]models.Category, error)
	Create(category *models.Category) error
}

// ProductFilter narrows product listings. Nil fields match everything.
type ProductFilter struct {
	CategoryID *uuid.UUID
	SellerID   *uuid.UUID
}

// ProductRepository persists and lists catalog entries. List only returns
// active products, newest first, with category and seller loaded.
type ProductRepository interface {
	List(filter ProductFilter) ([]models.Product, error)
	FindByID(id uuid.UUID) (*models.Product, error)
	Create(product *models.Product) error
}

// CartRepository manages per-user cart lines. ListByUser only returns live
// lines (quantity > 0); Upsert accumulates quantity on the (user, product)
// unique index; SetQuantityZero soft-removes a line without deleting it.
type CartRepository interface {
	ListByUser(userID uuid.UUID) ([]models.CartLine, error)
	Upsert(userID, productID uuid.UUID, quantity int) (*models.CartLine, error)
	SetQuantityZero(id uuid.UUID) error
}
