package storage

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/bazaar/internal/apperrors"
	"github.com/example/bazaar/internal/models"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository constructs the Postgres-backed UserRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &user, nil
}

func (r *userRepository) FindByEmailAndCode(email, code string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ? AND verification_code = ?", email, code).First(&user).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &user, nil
}

func (r *userRepository) MarkVerified(id uuid.UUID) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Update("is_verified", true).Error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository constructs the Postgres-backed CategoryRepository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("created_at desc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository constructs the Postgres-backed ProductRepository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) List(filter ProductFilter) ([]models.Product, error) {
	query := r.db.Where("status = ?", models.ProductStatusActive)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.SellerID != nil {
		query = query.Where("seller_id = ?", *filter.SellerID)
	}

	var products []models.Product
	err := query.Preload("Category").Preload("Seller").
		Order("created_at desc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindByID(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").Preload("Seller").
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &product, nil
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository constructs the Postgres-backed CartRepository.
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) ListByUser(userID uuid.UUID) ([]models.CartLine, error) {
	var lines []models.CartLine
	err := r.db.Where("user_id = ? AND quantity > 0", userID).
		Preload("Product").Preload("Product.Category").
		Order("created_at asc").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *cartRepository) Upsert(userID, productID uuid.UUID, quantity int) (*models.CartLine, error) {
	line := models.CartLine{UserID: userID, ProductID: productID, Quantity: quantity}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart.quantity + EXCLUDED.quantity"),
		}),
	}).Create(&line).Error
	if err != nil {
		return nil, err
	}

	// On conflict the insert id is discarded, so reload the surviving line.
	var current models.CartLine
	err = r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		First(&current).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &current, nil
}

func (r *cartRepository) SetQuantityZero(id uuid.UUID) error {
	return r.db.Model(&models.CartLine{}).Where("id = ?", id).
		Update("quantity", 0).Error
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	return err
}
