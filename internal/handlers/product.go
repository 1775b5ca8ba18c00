package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/bazaar/internal/apperrors"
	"github.com/example/bazaar/internal/models"
	"github.com/example/bazaar/internal/storage"
)

// ProductHandler manages catalog entries.
type ProductHandler struct {
	products storage.ProductRepository
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(products storage.ProductRepository) *ProductHandler {
	return &ProductHandler{products: products}
}

// ListProducts returns active products, newest first, optionally filtered by
// category and/or seller. Unparsable filter values are ignored.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	var filter storage.ProductFilter

	if v := c.Query("category_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			filter.CategoryID = &id
		}
	}
	if v := c.Query("seller_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			filter.SellerID = &id
		}
	}

	products, err := h.products.List(filter)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"products": products,
	})
}

// GetProduct loads a single product with its category and seller.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fmt.Errorf("%w: invalid product id", apperrors.ErrValidation)
	}

	product, err := h.products.FindByID(id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

type createProductRequest struct {
	SellerID    string                 `json:"seller_id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	CategoryID  string                 `json:"category_id"`
	Price       float64                `json:"price"`
	ImageURL    string                 `json:"image_url"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// CreateProduct persists a new catalog entry for a seller. Status is left to
// the schema default.
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req createProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.SellerID == "" || req.Title == "" || req.CategoryID == "" || req.Price == 0 {
		return fmt.Errorf("%w: seller_id, title, category_id and price are required", apperrors.ErrValidation)
	}

	sellerID, err := uuid.Parse(req.SellerID)
	if err != nil {
		return fmt.Errorf("%w: invalid seller_id", apperrors.ErrValidation)
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return fmt.Errorf("%w: invalid category_id", apperrors.ErrValidation)
	}

	metadata := "{}"
	if req.Metadata != nil {
		raw, err := json.Marshal(req.Metadata)
		if err != nil {
			return fmt.Errorf("%w: invalid metadata", apperrors.ErrValidation)
		}
		metadata = string(raw)
	}

	product := models.Product{
		SellerID:    sellerID,
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  &categoryID,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Metadata:    metadata,
	}

	if err := h.products.Create(&product); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "product created",
		"product": product,
	})
}
