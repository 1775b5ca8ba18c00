package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/bazaar/internal/apperrors"
	"github.com/example/bazaar/internal/models"
	"github.com/example/bazaar/internal/storage"
)

// CatalogHandler manages the category lookup table.
type CatalogHandler struct {
	categories storage.CategoryRepository
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(categories storage.CategoryRepository) *CatalogHandler {
	return &CatalogHandler{categories: categories}
}

// ListCategories returns all categories, newest first.
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.categories.List()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"categories": categories,
	})
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

// CreateCategory persists a new category.
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var req createCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}

	category := models.Category{Name: name}
	if err := h.categories.Create(&category); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"category": category,
	})
}
