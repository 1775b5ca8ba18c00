package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/bazaar/internal/apperrors"
	"github.com/example/bazaar/internal/storage"
)

// CartHandler manages per-user cart endpoints.
type CartHandler struct {
	carts storage.CartRepository
}

// NewCartHandler constructs a CartHandler.
func NewCartHandler(carts storage.CartRepository) *CartHandler {
	return &CartHandler{carts: carts}
}

// ListCart returns the live cart lines for a user together with the cart
// total. Soft-removed lines (quantity 0) never show up here.
func (h *CartHandler) ListCart(c *fiber.Ctx) error {
	rawUserID := c.Query("user_id")
	if rawUserID == "" {
		return fmt.Errorf("%w: user_id is required", apperrors.ErrValidation)
	}

	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return fmt.Errorf("%w: invalid user_id", apperrors.ErrValidation)
	}

	lines, err := h.carts.ListByUser(userID)
	if err != nil {
		return err
	}

	total := 0.0
	for _, line := range lines {
		if line.Product != nil {
			total += line.Product.Price * float64(line.Quantity)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"cart":    lines,
		"total":   total,
	})
}

type addToCartRequest struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// AddToCart upserts a cart line: an existing (user, product) line has its
// quantity incremented, otherwise a new line is created. Retries add more.
func (h *CartHandler) AddToCart(c *fiber.Ctx) error {
	var req addToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.UserID == "" || req.ProductID == "" {
		return fmt.Errorf("%w: user_id and product_id are required", apperrors.ErrValidation)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return fmt.Errorf("%w: invalid user_id", apperrors.ErrValidation)
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return fmt.Errorf("%w: invalid product_id", apperrors.ErrValidation)
	}

	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	line, err := h.carts.Upsert(userID, productID, req.Quantity)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "product added to cart",
		"cart_id": line.ID,
	})
}

// RemoveFromCart soft-removes a cart line by setting its quantity to 0.
// The row and its id survive.
func (h *CartHandler) RemoveFromCart(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fmt.Errorf("%w: invalid cart line id", apperrors.ErrValidation)
	}

	if err := h.carts.SetQuantityZero(id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "product removed from cart",
	})
}
