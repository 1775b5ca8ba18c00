package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/bazaar/internal/middleware"
	"github.com/example/bazaar/internal/storage"
)

// ProfileHandler serves the authenticated user's profile.
type ProfileHandler struct {
	users storage.UserRepository
}

// NewProfileHandler constructs a ProfileHandler.
func NewProfileHandler(users storage.UserRepository) *ProfileHandler {
	return &ProfileHandler{users: users}
}

// GetProfile returns the profile of the user behind the session token.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := h.users.FindByID(userID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}
