package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/bazaar/internal/apperrors"
	"github.com/example/bazaar/internal/config"
	"github.com/example/bazaar/internal/models"
	"github.com/example/bazaar/internal/storage"
	"github.com/example/bazaar/internal/utils"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	users storage.UserRepository
	cfg   *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(users storage.UserRepository, cfg *config.Config) *AuthHandler {
	return &AuthHandler{users: users, cfg: cfg}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// Register creates a new unverified account and generates its email
// verification code. The code is only echoed back in demo mode.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return fmt.Errorf("%w: email and password are required", apperrors.ErrValidation)
	}

	if _, err := h.users.FindByEmail(email); err == nil {
		return apperrors.ErrEmailTaken
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return err
	}

	code, err := utils.GenerateVerificationCode()
	if err != nil {
		return err
	}

	user := models.User{
		Email:            email,
		PasswordHash:     passwordHash,
		FullName:         req.FullName,
		Role:             "user",
		IsVerified:       false,
		VerificationCode: code,
	}

	if err := h.users.Create(&user); err != nil {
		return err
	}

	resp := fiber.Map{
		"success": true,
		"message": "registration successful",
		"user": fiber.Map{
			"id":        user.ID,
			"email":     user.Email,
			"full_name": user.FullName,
		},
	}
	if h.cfg.DemoMode {
		resp["verification_code"] = code
	}

	return c.JSON(resp)
}

type verifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// Verify marks an account verified when the submitted code matches and
// issues the first session token.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	var req verifyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	email := normalizeEmail(req.Email)

	user, err := h.users.FindByEmailAndCode(email, req.Code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrInvalidCode
		}
		return err
	}

	if err := h.users.MarkVerified(user.ID); err != nil {
		return err
	}

	token, err := utils.GenerateSessionToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenExpires)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "email verified",
		"token":   token,
		"user_id": user.ID,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a verified account and issues a fresh session token.
// Unknown email and wrong password produce the same response on purpose.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	email := normalizeEmail(req.Email)

	user, err := h.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrInvalidCredentials
		}
		return err
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return apperrors.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return apperrors.ErrNotVerified
	}

	token, err := utils.GenerateSessionToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenExpires)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "login successful",
		"token":   token,
		"user":    user,
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
