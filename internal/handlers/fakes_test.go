package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/example/bazaar/internal/apperrors"
	"github.com/example/bazaar/internal/config"
	"github.com/example/bazaar/internal/middleware"
	"github.com/example/bazaar/internal/models"
	"github.com/example/bazaar/internal/storage"
)

// --- test harness ---

func testConfig() *config.Config {
	return &config.Config{
		AppPort:      "8080",
		JWTSecret:    "test-secret",
		TokenExpires: time.Hour,
		DemoMode:     true,
	}
}

func newTestApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(cfg)})
	app.Use(middleware.CORS())
	return app
}

func jsonRequest(method, target string, payload interface{}) *http.Request {
	var body io.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

// --- fake repositories ---

type fakeUserRepo struct {
	users []*models.User
}

func (f *fakeUserRepo) Create(user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserRepo) FindByEmailAndCode(email, code string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email && u.VerificationCode == code {
			return u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserRepo) MarkVerified(id uuid.UUID) error {
	for _, u := range f.users {
		if u.ID == id {
			u.IsVerified = true
		}
	}
	return nil
}

type fakeCategoryRepo struct {
	categories []*models.Category
}

func (f *fakeCategoryRepo) List() ([]models.Category, error) {
	out := make([]models.Category, 0, len(f.categories))
	for i := len(f.categories) - 1; i >= 0; i-- {
		out = append(out, *f.categories[i])
	}
	return out, nil
}

func (f *fakeCategoryRepo) Create(category *models.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	f.categories = append(f.categories, category)
	return nil
}

type fakeProductRepo struct {
	products []*models.Product
}

func (f *fakeProductRepo) List(filter storage.ProductFilter) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		if p.Status != models.ProductStatusActive {
			continue
		}
		if filter.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *filter.CategoryID) {
			continue
		}
		if filter.SellerID != nil && p.SellerID != *filter.SellerID {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeProductRepo) FindByID(id uuid.UUID) (*models.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeProductRepo) Create(product *models.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if product.Status == "" {
		product.Status = models.ProductStatusActive
	}
	product.CreatedAt = time.Now()
	f.products = append(f.products, product)
	return nil
}

type fakeCartRepo struct {
	lines []*models.CartLine
}

func (f *fakeCartRepo) ListByUser(userID uuid.UUID) ([]models.CartLine, error) {
	var out []models.CartLine
	for _, line := range f.lines {
		if line.UserID == userID && line.Quantity > 0 {
			out = append(out, *line)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) Upsert(userID, productID uuid.UUID, quantity int) (*models.CartLine, error) {
	for _, line := range f.lines {
		if line.UserID == userID && line.ProductID == productID {
			line.Quantity += quantity
			copied := *line
			return &copied, nil
		}
	}
	line := &models.CartLine{UserID: userID, ProductID: productID, Quantity: quantity}
	line.ID = uuid.New()
	f.lines = append(f.lines, line)
	copied := *line
	return &copied, nil
}

func (f *fakeCartRepo) SetQuantityZero(id uuid.UUID) error {
	for _, line := range f.lines {
		if line.ID == id {
			line.Quantity = 0
		}
	}
	return nil
}
