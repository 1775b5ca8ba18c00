package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/bazaar/internal/models"
)

func newProductApp(products *fakeProductRepo) *fiber.App {
	app := newTestApp(testConfig())
	h := NewProductHandler(products)

	group := app.Group("/api/products")
	group.Get("/", h.ListProducts)
	group.Post("/", h.CreateProduct)
	group.Get("/:id", h.GetProduct)

	return app
}

func seedProduct(products *fakeProductRepo, sellerID uuid.UUID, categoryID *uuid.UUID, status string) *models.Product {
	product := &models.Product{
		SellerID:   sellerID,
		Title:      "seeded",
		CategoryID: categoryID,
		Price:      10,
		Status:     status,
	}
	product.ID = uuid.New()
	products.products = append(products.products, product)
	return product
}

func TestListProductsOnlyActive(t *testing.T) {
	products := &fakeProductRepo{}
	seller := uuid.New()
	active := seedProduct(products, seller, nil, models.ProductStatusActive)
	seedProduct(products, seller, nil, "sold")

	app := newProductApp(products)
	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/products", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	listed, ok := body["products"].([]interface{})
	require.True(t, ok)
	require.Len(t, listed, 1)

	entry := listed[0].(map[string]interface{})
	assert.Equal(t, active.ID.String(), entry["id"])
}

func TestListProductsFilters(t *testing.T) {
	products := &fakeProductRepo{}
	categoryID := uuid.New()
	otherCategory := uuid.New()
	sellerA := uuid.New()
	sellerB := uuid.New()

	inCategory := seedProduct(products, sellerA, &categoryID, models.ProductStatusActive)
	seedProduct(products, sellerA, &otherCategory, models.ProductStatusActive)
	seedProduct(products, sellerB, &categoryID, models.ProductStatusActive)

	app := newProductApp(products)

	resp, err := app.Test(jsonRequest(http.MethodGet,
		"/api/products?category_id="+categoryID.String()+"&seller_id="+sellerA.String(), nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	listed := body["products"].([]interface{})
	require.Len(t, listed, 1)
	assert.Equal(t, inCategory.ID.String(), listed[0].(map[string]interface{})["id"])
}

func TestCreateProductRequiresFields(t *testing.T) {
	app := newProductApp(&fakeProductRepo{})

	for _, payload := range []fiber.Map{
		{"title": "x", "category_id": uuid.New().String(), "price": 10},
		{"seller_id": uuid.New().String(), "category_id": uuid.New().String(), "price": 10},
		{"seller_id": uuid.New().String(), "title": "x", "price": 10},
		{"seller_id": uuid.New().String(), "title": "x", "category_id": uuid.New().String()},
	} {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/products", payload))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}
}

func TestCreateProductSerializesMetadata(t *testing.T) {
	products := &fakeProductRepo{}
	app := newProductApp(products)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/products", fiber.Map{
		"seller_id":   uuid.New().String(),
		"title":       "Vintage lamp",
		"category_id": uuid.New().String(),
		"price":       42.5,
		"metadata":    fiber.Map{"color": "red", "weight_kg": 1.5},
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, products.products, 1)
	created := products.products[0]

	var attrs map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(created.Metadata), &attrs))
	assert.Equal(t, "red", attrs["color"])
	assert.Equal(t, 1.5, attrs["weight_kg"])

	// Status comes from the schema default, not from the request.
	assert.Equal(t, models.ProductStatusActive, created.Status)
}

func TestCreateProductDefaultsMetadata(t *testing.T) {
	products := &fakeProductRepo{}
	app := newProductApp(products)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/products", fiber.Map{
		"seller_id":   uuid.New().String(),
		"title":       "Vintage lamp",
		"category_id": uuid.New().String(),
		"price":       42.5,
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, products.products, 1)
	assert.Equal(t, "{}", products.products[0].Metadata)
}

func TestGetProductNotFound(t *testing.T) {
	app := newProductApp(&fakeProductRepo{})

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/products/"+uuid.New().String(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
