package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/bazaar/internal/config"
	"github.com/example/bazaar/internal/handlers"
	"github.com/example/bazaar/internal/middleware"
	"github.com/example/bazaar/internal/storage"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	users := storage.NewUserRepository(db)
	categories := storage.NewCategoryRepository(db)
	products := storage.NewProductRepository(db)
	carts := storage.NewCartRepository(db)

	authHandler := handlers.NewAuthHandler(users, cfg)
	catalogHandler := handlers.NewCatalogHandler(categories)
	productHandler := handlers.NewProductHandler(products)
	cartHandler := handlers.NewCartHandler(carts)
	profileHandler := handlers.NewProfileHandler(users)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/verify", authHandler.Verify)
	auth.Post("/login", authHandler.Login)

	cart := api.Group("/cart")
	cart.Get("/", cartHandler.ListCart)
	cart.Post("/", cartHandler.AddToCart)
	cart.Delete("/:id", cartHandler.RemoveFromCart)

	productGroup := api.Group("/products")
	productGroup.Get("/", productHandler.ListProducts)
	productGroup.Post("/", productHandler.CreateProduct)
	productGroup.Get("/:id", productHandler.GetProduct)

	categoryGroup := api.Group("/categories")
	categoryGroup.Get("/", catalogHandler.ListCategories)
	categoryGroup.Post("/", catalogHandler.CreateCategory)

	protected := api.Group("", middleware.AuthMiddleware(cfg))
	protected.Get("/profile", profileHandler.GetProfile)
}
