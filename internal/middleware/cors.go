package middleware

import "github.com/gofiber/fiber/v2"

// CORS applies the permissive cross-origin policy this API exposes and
// answers preflight requests with an empty 200 before routing happens.
func CORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Access-Control-Allow-Origin", "*")
		c.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Authorization")

		if c.Method() == fiber.MethodOptions {
			return c.Status(fiber.StatusOK).SendString("")
		}

		return c.Next()
	}
}
