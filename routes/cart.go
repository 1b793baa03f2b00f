package routes

import (
	"shoppingcart/services"

	"github.com/gofiber/fiber/v2"
)

// GetCart - GET /Cart, the aggregated view over all cart items
func getCart(svc *services.CartService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cart, err := svc.GetMyCart()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to get cart",
			})
		}
		return c.JSON(cart)
	}
}
