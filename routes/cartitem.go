package routes

import (
	"shoppingcart/models"
	"shoppingcart/services"
	"shoppingcart/validation"

	"github.com/gofiber/fiber/v2"
)

// GetAllCartItems - GET /CartItem
func getAllCartItems(svc *services.CartItemService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.GetAll()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to get cart items",
			})
		}
		return c.JSON(items)
	}
}

// GetCartItem - GET /CartItem/:id (id is the product id)
func getCartItem(svc *services.CartItemService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return c.SendStatus(fiber.StatusNotFound)
		}

		item, err := svc.Get(uint(id))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to get cart item",
			})
		}
		if item == nil {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.JSON(item)
	}
}

// AddToCart - POST /CartItem
func addToCart(svc *services.CartItemService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		item := new(models.CartItem)
		if err := c.BodyParser(item); err != nil || nullBody(c) {
			return c.SendStatus(fiber.StatusNotFound)
		}

		if errs := validation.Check(item); errs != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errs)
		}

		if err := svc.Create(item); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to add cart item",
			})
		}
		return c.JSON(item)
	}
}

// EditCartItem - PUT /CartItem/:id, only the quantity changes
func editCartItem(svc *services.CartItemService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		item := new(models.CartItem)
		if err := c.BodyParser(item); err != nil || nullBody(c) {
			return c.SendStatus(fiber.StatusNotFound)
		}

		if errs := validation.Check(item); errs != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errs)
		}

		existing, err := svc.Get(item.ProductID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to find cart item",
			})
		}
		if existing == nil {
			return c.SendStatus(fiber.StatusNotFound)
		}

		updated, err := svc.Update(item)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update cart item",
			})
		}
		return c.JSON(updated)
	}
}

// RemoveFromCart - DELETE /CartItem/:id
func removeFromCart(svc *services.CartItemService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return c.SendStatus(fiber.StatusNotFound)
		}

		existing, err := svc.Get(uint(id))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to find cart item",
			})
		}
		if existing == nil {
			return c.SendStatus(fiber.StatusNotFound)
		}

		if err := svc.Delete(uint(id)); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to delete cart item",
			})
		}
		return c.SendStatus(fiber.StatusOK)
	}
}
