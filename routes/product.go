package routes

import (
	"shoppingcart/models"
	"shoppingcart/services"
	"shoppingcart/validation"

	"github.com/gofiber/fiber/v2"
)

// GetAllProducts - GET /Product
func getAllProducts(svc *services.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := svc.GetAll()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to get products",
			})
		}
		return c.JSON(products)
	}
}

// GetProduct - GET /Product/:id
func getProduct(svc *services.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return c.SendStatus(fiber.StatusNotFound)
		}

		product, err := svc.Get(uint(id))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to get product",
			})
		}
		if product == nil {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.JSON(product)
	}
}

// CreateProduct - POST /Product
func createProduct(svc *services.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		product := new(models.Product)
		if err := c.BodyParser(product); err != nil || nullBody(c) {
			return c.SendStatus(fiber.StatusNotFound)
		}

		if errs := validation.Check(product); errs != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errs)
		}

		if err := svc.Create(product); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create product",
			})
		}
		return c.JSON(product)
	}
}

// UpdateProduct - PUT /Product/:id
func updateProduct(svc *services.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		product := new(models.Product)
		if err := c.BodyParser(product); err != nil || nullBody(c) {
			return c.SendStatus(fiber.StatusNotFound)
		}

		if errs := validation.Check(product); errs != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errs)
		}

		existing, err := svc.Get(product.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to find product",
			})
		}
		if existing == nil {
			return c.SendStatus(fiber.StatusNotFound)
		}

		updated, err := svc.Update(product)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update product",
			})
		}
		return c.JSON(updated)
	}
}

// DeleteProduct - DELETE /Product/:id
func deleteProduct(svc *services.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return c.SendStatus(fiber.StatusNotFound)
		}

		existing, err := svc.Get(uint(id))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to find product",
			})
		}
		if existing == nil {
			return c.SendStatus(fiber.StatusNotFound)
		}

		if err := svc.Delete(uint(id)); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to delete product",
			})
		}
		return c.SendStatus(fiber.StatusOK)
	}
}
