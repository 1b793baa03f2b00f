package routes

import (
	"shoppingcart/models"
	"shoppingcart/services"
	"shoppingcart/validation"

	"github.com/gofiber/fiber/v2"
)

// GetAllCategories - GET /Category
func getAllCategories(svc *services.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categories, err := svc.GetAll()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to get categories",
			})
		}
		return c.JSON(categories)
	}
}

// GetCategory - GET /Category/:id
func getCategory(svc *services.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			// non-positive and malformed ids both read as absent
			return c.SendStatus(fiber.StatusNotFound)
		}

		category, err := svc.Get(uint(id))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to get category",
			})
		}
		if category == nil {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.JSON(category)
	}
}

// CreateCategory - POST /Category
func createCategory(svc *services.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category := new(models.Category)

		// A missing, unreadable, or null body reads as not found
		if err := c.BodyParser(category); err != nil || nullBody(c) {
			return c.SendStatus(fiber.StatusNotFound)
		}

		if errs := validation.Check(category); errs != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errs)
		}

		if err := svc.Create(category); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create category",
			})
		}
		return c.JSON(category)
	}
}

// UpdateCategory - PUT /Category/:id
func updateCategory(svc *services.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category := new(models.Category)
		if err := c.BodyParser(category); err != nil || nullBody(c) {
			return c.SendStatus(fiber.StatusNotFound)
		}

		if errs := validation.Check(category); errs != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errs)
		}

		// The row to update is the one named by the body's id
		existing, err := svc.Get(category.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to find category",
			})
		}
		if existing == nil {
			return c.SendStatus(fiber.StatusNotFound)
		}

		updated, err := svc.Update(category)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update category",
			})
		}
		return c.JSON(updated)
	}
}

// DeleteCategory - DELETE /Category/:id
func deleteCategory(svc *services.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return c.SendStatus(fiber.StatusNotFound)
		}

		existing, err := svc.Get(uint(id))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to find category",
			})
		}
		if existing == nil {
			return c.SendStatus(fiber.StatusNotFound)
		}

		if err := svc.Delete(uint(id)); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to delete category",
			})
		}
		return c.SendStatus(fiber.StatusOK)
	}
}
