package routes

import (
	"bytes"

	"shoppingcart/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// The API serializes prices and totals as bare JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// json.Unmarshal treats a literal null as a successful no-op, so BodyParser
// does not flag it. A null payload reads as not found.
func nullBody(c *fiber.Ctx) bool {
	return string(bytes.TrimSpace(c.Body())) == "null"
}

func SetupRoutes(app *fiber.App, gdb *gorm.DB) {
	categoryService := services.NewCategoryService(gdb)
	productService := services.NewProductService(gdb)
	cartItemService := services.NewCartItemService(gdb)
	cartService := services.NewCartService(gdb)

	// Category routes
	categories := app.Group("/Category")
	categories.Get("/", getAllCategories(categoryService))
	categories.Get("/:id", getCategory(categoryService))
	categories.Post("/", createCategory(categoryService))
	categories.Put("/:id", updateCategory(categoryService))
	categories.Delete("/:id", deleteCategory(categoryService))

	// Product routes
	products := app.Group("/Product")
	products.Get("/", getAllProducts(productService))
	products.Get("/:id", getProduct(productService))
	products.Post("/", createProduct(productService))
	products.Put("/:id", updateProduct(productService))
	products.Delete("/:id", deleteProduct(productService))

	// CartItem routes (the id segment is the product id)
	cartItems := app.Group("/CartItem")
	cartItems.Get("/", getAllCartItems(cartItemService))
	cartItems.Get("/:id", getCartItem(cartItemService))
	cartItems.Post("/", addToCart(cartItemService))
	cartItems.Put("/:id", editCartItem(cartItemService))
	cartItems.Delete("/:id", removeFromCart(cartItemService))

	// Cart is read-only: the view is derived from the cart items
	cart := app.Group("/Cart")
	cart.Get("/", getCart(cartService))
}
