package cartRoutes

import (
	"github.com/gofiber/fiber/v2"

	cartController "prayerhub/controllers/cart"
	orderController "prayerhub/controllers/order"
	"prayerhub/middleware"
	cartValidator "prayerhub/validators/cart"
)

// SetupCartRoutes sets up cart, checkout and order routes. Everything here
// requires a signed-in user.
func SetupCartRoutes(app *fiber.App) {
	group := app.Group("/api/cart", middleware.RequireAuth)
	group.Get("/", cartController.GetCart)
	group.Post("/items", cartValidator.AddItem(), cartController.AddToCart)
	group.Delete("/items/:id", cartValidator.ItemID(), cartController.RemoveFromCart)

	orderGroup := app.Group("/api/orders", middleware.RequireAuth)
	orderGroup.Post("/checkout", orderController.Checkout)
	orderGroup.Get("/", orderController.GetMyOrders)
	orderGroup.Get("/:id", cartValidator.OrderID(), orderController.GetOrderDetails)

	app.Get("/api/admin/orders", middleware.RequireAuth, middleware.RequireAdmin, orderController.AdminListOrders)
}
