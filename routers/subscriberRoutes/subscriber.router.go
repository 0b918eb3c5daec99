package subscriberRoutes

import (
	"github.com/gofiber/fiber/v2"

	subscriberController "prayerhub/controllers/subscriber"
	"prayerhub/middleware"
	subscriberValidator "prayerhub/validators/subscriber"
)

// SetupSubscriberRoutes sets up newsletter signup and admin subscriber routes
func SetupSubscriberRoutes(app *fiber.App) {
	group := app.Group("/api/subscribers")

	group.Post("/", subscriberValidator.Subscribe(), subscriberController.Subscribe)
	group.Get("/verify/:token", subscriberValidator.Token(), subscriberController.VerifySubscriber)
	group.Get("/unsubscribe/:token", subscriberValidator.Token(), subscriberController.Unsubscribe)

	app.Get("/api/admin/subscribers", middleware.RequireAuth, middleware.RequireAdmin, subscriberController.AdminListSubscribers)
}
