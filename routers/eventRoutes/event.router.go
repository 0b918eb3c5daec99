package eventRoutes

import (
	"github.com/gofiber/fiber/v2"

	eventController "prayerhub/controllers/event"
	"prayerhub/middleware"
	eventValidator "prayerhub/validators/event"
)

// SetupEventRoutes sets up public and admin event routes
func SetupEventRoutes(app *fiber.App) {
	group := app.Group("/api/events")

	group.Get("/", eventController.GetAllEvents)
	group.Get("/:id", eventValidator.EventID(), eventController.GetEventDetails)
	group.Post("/:id/register", eventValidator.EventID(), eventValidator.RegisterForEvent(), eventController.RegisterForEvent)

	adminGroup := app.Group("/api/admin/events", middleware.RequireAuth, middleware.RequireAdmin)
	adminGroup.Post("/", eventValidator.CreateEvent(), eventController.AdminCreateEvent)
	adminGroup.Get("/", eventController.AdminListEvents)
	adminGroup.Put("/:id", eventValidator.EventID(), eventValidator.UpdateEvent(), eventController.AdminUpdateEvent)
	adminGroup.Delete("/:id", eventValidator.EventID(), eventController.AdminDeleteEvent)
	adminGroup.Post("/:id/publish", eventValidator.EventID(), eventController.AdminPublishEvent)
	adminGroup.Get("/:id/registrations", eventValidator.EventID(), eventController.AdminGetEventRegistrations)
}
