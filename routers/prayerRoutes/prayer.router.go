package prayerRoutes

import (
	"github.com/gofiber/fiber/v2"

	prayerController "prayerhub/controllers/prayer"
	"prayerhub/middleware"
	prayerValidator "prayerhub/validators/prayer"
)

// SetupPrayerRoutes sets up prayer request routes. Submitting a request is
// open to everyone; reading and managing them is admin only.
func SetupPrayerRoutes(app *fiber.App) {
	app.Post("/api/prayer-requests", prayerValidator.SubmitRequest(), prayerController.SubmitPrayerRequest)

	adminGroup := app.Group("/api/admin/prayer-requests", middleware.RequireAuth, middleware.RequireAdmin)
	adminGroup.Get("/", prayerController.AdminListPrayerRequests)
	adminGroup.Put("/:id/status", prayerValidator.RequestID(), prayerValidator.UpdateStatus(), prayerController.AdminUpdatePrayerStatus)
	adminGroup.Delete("/:id", prayerValidator.RequestID(), prayerController.AdminDeletePrayerRequest)
}
