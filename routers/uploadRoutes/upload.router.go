package uploadRoutes

import (
	"github.com/gofiber/fiber/v2"

	uploadController "prayerhub/controllers/upload"
	"prayerhub/middleware"
)

// SetupUploadRoutes sets up the admin file upload route
func SetupUploadRoutes(app *fiber.App) {
	app.Post("/api/admin/uploads", middleware.RequireAuth, middleware.RequireAdmin, uploadController.UploadFile)
}
