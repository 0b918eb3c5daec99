package adminRoutes

import (
	"github.com/gofiber/fiber/v2"

	adminController "prayerhub/controllers/admin"
	"prayerhub/middleware"
	adminValidator "prayerhub/validators/admin"
)

// SetupAdminRoutes sets up admin user management routes
func SetupAdminRoutes(app *fiber.App) {
	group := app.Group("/api/admin/users", middleware.RequireAuth, middleware.RequireAdmin)

	group.Get("/", adminValidator.UserList(), adminController.UserList)
	group.Post("/:id/reset-password", adminValidator.UserID(), adminController.ResetUserPassword)
	group.Post("/:id/toggle-active", adminValidator.UserID(), adminController.ToggleUserActive)
	group.Put("/:id/role", adminValidator.UserID(), adminValidator.ChangeRole(), adminController.ChangeUserRole)
}
