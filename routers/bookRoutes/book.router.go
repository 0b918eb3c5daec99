package bookRoutes

import (
	"github.com/gofiber/fiber/v2"

	bookController "prayerhub/controllers/book"
	"prayerhub/middleware"
	bookValidator "prayerhub/validators/book"
)

// SetupBookRoutes sets up public storefront and admin book routes
func SetupBookRoutes(app *fiber.App) {
	group := app.Group("/api/books")

	group.Get("/", bookController.GetAllBooks)
	group.Get("/:id", bookValidator.BookID(), bookController.GetBookDetails)

	adminGroup := app.Group("/api/admin/books", middleware.RequireAuth, middleware.RequireAdmin)
	adminGroup.Post("/", bookValidator.CreateBook(), bookController.AdminCreateBook)
	adminGroup.Get("/", bookController.AdminListBooks)
	adminGroup.Put("/:id", bookValidator.BookID(), bookValidator.UpdateBook(), bookController.AdminUpdateBook)
	adminGroup.Delete("/:id", bookValidator.BookID(), bookController.AdminDeleteBook)
	adminGroup.Post("/:id/publish", bookValidator.BookID(), bookController.AdminPublishBook)
}
