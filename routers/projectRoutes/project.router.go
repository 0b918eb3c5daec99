package projectRoutes

import (
	"github.com/gofiber/fiber/v2"

	projectController "prayerhub/controllers/project"
	"prayerhub/middleware"
	projectValidator "prayerhub/validators/project"
)

// SetupProjectRoutes sets up public and admin ministry project routes
func SetupProjectRoutes(app *fiber.App) {
	group := app.Group("/api/projects")

	group.Get("/", projectController.GetAllProjects)
	group.Get("/:id", projectValidator.ProjectID(), projectController.GetProjectDetails)

	adminGroup := app.Group("/api/admin/projects", middleware.RequireAuth, middleware.RequireAdmin)
	adminGroup.Post("/", projectValidator.CreateProject(), projectController.AdminCreateProject)
	adminGroup.Get("/", projectController.AdminListProjects)
	adminGroup.Put("/:id", projectValidator.ProjectID(), projectValidator.UpdateProject(), projectController.AdminUpdateProject)
	adminGroup.Delete("/:id", projectValidator.ProjectID(), projectController.AdminDeleteProject)
	adminGroup.Post("/:id/publish", projectValidator.ProjectID(), projectController.AdminPublishProject)
}
