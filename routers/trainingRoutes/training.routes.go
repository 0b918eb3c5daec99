package trainingRoutes

import (
	"github.com/gofiber/fiber/v2"

	trainingController "prayerhub/controllers/training"
	"prayerhub/middleware"
	trainingValidator "prayerhub/validators/training"
)

// SetupTrainingRoutes sets up all user-facing training routes
func SetupTrainingRoutes(app *fiber.App) {
	group := app.Group("/api/trainings")

	group.Get("/", trainingValidator.TrainingList(), trainingController.GetAllTrainings)
	group.Get("/:id", trainingValidator.TrainingID(), trainingController.GetTrainingDetails)
	group.Get("/:id/content", middleware.RequireAuth, trainingValidator.TrainingID(), trainingController.GetTrainingContent)

	group.Post("/:id/enroll", middleware.RequireAuth, trainingValidator.TrainingID(), trainingController.EnrollInTraining)
	group.Post("/:id/progress", middleware.RequireAuth, trainingValidator.TrainingID(), trainingValidator.RecordProgress(), trainingController.RecordProgress)

	app.Get("/api/me/progress", middleware.RequireAuth, trainingController.GetMyProgress)
}

// SetupAdminTrainingRoutes sets up all admin training management routes
func SetupAdminTrainingRoutes(app *fiber.App) {
	group := app.Group("/api/admin/trainings", middleware.RequireAuth, middleware.RequireAdmin)

	group.Post("/", trainingValidator.CreateTraining(), trainingController.AdminCreateTraining)
	group.Get("/", trainingValidator.TrainingList(), trainingController.AdminListTrainings)
	group.Put("/:id", trainingValidator.TrainingID(), trainingValidator.UpdateTraining(), trainingController.AdminUpdateTraining)
	group.Delete("/:id", trainingValidator.TrainingID(), trainingController.AdminDeleteTraining)
	group.Post("/:id/publish", trainingValidator.TrainingID(), trainingController.AdminPublishTraining)
	group.Put("/:id/structure", trainingValidator.TrainingID(), trainingValidator.ReplaceStructure(), trainingController.ReplaceTrainingStructure)
	group.Get("/:id/enrollments", trainingValidator.TrainingID(), trainingController.AdminGetTrainingEnrollments)
}
