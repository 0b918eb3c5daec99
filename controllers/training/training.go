package trainingController

import (
	"github.com/gofiber/fiber/v2"

	"prayerhub/database"
	"prayerhub/middleware"
	"prayerhub/models"
	trainingModels "prayerhub/models/training"
	trainingValidator "prayerhub/validators/training"
)

// GetAllTrainings lists published trainings
func GetAllTrainings(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedTrainingList").(*struct {
		Page  *int `query:"page"`
		Limit *int `query:"limit"`
	})

	page := 1
	limit := 10
	if reqData != nil && reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&trainingModels.Training{}).
		Where("is_deleted = ? AND is_published = ?", false, true)

	var total int64
	db.Count(&total)

	var trainings []trainingModels.Training
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&trainings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch trainings!", nil)
	}

	response := map[string]interface{}{
		"trainings": trainings,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainings fetched successfully!", response)
}

// GetTrainingDetails returns a single published training
func GetTrainingDetails(c *fiber.Ctx) error {
	trainingID := c.Locals("trainingID").(int)

	var training trainingModels.Training
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", trainingID, false, true).First(&training).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training not found!", nil)
	}

	var chapterCount int64
	database.Database.Db.Model(&trainingModels.Chapter{}).
		Where("training_id = ? AND is_deleted = ?", training.ID, false).Count(&chapterCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training fetched successfully!", fiber.Map{
		"training":      training,
		"chapter_count": chapterCount,
	})
}

// EnrollInTraining creates the initial progress row for (user, training).
// Calling it again is a no-op returning the existing row.
func EnrollInTraining(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	trainingID := c.Locals("trainingID").(int)

	var training trainingModels.Training
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", trainingID, false, true).First(&training).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training not found or not published!", nil)
	}

	// Already enrolled: return the existing row unchanged
	var existing trainingModels.Progress
	if err := database.Database.Db.Where("user_id = ? AND training_id = ? AND is_deleted = ?", userID, trainingID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Already enrolled in this training!", existing)
	}

	progress := trainingModels.Progress{
		UserID:     userID,
		TrainingID: uint(trainingID),
		Completed:  false,
		Score:      0,
	}

	if err := database.Database.Db.Create(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in training!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in training successfully!", progress)
}

// RecordProgress upserts the progress row for (user, training). The score is
// client-reported (quiz results come from the client) but range-checked at
// the boundary; a score of 100 also marks the training completed.
func RecordProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	trainingID := c.Locals("trainingID").(int)

	var training trainingModels.Training
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", trainingID, false).First(&training).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training not found!", nil)
	}

	reqData, ok := c.Locals("validatedProgress").(*trainingValidator.ProgressPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var progress trainingModels.Progress
	err := database.Database.Db.Where("user_id = ? AND training_id = ? AND is_deleted = ?", userID, trainingID, false).First(&progress).Error
	if err != nil {
		// No row yet: create one with the given fields
		progress = trainingModels.Progress{
			UserID:     userID,
			TrainingID: uint(trainingID),
		}
	}

	if reqData.Score != nil {
		progress.Score = *reqData.Score
		if progress.Score == 100 {
			progress.Completed = true
		}
	}
	if reqData.Completed != nil {
		progress.Completed = *reqData.Completed
	}

	if err := database.Database.Db.Save(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress recorded successfully!", progress)
}

// GetMyProgress lists the authenticated user's progress rows
func GetMyProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var progressRows []trainingModels.Progress
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("updated_at desc").Find(&progressRows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"progress": progressRows,
	})
}
