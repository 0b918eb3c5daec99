package trainingController

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"prayerhub/database"
	"prayerhub/middleware"
	"prayerhub/models"
	trainingModels "prayerhub/models/training"
	trainingValidator "prayerhub/validators/training"
)

// AdminCreateTraining creates a new training owned by the admin
func AdminCreateTraining(c *fiber.Ctx) error {
	admin, ok := c.Locals("adminUser").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedTraining").(*trainingValidator.TrainingPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	training := trainingModels.Training{
		Title:       reqData.Title,
		Description: reqData.Description,
		Type:        reqData.Type,
		MediaURL:    reqData.MediaURL,
		CreatedBy:   admin.ID,
	}

	if err := database.Database.Db.Create(&training).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create training!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Training created successfully!", training)
}

// AdminUpdateTraining edits a training in place
func AdminUpdateTraining(c *fiber.Ctx) error {
	trainingID := c.Locals("trainingID").(int)

	var training trainingModels.Training
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", trainingID, false).First(&training).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training not found!", nil)
	}

	reqData, ok := c.Locals("validatedTrainingUpdate").(*trainingValidator.TrainingPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		training.Title = reqData.Title
	}
	if reqData.Description != "" {
		training.Description = reqData.Description
	}
	if reqData.Type != "" {
		training.Type = reqData.Type
	}
	if reqData.MediaURL != "" {
		training.MediaURL = reqData.MediaURL
	}

	if err := database.Database.Db.Save(&training).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update training!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training updated successfully!", training)
}

// AdminDeleteTraining soft deletes a training and its whole chapter/section
// tree in one transaction
func AdminDeleteTraining(c *fiber.Ctx) error {
	trainingID := c.Locals("trainingID").(int)

	var training trainingModels.Training
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", trainingID, false).First(&training).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training not found!", nil)
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		var chapterIDs []uint
		if err := tx.Model(&trainingModels.Chapter{}).
			Where("training_id = ? AND is_deleted = ?", training.ID, false).
			Pluck("id", &chapterIDs).Error; err != nil {
			return err
		}

		if len(chapterIDs) > 0 {
			if err := tx.Model(&trainingModels.Section{}).
				Where("chapter_id IN ?", chapterIDs).
				Update("is_deleted", true).Error; err != nil {
				return err
			}
			if err := tx.Model(&trainingModels.Chapter{}).
				Where("training_id = ?", training.ID).
				Update("is_deleted", true).Error; err != nil {
				return err
			}
		}

		training.IsDeleted = true
		return tx.Save(&training).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete training!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training deleted successfully!", nil)
}

// AdminListTrainings lists all trainings including drafts
func AdminListTrainings(c *fiber.Ctx) error {
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

	db := database.Database.Db.Model(&trainingModels.Training{}).Where("is_deleted = ?", false)

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

// AdminPublishTraining toggles a training live
func AdminPublishTraining(c *fiber.Ctx) error {
	trainingID := c.Locals("trainingID").(int)

	var training trainingModels.Training
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", trainingID, false).First(&training).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training not found!", nil)
	}

	training.IsPublished = !training.IsPublished
	if err := database.Database.Db.Save(&training).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update training!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training publish state updated!", training)
}

// AdminGetTrainingEnrollments lists enrollments for a training
func AdminGetTrainingEnrollments(c *fiber.Ctx) error {
	trainingID := c.Locals("trainingID").(int)

	var training trainingModels.Training
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", trainingID, false).First(&training).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training not found!", nil)
	}

	var progressRows []trainingModels.Progress
	if err := database.Database.Db.Where("training_id = ? AND is_deleted = ?", trainingID, false).
		Order("created_at desc").Find(&progressRows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	var completed int64
	database.Database.Db.Model(&trainingModels.Progress{}).
		Where("training_id = ? AND is_deleted = ? AND completed = ?", trainingID, false, true).Count(&completed)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments":     progressRows,
		"total":           len(progressRows),
		"completed_count": completed,
	})
}
