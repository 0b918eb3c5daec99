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

// ChapterWithSections is a chapter with its ordered sections nested in
type ChapterWithSections struct {
	trainingModels.Chapter
	Sections []trainingModels.Section `json:"sections"`
}

// buildContentTree fetches the full chapter/section tree for a training,
// ordered by each entity's stored order index.
func buildContentTree(db *gorm.DB, trainingID uint) ([]ChapterWithSections, error) {
	var chapters []trainingModels.Chapter
	if err := db.Where("training_id = ? AND is_deleted = ?", trainingID, false).
		Order("order_index asc").Find(&chapters).Error; err != nil {
		return nil, err
	}

	tree := make([]ChapterWithSections, len(chapters))
	for i, chapter := range chapters {
		sections := []trainingModels.Section{}
		if err := db.Where("chapter_id = ? AND is_deleted = ?", chapter.ID, false).
			Order("order_index asc").Find(&sections).Error; err != nil {
			return nil, err
		}
		tree[i] = ChapterWithSections{Chapter: chapter, Sections: sections}
	}
	return tree, nil
}

// GetTrainingContent returns the nested chapters/sections structure
func GetTrainingContent(c *fiber.Ctx) error {
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

	chapters, err := buildContentTree(database.Database.Db, training.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch training content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training content fetched successfully!", fiber.Map{
		"training": training,
		"chapters": chapters,
	})
}

// ReplaceTrainingStructure replaces the whole chapter/section tree of a
// training with the supplied payload, inside one transaction. Chapters and
// sections not present in the payload are gone afterwards; IDs are
// regenerated. Order indices come from array position.
func ReplaceTrainingStructure(c *fiber.Ctx) error {
	trainingID := c.Locals("trainingID").(int)

	var training trainingModels.Training
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", trainingID, false).First(&training).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Training not found!", nil)
	}

	reqData, ok := c.Locals("validatedStructure").(*trainingValidator.StructurePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		// Collect current chapter IDs and retire their sections first
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

		// Insert the new structure in payload order
		for ci, chapterData := range reqData.Chapters {
			chapter := trainingModels.Chapter{
				TrainingID: training.ID,
				Title:      chapterData.Title,
				OrderIndex: ci,
			}
			if err := tx.Create(&chapter).Error; err != nil {
				return err
			}

			for si, sectionData := range chapterData.Sections {
				section := trainingModels.Section{
					ChapterID:  chapter.ID,
					Title:      sectionData.Title,
					Content:    sectionData.Content,
					VideoURL:   sectionData.VideoURL,
					FileURL:    sectionData.FileURL,
					OrderIndex: si,
				}
				if err := tx.Create(&section).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to replace training structure!", nil)
	}

	chapters, err := buildContentTree(database.Database.Db, training.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch training content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Training structure replaced successfully!", fiber.Map{
		"chapters": chapters,
	})
}
