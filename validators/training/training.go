package trainingValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"prayerhub/middleware"
	trainingModels "prayerhub/models/training"
)

// TrainingID validates the :id route param and stores it as trainingID
func TrainingID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Training ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Training ID!", nil)
		}

		c.Locals("trainingID", id)
		return c.Next()
	}
}

// TrainingPayload is the create/update body for a training
type TrainingPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	MediaURL    string `json:"media_url"`
}

func isValidType(t string) bool {
	switch t {
	case trainingModels.TypeVideo, trainingModels.TypeDocument, trainingModels.TypeQuiz:
		return true
	}
	return false
}

func CreateTraining() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TrainingPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		if reqData.Type == "" {
			reqData.Type = trainingModels.TypeVideo
		} else if !isValidType(reqData.Type) {
			errors["type"] = "Type must be one of VIDEO, DOCUMENT, QUIZ!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTraining", reqData)
		return c.Next()
	}
}

func UpdateTraining() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TrainingPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Type != "" && !isValidType(reqData.Type) {
			errors["type"] = "Type must be one of VIDEO, DOCUMENT, QUIZ!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTrainingUpdate", reqData)
		return c.Next()
	}
}

// ProgressPayload is the body for recording progress. Pointer fields so a
// missing field is distinguishable from a zero value.
type ProgressPayload struct {
	Completed *bool `json:"completed"`
	Score     *int  `json:"score"`
}

func RecordProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProgressPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Completed == nil && reqData.Score == nil {
			errors["body"] = "At least one of completed or score is required!"
		}

		if reqData.Score != nil && (*reqData.Score < 0 || *reqData.Score > 100) {
			errors["score"] = "Score must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

func TrainingList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `query:"page"`
			Limit *int `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}

		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTrainingList", reqData)
		return c.Next()
	}
}
