package trainingValidator

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"prayerhub/middleware"
)

// SectionPayload is one leaf content unit in a structure replace
type SectionPayload struct {
	Title    string `json:"title" validate:"required,min=1,max=255"`
	Content  string `json:"content"`
	VideoURL string `json:"video_url" validate:"omitempty,url"`
	FileURL  string `json:"file_url"`
}

// ChapterPayload is one chapter with its ordered sections
type ChapterPayload struct {
	Title    string           `json:"title" validate:"required,min=1,max=255"`
	Sections []SectionPayload `json:"sections" validate:"dive"`
}

// StructurePayload is the full replacement structure for a training. Order
// is taken from array position; any order indices in the payload are ignored.
type StructurePayload struct {
	Chapters []ChapterPayload `json:"chapters" validate:"dive"`
}

var validate = validator.New()

// ReplaceStructure validates the whole nested payload before any persistence
// runs. Malformed nesting is rejected outright, nothing is partially applied.
func ReplaceStructure() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(StructurePayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Chapters == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"chapters": "Chapters array is required (may be empty)!",
			})
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fe := range err.(validator.ValidationErrors) {
				errors[fe.Namespace()] = "Failed validation: " + fe.Tag()
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStructure", reqData)
		return c.Next()
	}
}
