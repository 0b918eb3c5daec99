package projectValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"prayerhub/middleware"
)

func ProjectID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Project ID!", nil)
		}

		c.Locals("projectID", id)
		return c.Next()
	}
}

// ProjectPayload is the create/update body for a ministry project
type ProjectPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	VideoURL    string `json:"video_url"`
}

func CreateProject() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProjectPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProject", reqData)
		return c.Next()
	}
}

func UpdateProject() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProjectPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedProjectUpdate", reqData)
		return c.Next()
	}
}
