package eventValidator

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"prayerhub/middleware"
)

// EventID validates the :id route param
func EventID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Event ID!", nil)
		}

		c.Locals("eventID", id)
		return c.Next()
	}
}

// EventPayload is the create/update body for an event
type EventPayload struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	ImageURL    string     `json:"image_url"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}

func CreateEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EventPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.StartsAt == nil {
			errors["starts_at"] = "Start time is required!"
		}
		if reqData.StartsAt != nil && reqData.EndsAt != nil && reqData.EndsAt.Before(*reqData.StartsAt) {
			errors["ends_at"] = "End time must be after start time!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEvent", reqData)
		return c.Next()
	}
}

func UpdateEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EventPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.StartsAt != nil && reqData.EndsAt != nil && reqData.EndsAt.Before(*reqData.StartsAt) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"ends_at": "End time must be after start time!",
			})
		}

		c.Locals("validatedEventUpdate", reqData)
		return c.Next()
	}
}

// RegistrationPayload is the attendee registration body
type RegistrationPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func RegisterForEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegistrationPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegistration", reqData)
		return c.Next()
	}
}
