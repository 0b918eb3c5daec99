package prayerValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"prayerhub/middleware"
	"prayerhub/models"
)

func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Request ID!", nil)
		}

		c.Locals("requestID", id)
		return c.Next()
	}
}

// RequestPayload is the prayer request submission body
type RequestPayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	IsAnonymous bool   `json:"is_anonymous"`
}

func SubmitRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RequestPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		}
		if !reqData.IsAnonymous && strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required unless the request is anonymous!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPrayerRequest", reqData)
		return c.Next()
	}
}

func isValidStatus(s string) bool {
	switch s {
	case models.PrayerStatusOpen, models.PrayerStatusPraying, models.PrayerStatusAnswered, models.PrayerStatusClosed:
		return true
	}
	return false
}

// StatusPayload is the admin status update body
type StatusPayload struct {
	Status string `json:"status"`
}

func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(StatusPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if !isValidStatus(reqData.Status) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be one of OPEN, PRAYING, ANSWERED, CLOSED!",
			})
		}

		c.Locals("validatedStatus", reqData)
		return c.Next()
	}
}
