package subscriberValidator

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"prayerhub/middleware"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// SubscribePayload is the newsletter signup body
type SubscribePayload struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func Subscribe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubscribePayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))
		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		} else if !emailRegex.MatchString(reqData.Email) {
			errors["email"] = "Invalid email address!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubscribe", reqData)
		return c.Next()
	}
}

// Token validates the opaque token carried in verify and unsubscribe links
func Token() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := strings.TrimSpace(c.Params("token"))
		if len(token) != 32 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid token!", nil)
		}

		c.Locals("subscriberToken", token)
		return c.Next()
	}
}
