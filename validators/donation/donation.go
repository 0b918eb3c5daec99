package donationValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"prayerhub/middleware"
)

// DonationPayload starts a donation. Amount is in the smallest currency
// unit (cents).
type DonationPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Note     string `json:"note"`
}

func CreateDonation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(DonationPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Amount < 100 {
			errors["amount"] = "Minimum donation is 100 (one unit of currency)!"
		}
		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required!"
		}
		if reqData.Currency == "" {
			reqData.Currency = "usd"
		} else if len(reqData.Currency) != 3 {
			errors["currency"] = "Currency must be a 3-letter code!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Currency = strings.ToLower(reqData.Currency)
		c.Locals("validatedDonation", reqData)
		return c.Next()
	}
}

// ProviderRefPayload carries the provider-side id for confirm/capture calls
type ProviderRefPayload struct {
	ProviderID string `json:"provider_id"`
}

func ProviderRef() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProviderRefPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.ProviderID) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"provider_id": "Provider ID is required!"})
		}

		c.Locals("validatedProviderRef", reqData)
		return c.Next()
	}
}
