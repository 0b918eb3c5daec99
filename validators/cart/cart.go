package cartValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"prayerhub/middleware"
)

// AddItemPayload adds or re-quantifies a book in the cart
type AddItemPayload struct {
	BookID   uint `json:"book_id"`
	Quantity int  `json:"quantity"`
}

func AddItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AddItemPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.BookID == 0 {
			errors["book_id"] = "Book ID is required!"
		}
		if reqData.Quantity < 1 {
			errors["quantity"] = "Quantity must be at least 1!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCartItem", reqData)
		return c.Next()
	}
}

func ItemID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Cart Item ID!", nil)
		}

		c.Locals("itemID", id)
		return c.Next()
	}
}

func OrderID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Order ID!", nil)
		}

		c.Locals("orderID", id)
		return c.Next()
	}
}
