package bookValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"prayerhub/middleware"
)

func BookID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Book ID!", nil)
		}

		c.Locals("bookID", id)
		return c.Next()
	}
}

// BookPayload is the create/update body for a book
type BookPayload struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	CoverURL    string  `json:"cover_url"`
	ASIN        string  `json:"asin"`
	Price       float64 `json:"price"`
}

func CreateBook() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(BookPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.ASIN) == "" {
			errors["asin"] = "ASIN is required!"
		} else if len(reqData.ASIN) != 10 {
			errors["asin"] = "ASIN must be 10 characters!"
		}
		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBook", reqData)
		return c.Next()
	}
}

func UpdateBook() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(BookPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ASIN != "" && len(reqData.ASIN) != 10 {
			errors["asin"] = "ASIN must be 10 characters!"
		}
		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBookUpdate", reqData)
		return c.Next()
	}
}
