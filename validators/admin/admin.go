package adminValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"prayerhub/middleware"
)

func UserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}

		c.Locals("targetUserID", id)
		return c.Next()
	}
}

// RolePayload changes a user's role
type RolePayload struct {
	Role string `json:"role"`
}

func ChangeRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RolePayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Role = strings.ToUpper(strings.TrimSpace(reqData.Role))
		if reqData.Role != "USER" && reqData.Role != "ADMIN" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"role": "Role must be USER or ADMIN!",
			})
		}

		c.Locals("validatedRole", reqData)
		return c.Next()
	}
}

func UserList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `query:"page"`
			Limit *int `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if reqData.Page != nil && *reqData.Page <= 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"page": "Page must be positive!"})
		}
		if reqData.Limit != nil && (*reqData.Limit <= 0 || *reqData.Limit > 100) {
			return middleware.ValidationErrorResponse(c, map[string]string{"limit": "Limit must be between 1 and 100!"})
		}

		c.Locals("validatedUserList", reqData)
		return c.Next()
	}
}
