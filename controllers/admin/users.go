package adminController

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"prayerhub/config"
	"prayerhub/database"
	"prayerhub/middleware"
	"prayerhub/models"
	"prayerhub/session"
	"prayerhub/utils"
	adminValidator "prayerhub/validators/admin"
)

// UserList lists accounts with pagination
func UserList(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedUserList").(*struct {
		Page  *int `query:"page"`
		Limit *int `query:"limit"`
	})

	page := 1
	limit := 10
	if reqData != nil && reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.User{}).Where("is_deleted = ?", false)

	var total int64
	db.Count(&total)

	var users []models.User
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user list!", nil)
	}

	response := map[string]interface{}{
		"users": users,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User list fetched successfully!", response)
}

func findTargetUser(c *fiber.Ctx) (*models.User, error) {
	targetID := c.Locals("targetUserID").(int)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetID, false).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ResetUserPassword generates a fresh password for the user and returns it
// once. All of the user's sessions are destroyed.
func ResetUserPassword(c *fiber.Ctx) error {
	user, err := findTargetUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	newPassword := utils.RandomPassword()
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset password!", nil)
	}

	user.Password = string(hashedPassword)
	user.FailedLoginAttempts = 0
	user.IsBlocked = false
	user.BlockedUntil = nil
	if err := database.Database.Db.Save(user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset password!", nil)
	}

	if err := session.Active.DestroyUserSessions(user.ID); err != nil {
		log.Printf("Error destroying sessions for user %d: %v", user.ID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password reset successfully. Share it with the user securely.", fiber.Map{
		"password": newPassword,
	})
}

// ToggleUserActive enables or disables an account. Disabling destroys the
// user's sessions so they are signed out immediately.
func ToggleUserActive(c *fiber.Ctx) error {
	adminID := c.Locals("userId").(uint)

	user, err := findTargetUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if user.ID == adminID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot deactivate your own account!", nil)
	}

	user.IsActive = !user.IsActive
	if err := database.Database.Db.Save(user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	if !user.IsActive {
		if err := session.Active.DestroyUserSessions(user.ID); err != nil {
			log.Printf("Error destroying sessions for user %d: %v", user.ID, err)
		}
	}

	message := "User deactivated successfully!"
	if user.IsActive {
		message = "User activated successfully!"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, user)
}

// ChangeUserRole promotes or demotes an account
func ChangeUserRole(c *fiber.Ctx) error {
	adminID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedRole").(*adminValidator.RolePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := findTargetUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if user.ID == adminID && reqData.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot demote your own account!", nil)
	}

	user.Role = reqData.Role
	if err := database.Database.Db.Save(user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User role updated successfully!", user)
}
