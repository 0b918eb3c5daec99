package donationController

import (
	"github.com/gofiber/fiber/v2"

	"prayerhub/database"
	"prayerhub/middleware"
	"prayerhub/models"
)

// GetMyDonations lists the signed-in user's donations
func GetMyDonations(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var donations []models.Donation
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").
		Find(&donations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch donations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Donations fetched successfully!", donations)
}

// AdminListDonations lists all donations, optionally filtered by status
// or provider
func AdminListDonations(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.Donation{}).Where("is_deleted = ?", false)

	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}
	if provider := c.Query("provider"); provider != "" {
		db = db.Where("provider = ?", provider)
	}

	var total int64
	db.Count(&total)

	var completedTotal int64
	database.Database.Db.Model(&models.Donation{}).
		Where("status = ? AND is_deleted = ?", models.DonationStatusCompleted, false).
		Select("COALESCE(SUM(amount), 0)").Scan(&completedTotal)

	var donations []models.Donation
	if err := db.Order("created_at desc").Find(&donations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch donations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Donations fetched successfully!", fiber.Map{
		"donations":        donations,
		"total":            total,
		"completed_amount": completedTotal,
	})
}
