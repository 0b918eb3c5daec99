package prayerController

import (
	"github.com/gofiber/fiber/v2"

	"prayerhub/database"
	"prayerhub/middleware"
	"prayerhub/models"
	prayerValidator "prayerhub/validators/prayer"
)

// SubmitPrayerRequest accepts a request from the site. No login required;
// the user's ID is attached when they happen to be signed in.
func SubmitPrayerRequest(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPrayerRequest").(*prayerValidator.RequestPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	request := models.PrayerRequest{
		Name:        reqData.Name,
		Email:       reqData.Email,
		Subject:     reqData.Subject,
		Message:     reqData.Message,
		IsAnonymous: reqData.IsAnonymous,
		Status:      models.PrayerStatusOpen,
	}
	if userID, ok := c.Locals("userId").(uint); ok {
		request.UserID = userID
	}
	if request.IsAnonymous {
		request.Name = ""
		request.Email = ""
	}

	if err := database.Database.Db.Create(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit prayer request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Prayer request submitted. We will be praying with you.", request)
}

// AdminListPrayerRequests lists requests, optionally filtered by status
func AdminListPrayerRequests(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.PrayerRequest{}).Where("is_deleted = ?", false)

	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	db.Count(&total)

	var requests []models.PrayerRequest
	if err := db.Order("created_at desc").Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch prayer requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Prayer requests fetched successfully!", fiber.Map{
		"requests": requests,
		"total":    total,
	})
}

// AdminUpdatePrayerStatus moves a request through its lifecycle
func AdminUpdatePrayerStatus(c *fiber.Ctx) error {
	requestID := c.Locals("requestID").(int)

	var request models.PrayerRequest
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", requestID, false).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Prayer request not found!", nil)
	}

	reqData, ok := c.Locals("validatedStatus").(*prayerValidator.StatusPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	request.Status = reqData.Status
	if err := database.Database.Db.Save(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update prayer request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Prayer request updated successfully!", request)
}

// AdminDeletePrayerRequest soft deletes a request
func AdminDeletePrayerRequest(c *fiber.Ctx) error {
	requestID := c.Locals("requestID").(int)

	var request models.PrayerRequest
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", requestID, false).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Prayer request not found!", nil)
	}

	request.IsDeleted = true
	if err := database.Database.Db.Save(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete prayer request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Prayer request deleted successfully!", nil)
}
