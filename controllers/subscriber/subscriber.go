package subscriberController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"prayerhub/database"
	"prayerhub/middleware"
	"prayerhub/models"
	"prayerhub/utils"
	subscriberValidator "prayerhub/validators/subscriber"
)

// Subscribe signs an email up for the newsletter and sends a verification
// link. Re-subscribing an unverified address re-issues the link instead of
// failing on the unique email constraint.
func Subscribe(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubscribe").(*subscriberValidator.SubscribePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var existing models.Subscriber
	err := database.Database.Db.Where("email = ?", reqData.Email).First(&existing).Error
	if err == nil {
		if existing.IsVerified && !existing.IsDeleted {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "You are already subscribed.", nil)
		}

		existing.Name = reqData.Name
		existing.IsDeleted = false
		existing.IsVerified = false
		existing.VerifiedAt = nil
		existing.VerifyToken = utils.GenerateToken()
		existing.UnsubscribeToken = utils.GenerateToken()
		if err := database.Database.Db.Save(&existing).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to subscribe!", nil)
		}

		go sendVerification(existing)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Check your inbox to confirm your subscription.", nil)
	}

	subscriber := models.Subscriber{
		Email:            reqData.Email,
		Name:             reqData.Name,
		VerifyToken:      utils.GenerateToken(),
		UnsubscribeToken: utils.GenerateToken(),
	}
	if err := database.Database.Db.Create(&subscriber).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to subscribe!", nil)
	}

	go sendVerification(subscriber)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Check your inbox to confirm your subscription.", nil)
}

func sendVerification(s models.Subscriber) {
	if err := utils.SendSubscriberVerificationEmail(s.Name, s.Email, s.VerifyToken); err != nil {
		log.Printf("Error sending subscriber verification to %s: %v", s.Email, err)
	}
}

// VerifySubscriber confirms a subscription from the emailed link
func VerifySubscriber(c *fiber.Ctx) error {
	token := c.Locals("subscriberToken").(string)

	var subscriber models.Subscriber
	if err := database.Database.Db.Where("verify_token = ? AND is_deleted = ?", token, false).
		First(&subscriber).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Invalid or expired verification link!", nil)
	}

	if !subscriber.IsVerified {
		now := time.Now()
		subscriber.IsVerified = true
		subscriber.VerifiedAt = &now
		if err := database.Database.Db.Save(&subscriber).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify subscription!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscription confirmed. Welcome!", nil)
}

// Unsubscribe removes a subscriber via the emailed link
func Unsubscribe(c *fiber.Ctx) error {
	token := c.Locals("subscriberToken").(string)

	var subscriber models.Subscriber
	if err := database.Database.Db.Where("unsubscribe_token = ? AND is_deleted = ?", token, false).
		First(&subscriber).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Invalid unsubscribe link!", nil)
	}

	subscriber.IsDeleted = true
	if err := database.Database.Db.Save(&subscriber).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to unsubscribe!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "You have been unsubscribed.", nil)
}

// AdminListSubscribers lists subscribers, optionally only verified ones
func AdminListSubscribers(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.Subscriber{}).Where("is_deleted = ?", false)

	if c.Query("verified") == "true" {
		db = db.Where("is_verified = ?", true)
	}

	var total int64
	db.Count(&total)

	var subscribers []models.Subscriber
	if err := db.Order("created_at desc").Find(&subscribers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subscribers!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscribers fetched successfully!", fiber.Map{
		"subscribers": subscribers,
		"total":       total,
	})
}
