package eventController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"prayerhub/database"
	"prayerhub/middleware"
	"prayerhub/models"
	"prayerhub/utils"
	eventValidator "prayerhub/validators/event"
)

// GetAllEvents lists published upcoming events
func GetAllEvents(c *fiber.Ctx) error {
	var events []models.Event
	if err := database.Database.Db.
		Where("is_deleted = ? AND is_published = ?", false, true).
		Order("starts_at asc").Find(&events).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch events!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Events fetched successfully!", fiber.Map{
		"events": events,
	})
}

// GetEventDetails returns a single published event
func GetEventDetails(c *fiber.Ctx) error {
	eventID := c.Locals("eventID").(int)

	var event models.Event
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", eventID, false, true).First(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Event not found!", nil)
	}

	var registrationCount int64
	database.Database.Db.Model(&models.EventRegistration{}).
		Where("event_id = ? AND is_deleted = ?", event.ID, false).Count(&registrationCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Event fetched successfully!", fiber.Map{
		"event":              event,
		"registration_count": registrationCount,
	})
}

// RegisterForEvent registers an attendee. Works for guests and logged-in
// users; a logged-in user's ID is attached when present.
func RegisterForEvent(c *fiber.Ctx) error {
	eventID := c.Locals("eventID").(int)

	var event models.Event
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", eventID, false, true).First(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Event not found!", nil)
	}

	if event.StartsAt.Before(time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Event has already started!", nil)
	}

	reqData, ok := c.Locals("validatedRegistration").(*eventValidator.RegistrationPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// One registration per email per event
	var existing models.EventRegistration
	if err := database.Database.Db.Where("event_id = ? AND email = ? AND is_deleted = ?", eventID, reqData.Email, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "This email is already registered for the event!", nil)
	}

	registration := models.EventRegistration{
		EventID: uint(eventID),
		Name:    reqData.Name,
		Email:   reqData.Email,
		Phone:   reqData.Phone,
	}
	if userID, ok := c.Locals("userId").(uint); ok {
		registration.UserID = userID
	}

	if err := database.Database.Db.Create(&registration).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register for event!", nil)
	}

	go func(reg models.EventRegistration, ev models.Event) {
		if err := utils.SendEventRegistrationEmail(reg.Name, reg.Email, ev.Title, ev.StartsAt); err != nil {
			log.Printf("Error sending registration email to %s: %v", reg.Email, err)
		}
	}(registration, event)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registered for event successfully!", registration)
}
