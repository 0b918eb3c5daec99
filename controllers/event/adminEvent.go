package eventController

import (
	"github.com/gofiber/fiber/v2"

	"prayerhub/database"
	"prayerhub/middleware"
	"prayerhub/models"
	eventValidator "prayerhub/validators/event"
)

// AdminCreateEvent creates a new event (unpublished)
func AdminCreateEvent(c *fiber.Ctx) error {
	admin, ok := c.Locals("adminUser").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedEvent").(*eventValidator.EventPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	event := models.Event{
		Title:       reqData.Title,
		Description: reqData.Description,
		Location:    reqData.Location,
		ImageURL:    reqData.ImageURL,
		StartsAt:    *reqData.StartsAt,
		CreatedBy:   admin.ID,
	}
	if reqData.EndsAt != nil {
		event.EndsAt = *reqData.EndsAt
	}

	if err := database.Database.Db.Create(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create event!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Event created successfully!", event)
}

// AdminUpdateEvent edits an event in place
func AdminUpdateEvent(c *fiber.Ctx) error {
	eventID := c.Locals("eventID").(int)

	var event models.Event
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", eventID, false).First(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Event not found!", nil)
	}

	reqData, ok := c.Locals("validatedEventUpdate").(*eventValidator.EventPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		event.Title = reqData.Title
	}
	if reqData.Description != "" {
		event.Description = reqData.Description
	}
	if reqData.Location != "" {
		event.Location = reqData.Location
	}
	if reqData.ImageURL != "" {
		event.ImageURL = reqData.ImageURL
	}
	if reqData.StartsAt != nil {
		event.StartsAt = *reqData.StartsAt
	}
	if reqData.EndsAt != nil {
		event.EndsAt = *reqData.EndsAt
	}

	if err := database.Database.Db.Save(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update event!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Event updated successfully!", event)
}

// AdminDeleteEvent soft deletes an event and its registrations
func AdminDeleteEvent(c *fiber.Ctx) error {
	eventID := c.Locals("eventID").(int)

	var event models.Event
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", eventID, false).First(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Event not found!", nil)
	}

	tx := database.Database.Db.Begin()

	event.IsDeleted = true
	if err := tx.Save(&event).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete event!", nil)
	}

	if err := tx.Model(&models.EventRegistration{}).Where("event_id = ?", eventID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete event registrations!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Event deleted successfully!", nil)
}

// AdminListEvents lists all events including drafts
func AdminListEvents(c *fiber.Ctx) error {
	var events []models.Event
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("starts_at desc").Find(&events).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch events!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Events fetched successfully!", fiber.Map{
		"events": events,
	})
}

// AdminPublishEvent toggles an event live
func AdminPublishEvent(c *fiber.Ctx) error {
	eventID := c.Locals("eventID").(int)

	var event models.Event
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", eventID, false).First(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Event not found!", nil)
	}

	event.IsPublished = !event.IsPublished
	if err := database.Database.Db.Save(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update event!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Event publish state updated!", event)
}

// AdminGetEventRegistrations lists registrations for an event
func AdminGetEventRegistrations(c *fiber.Ctx) error {
	eventID := c.Locals("eventID").(int)

	var event models.Event
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", eventID, false).First(&event).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Event not found!", nil)
	}

	var registrations []models.EventRegistration
	if err := database.Database.Db.Where("event_id = ? AND is_deleted = ?", eventID, false).
		Order("created_at desc").Find(&registrations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch registrations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registrations fetched successfully!", fiber.Map{
		"registrations": registrations,
		"total":         len(registrations),
	})
}
