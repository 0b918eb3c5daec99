package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"prayerhub/database"
	"prayerhub/models"
)

// logReminder logs reminder scheduler events with timestamp
func logReminder(message string) {
	log.Printf("[EVENT-REMINDER %s] %s", time.Now().Format(time.RFC3339), message)
}

// sendDueReminders mails everyone registered for a published event starting
// within the next 24 hours who has not been reminded yet
func sendDueReminders() {
	db := database.Database.Db
	now := time.Now()
	windowEnd := now.Add(24 * time.Hour)

	var events []models.Event
	if err := db.Where("is_deleted = ? AND is_published = ? AND starts_at > ? AND starts_at <= ?",
		false, true, now, windowEnd).Find(&events).Error; err != nil {
		logReminder("Error fetching upcoming events: " + err.Error())
		return
	}

	for _, event := range events {
		var registrations []models.EventRegistration
		if err := db.Where("event_id = ? AND is_deleted = ? AND reminder_at IS NULL", event.ID, false).
			Find(&registrations).Error; err != nil {
			logReminder("Error fetching registrations for event " + event.Title + ": " + err.Error())
			continue
		}

		for _, reg := range registrations {
			if err := SendEventReminderEmail(reg.Name, reg.Email, event.Title, event.StartsAt); err != nil {
				logReminder("Error sending reminder to " + reg.Email + ": " + err.Error())
				continue
			}
			sentAt := time.Now()
			reg.ReminderAt = &sentAt
			db.Save(&reg)
		}

		if len(registrations) > 0 {
			logReminder("Sent reminders for event: " + event.Title)
		}
	}
}

// StartEventReminderScheduler runs the reminder job every hour
func StartEventReminderScheduler() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("0 * * * *", sendDueReminders)
	if err != nil {
		logReminder("Failed to schedule reminder job: " + err.Error())
		return c
	}

	c.Start()
	logReminder("Event reminder scheduler started")
	return c
}
