package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"prayerhub/config"
)

// SendEmail delivers one HTML email through SendGrid. Failures are logged
// and returned; callers decide whether delivery is fatal (it usually isn't).
func SendEmail(toName, toEmail, subject, htmlBody string) error {
	if config.AppConfig.SendGridKey == "" {
		log.Printf("Email skipped (no SendGrid key): %s -> %s", subject, toEmail)
		return nil
	}

	from := sgmail.NewEmail(config.AppConfig.SenderName, config.AppConfig.EmailSender)
	to := sgmail.NewEmail(toName, toEmail)
	message := sgmail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

// getEmailTemplate wraps body content in the ministry's email layout
func getEmailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
		<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
			<h2 style="color: #333333; text-align: center;">%s</h2>
			%s
			<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">%s</p>
		</div>
	</body>
	</html>
	`, title, bodyContent, config.AppConfig.SenderName)
}

// SendWelcomeEmail greets a newly registered user
func SendWelcomeEmail(name, email string) error {
	body := fmt.Sprintf(`
		<p style="font-size: 16px; color: #555555;">Dear %s,</p>
		<p style="font-size: 16px; color: #555555;">Welcome! Your account has been created. You can now enroll in trainings, register for prayer events and support our projects.</p>
	`, name)
	return SendEmail(name, email, "Welcome to "+config.AppConfig.SenderName, getEmailTemplate("Welcome!", body))
}

// SendVerificationOTPEmail carries the account email verification code
func SendVerificationOTPEmail(name, email, code string) error {
	body := fmt.Sprintf(`
		<p style="font-size: 16px; color: #555555;">Dear %s,</p>
		<p style="font-size: 16px; color: #555555;">Use this code to verify your email address:</p>
		<h2 style="text-align: center; color: #4CAF50; letter-spacing: 4px; margin: 20px 0;">%s</h2>
		<p style="font-size: 14px; color: #999999;">The code expires in 10 minutes.</p>
	`, name, code)
	return SendEmail(name, email, "Verify your email", getEmailTemplate("Verify Your Email", body))
}

// SendSubscriberVerificationEmail carries the email-verify link
func SendSubscriberVerificationEmail(name, email, token string) error {
	link := fmt.Sprintf("%s/api/subscribers/verify/%s", config.AppConfig.BaseURL, token)
	body := fmt.Sprintf(`
		<p style="font-size: 16px; color: #555555;">Please confirm your subscription by clicking the link below:</p>
		<p style="text-align: center;"><a href="%s" style="font-size: 16px; color: #4CAF50;">Confirm subscription</a></p>
		<p style="font-size: 14px; color: #999999;">If you did not subscribe, you can ignore this email.</p>
	`, link)
	return SendEmail(name, email, "Confirm your subscription", getEmailTemplate("Confirm your subscription", body))
}

// SendEventRegistrationEmail confirms an event registration
func SendEventRegistrationEmail(name, email, eventTitle string, startsAt time.Time) error {
	body := fmt.Sprintf(`
		<p style="font-size: 16px; color: #555555;">Dear %s,</p>
		<p style="font-size: 16px; color: #555555;">You are registered for:</p>
		<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
		<p style="font-size: 14px; color: #666666; text-align: center;">Starting %s</p>
	`, name, eventTitle, startsAt.Format("Monday, January 2 2006 at 15:04"))
	return SendEmail(name, email, "Event registration confirmed", getEmailTemplate("Registration Confirmed", body))
}

// SendEventReminderEmail reminds a registrant the day before an event
func SendEventReminderEmail(name, email, eventTitle string, startsAt time.Time) error {
	body := fmt.Sprintf(`
		<p style="font-size: 16px; color: #555555;">Dear %s,</p>
		<p style="font-size: 16px; color: #555555;">A reminder that this event starts soon:</p>
		<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
		<p style="font-size: 14px; color: #666666; text-align: center;">Starting %s</p>
	`, name, eventTitle, startsAt.Format("Monday, January 2 2006 at 15:04"))
	return SendEmail(name, email, "Reminder: "+eventTitle, getEmailTemplate("Event Reminder", body))
}

// SendDonationReceiptEmail thanks a donor after a completed gift
func SendDonationReceiptEmail(name, email, reference string, amount int64, currency string) error {
	body := fmt.Sprintf(`
		<p style="font-size: 16px; color: #555555;">Dear %s,</p>
		<p style="font-size: 16px; color: #555555;">Thank you for your generous gift of <strong>%.2f %s</strong>.</p>
		<p style="font-size: 14px; color: #666666;">Reference: %s</p>
	`, name, float64(amount)/100, currency, reference)
	return SendEmail(name, email, "Thank you for your donation", getEmailTemplate("Thank You!", body))
}
