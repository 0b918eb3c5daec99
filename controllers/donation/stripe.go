package donationController

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"

	"prayerhub/config"
	"prayerhub/database"
	"prayerhub/middleware"
	"prayerhub/models"
	"prayerhub/utils"
	donationValidator "prayerhub/validators/donation"
)

// newDonationRecord builds the local row for a donation being started
func newDonationRecord(c *fiber.Ctx, reqData *donationValidator.DonationPayload, provider string) models.Donation {
	donation := models.Donation{
		Name:      reqData.Name,
		Email:     reqData.Email,
		Amount:    reqData.Amount,
		Currency:  reqData.Currency,
		Provider:  provider,
		Reference: utils.GenerateToken(),
		Status:    models.DonationStatusPending,
		Note:      reqData.Note,
	}
	if userID, ok := c.Locals("userId").(uint); ok {
		donation.UserID = userID
	}
	return donation
}

// CreateStripeIntent creates a Stripe PaymentIntent and records the
// donation as PENDING. The client confirms the payment with the returned
// client secret and then calls ConfirmStripeDonation.
func CreateStripeIntent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedDonation").(*donationValidator.DonationPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	client := resty.New()
	resp, err := client.R().
		SetAuthToken(config.AppConfig.StripeSecretKey).
		SetFormData(map[string]string{
			"amount":                 fmt.Sprintf("%d", reqData.Amount),
			"currency":               reqData.Currency,
			"description":            "Donation",
			"receipt_email":          reqData.Email,
			"payment_method_types[]": "card",
		}).
		Post(config.AppConfig.StripeApiURL + "/payment_intents")
	if err != nil {
		log.Printf("Stripe PaymentIntent request failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to start card donation!", nil)
	}
	if resp.StatusCode() != 200 {
		log.Printf("Stripe PaymentIntent rejected: %s", resp.String())
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Card donation was rejected by the payment provider!", nil)
	}

	var intent struct {
		ID           string `json:"id"`
		ClientSecret string `json:"client_secret"`
		Status       string `json:"status"`
	}
	if err := json.Unmarshal(resp.Body(), &intent); err != nil {
		log.Printf("Failed to parse Stripe response: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Invalid payment provider response!", nil)
	}

	donation := newDonationRecord(c, reqData, models.DonationProviderStripe)
	donation.ProviderID = intent.ID
	if err := database.Database.Db.Create(&donation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record donation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Donation started. Confirm the payment to complete it.", fiber.Map{
		"donation":      donation,
		"client_secret": intent.ClientSecret,
	})
}

// ConfirmStripeDonation checks the PaymentIntent status with Stripe and
// completes or fails the local donation row accordingly
func ConfirmStripeDonation(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProviderRef").(*donationValidator.ProviderRefPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var donation models.Donation
	if err := database.Database.Db.Where("provider_id = ? AND provider = ? AND is_deleted = ?",
		reqData.ProviderID, models.DonationProviderStripe, false).First(&donation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Donation not found!", nil)
	}

	if donation.Status == models.DonationStatusCompleted {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Donation already completed.", donation)
	}

	client := resty.New()
	resp, err := client.R().
		SetAuthToken(config.AppConfig.StripeSecretKey).
		Get(config.AppConfig.StripeApiURL + "/payment_intents/" + reqData.ProviderID)
	if err != nil {
		log.Printf("Stripe PaymentIntent lookup failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to verify payment!", nil)
	}

	var intent struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(resp.Body(), &intent); err != nil || resp.StatusCode() != 200 {
		log.Printf("Failed to parse Stripe lookup response: %s", resp.String())
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Invalid payment provider response!", nil)
	}

	if intent.Status != "succeeded" {
		donation.Status = models.DonationStatusFailed
		database.Database.Db.Save(&donation)
		return middleware.JsonResponse(c, fiber.StatusPaymentRequired, false, "Payment has not succeeded!", fiber.Map{
			"provider_status": intent.Status,
		})
	}

	donation.Status = models.DonationStatusCompleted
	if err := database.Database.Db.Save(&donation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record donation!", nil)
	}

	go func(d models.Donation) {
		if err := utils.SendDonationReceiptEmail(d.Name, d.Email, d.Reference, d.Amount, d.Currency); err != nil {
			log.Printf("Error sending donation receipt to %s: %v", d.Email, err)
		}
	}(donation)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thank you for your donation!", donation)
}
