package donationController

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"

	"prayerhub/config"
	"prayerhub/database"
	"prayerhub/middleware"
	"prayerhub/models"
	"prayerhub/utils"
	donationValidator "prayerhub/validators/donation"
)

// paypalAccessToken exchanges client credentials for an API token
func paypalAccessToken() (string, error) {
	client := resty.New()
	resp, err := client.R().
		SetBasicAuth(config.AppConfig.PayPalClientID, config.AppConfig.PayPalSecret).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		Post(config.AppConfig.PayPalApiURL + "/v1/oauth2/token")
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		log.Printf("PayPal auth failed: %s", resp.String())
		return "", fmt.Errorf("paypal auth returned status %d", resp.StatusCode())
	}

	var auth struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(resp.Body(), &auth); err != nil {
		return "", err
	}
	return auth.AccessToken, nil
}

// CreatePayPalOrder creates a PayPal order and records the donation as
// PENDING. The client approves the order and then calls CapturePayPalOrder.
func CreatePayPalOrder(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedDonation").(*donationValidator.DonationPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	token, err := paypalAccessToken()
	if err != nil {
		log.Printf("PayPal token exchange failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to reach PayPal!", nil)
	}

	orderBody := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{
			{
				"amount": map[string]string{
					"currency_code": strings.ToUpper(reqData.Currency),
					"value":         fmt.Sprintf("%.2f", float64(reqData.Amount)/100),
				},
				"description": "Donation",
			},
		},
	}

	client := resty.New()
	resp, err := client.R().
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetBody(orderBody).
		Post(config.AppConfig.PayPalApiURL + "/v2/checkout/orders")
	if err != nil {
		log.Printf("PayPal order creation failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to start PayPal donation!", nil)
	}
	if resp.StatusCode() != 200 && resp.StatusCode() != 201 {
		log.Printf("PayPal order rejected: %s", resp.String())
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "PayPal donation was rejected!", nil)
	}

	var order struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(resp.Body(), &order); err != nil {
		log.Printf("Failed to parse PayPal response: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Invalid PayPal response!", nil)
	}

	donation := newDonationRecord(c, reqData, models.DonationProviderPayPal)
	donation.ProviderID = order.ID
	if err := database.Database.Db.Create(&donation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record donation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "PayPal donation started. Approve the order to complete it.", fiber.Map{
		"donation":        donation,
		"paypal_order_id": order.ID,
	})
}

// CapturePayPalOrder captures an approved PayPal order and completes the
// local donation row
func CapturePayPalOrder(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProviderRef").(*donationValidator.ProviderRefPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var donation models.Donation
	if err := database.Database.Db.Where("provider_id = ? AND provider = ? AND is_deleted = ?",
		reqData.ProviderID, models.DonationProviderPayPal, false).First(&donation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Donation not found!", nil)
	}

	if donation.Status == models.DonationStatusCompleted {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Donation already completed.", donation)
	}

	token, err := paypalAccessToken()
	if err != nil {
		log.Printf("PayPal token exchange failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to reach PayPal!", nil)
	}

	client := resty.New()
	resp, err := client.R().
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		Post(config.AppConfig.PayPalApiURL + "/v2/checkout/orders/" + reqData.ProviderID + "/capture")
	if err != nil {
		log.Printf("PayPal capture failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to capture PayPal order!", nil)
	}

	var capture struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(resp.Body(), &capture); err != nil || (resp.StatusCode() != 200 && resp.StatusCode() != 201) {
		log.Printf("PayPal capture rejected: %s", resp.String())
		donation.Status = models.DonationStatusFailed
		database.Database.Db.Save(&donation)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "PayPal capture failed!", nil)
	}

	if capture.Status != "COMPLETED" {
		donation.Status = models.DonationStatusFailed
		database.Database.Db.Save(&donation)
		return middleware.JsonResponse(c, fiber.StatusPaymentRequired, false, "PayPal order was not completed!", fiber.Map{
			"provider_status": capture.Status,
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
