package donationRoutes

import (
	"github.com/gofiber/fiber/v2"

	donationController "prayerhub/controllers/donation"
	"prayerhub/middleware"
	donationValidator "prayerhub/validators/donation"
)

// SetupDonationRoutes sets up donation routes. Creating and confirming
// donations is open to guests; listing is restricted.
func SetupDonationRoutes(app *fiber.App) {
	group := app.Group("/api/donations")

	group.Post("/stripe", donationValidator.CreateDonation(), donationController.CreateStripeIntent)
	group.Post("/stripe/confirm", donationValidator.ProviderRef(), donationController.ConfirmStripeDonation)
	group.Post("/paypal", donationValidator.CreateDonation(), donationController.CreatePayPalOrder)
	group.Post("/paypal/capture", donationValidator.ProviderRef(), donationController.CapturePayPalOrder)

	app.Get("/api/me/donations", middleware.RequireAuth, donationController.GetMyDonations)

	adminGroup := app.Group("/api/admin/donations", middleware.RequireAuth, middleware.RequireAdmin)
	adminGroup.Get("/", donationController.AdminListDonations)
}
