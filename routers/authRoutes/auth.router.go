package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authController "prayerhub/controllers/auth"
	"prayerhub/middleware"
	authValidator "prayerhub/validators/auth"
)

// SetupAuthRoutes sets up authentication and profile routes
func SetupAuthRoutes(app *fiber.App) {
	group := app.Group("/api/auth")

	group.Post("/signup", authValidator.Signup(), authController.Signup)
	group.Post("/verify-email", authValidator.VerifyEmail(), authController.VerifyEmail)
	group.Post("/login", authValidator.Login(), authController.Login)
	group.Post("/logout", middleware.RequireAuth, authController.Logout)

	// Social login (access-token exchange)
	group.Post("/google", authValidator.SocialToken(), authController.GoogleLogin)
	group.Post("/facebook", authValidator.SocialToken(), authController.FacebookLogin)

	// TOTP second factor
	group.Post("/totp/setup", middleware.RequireAuth, authController.SetupTOTP)
	group.Post("/totp/activate", middleware.RequireAuth, authValidator.TOTPCode(), authController.ActivateTOTP)
	group.Post("/totp/disable", middleware.RequireAuth, authValidator.TOTPCode(), authController.DisableTOTP)

	// Profile
	group.Get("/me", middleware.RequireAuth, authController.GetProfile)
	group.Put("/me", middleware.RequireAuth, authValidator.UpdateProfile(), authController.UpdateProfile)
	group.Post("/change-password", middleware.RequireAuth, authValidator.ChangePassword(), authController.ChangePassword)
}
