package authController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"prayerhub/config"
	"prayerhub/database"
	"prayerhub/middleware"
	"prayerhub/models"
	"prayerhub/session"
	"prayerhub/utils"
	authValidator "prayerhub/validators/auth"
)

const (
	maxFailedLogins = 5
	lockoutDuration = 15 * time.Minute
	otpLifetime     = 10 * time.Minute
)

func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: string(hashedPassword),
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	otp := models.OTP{
		UserID:      newUser.ID,
		Email:       newUser.Email,
		Code:        utils.GenerateOTP(),
		ExpiresAt:   time.Now().Add(otpLifetime),
		Description: "email verification",
	}
	if err := db.Create(&otp).Error; err != nil {
		log.Printf("Error saving verification OTP: %v", err)
	}

	go func(name, email, code string) {
		if err := utils.SendWelcomeEmail(name, email); err != nil {
			log.Printf("Error sending welcome email to %s: %v", email, err)
		}
		if err := utils.SendVerificationOTPEmail(name, email, code); err != nil {
			log.Printf("Error sending verification email to %s: %v", email, err)
		}
	}(newUser.Name, newUser.Email, otp.Code)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully. Check your email for the verification code.", newUser)
}

// VerifyEmail consumes the signup OTP and marks the account verified
func VerifyEmail(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVerifyEmail").(*authValidator.VerifyEmailPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Account not found!", nil)
	}

	if user.IsEmailVerified {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Email is already verified.", nil)
	}

	var otp models.OTP
	if err := database.Database.Db.
		Where("user_id = ? AND code = ? AND is_used = ? AND is_deleted = ?", user.ID, reqData.Code, false, false).
		Order("created_at desc").First(&otp).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid verification code!", nil)
	}

	if time.Now().After(otp.ExpiresAt) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Verification code has expired!", nil)
	}

	otp.IsUsed = true
	database.Database.Db.Save(&otp)

	user.IsEmailVerified = true
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify email!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Email verified successfully!", nil)
}

// issueAuth creates the JWT, the server-side session and the cookie, and
// records the login. Returns the response payload.
func issueAuth(c *fiber.Ctx, user *models.User) (fiber.Map, error) {
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(config.AppConfig.SessionHours) * time.Hour
	sessToken, err := session.Active.Create(user.ID, ttl)
	if err != nil {
		return nil, err
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    sessToken,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	now := time.Now()
	user.LastLogin = now
	user.FailedLoginAttempts = 0
	user.IsBlocked = false
	user.BlockedUntil = nil
	database.Database.Db.Save(user)

	tracking := models.LoginTracking{
		UserID:    user.ID,
		IPAddress: c.IP(),
		Device:    c.Get("User-Agent"),
		Timestamp: now,
	}
	database.Database.Db.Create(&tracking)

	return fiber.Map{
		"token": token,
		"user":  user,
	}, nil
}

// recordFailedLogin bumps the failure counter and blocks the account after
// too many attempts
func recordFailedLogin(user *models.User) {
	now := time.Now()
	user.FailedLoginAttempts++
	user.LastFailedLogin = &now
	if user.FailedLoginAttempts >= maxFailedLogins {
		until := now.Add(lockoutDuration)
		user.IsBlocked = true
		user.BlockedUntil = &until
	}
	database.Database.Db.Save(user)
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if !user.IsActive {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Account is deactivated!", nil)
	}

	if user.IsBlocked {
		if user.BlockedUntil != nil && time.Now().After(*user.BlockedUntil) {
			user.IsBlocked = false
			user.FailedLoginAttempts = 0
			user.BlockedUntil = nil
			database.Database.Db.Save(&user)
		} else {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Account temporarily blocked. Try again later.", nil)
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		recordFailedLogin(&user)
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	// Second factor required: verify the supplied code or ask for one
	if user.TOTPEnabled {
		if reqData.Code == "" {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "TOTP code required.", fiber.Map{
				"totp_required": true,
			})
		}
		if !verifySecondFactor(&user, reqData.Code) {
			recordFailedLogin(&user)
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid TOTP code!", nil)
		}
	}

	data, err := issueAuth(c, &user)
	if err != nil {
		log.Printf("Error issuing auth for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", data)
}

func Logout(c *fiber.Ctx) error {
	if token, ok := c.Locals("sessionToken").(string); ok && token != "" {
		if err := session.Active.Destroy(token); err != nil {
			log.Printf("Error destroying session: %v", err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully.", nil)
}

func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}

func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*authValidator.UpdateProfilePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Name != "" {
		user.Name = reqData.Name
	}
	if reqData.ProfileImage != "" {
		user.ProfileImage = reqData.ProfileImage
	}

	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}

func ChangePassword(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedChangePassword").(*authValidator.ChangePasswordPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.OldPassword)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Old password is incorrect!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	user.Password = string(hashedPassword)
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to change password!", nil)
	}

	// Invalidate other sessions after a password change
	if err := session.Active.DestroyUserSessions(user.ID); err != nil {
		log.Printf("Error destroying sessions for user %d: %v", user.ID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password changed successfully. Please login again.", nil)
}
