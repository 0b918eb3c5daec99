package authController

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/pquerna/otp/totp"
	"golang.org/x/crypto/bcrypt"

	"prayerhub/config"
	"prayerhub/database"
	"prayerhub/middleware"
	"prayerhub/models"
	"prayerhub/utils"
	authValidator "prayerhub/validators/auth"
)

const backupCodeCount = 10

// verifySecondFactor checks a TOTP code first, then falls back to the
// user's single-use backup codes. A matched backup code is consumed.
func verifySecondFactor(user *models.User, code string) bool {
	if totp.Validate(code, user.TOTPSecret) {
		return true
	}

	var hashes []string
	if len(user.BackupCodes) == 0 {
		return false
	}
	if err := json.Unmarshal(user.BackupCodes, &hashes); err != nil {
		log.Printf("Error decoding backup codes for user %d: %v", user.ID, err)
		return false
	}

	for i, hash := range hashes {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil {
			// Consume the matched code
			hashes = append(hashes[:i], hashes[i+1:]...)
			if raw, err := json.Marshal(hashes); err == nil {
				user.BackupCodes = raw
				database.Database.Db.Save(user)
			}
			return true
		}
	}
	return false
}

// SetupTOTP generates a secret for the user and returns the provisioning
// URI. The second factor stays off until the user activates it with a code.
func SetupTOTP(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.TOTPEnabled {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "TOTP is already enabled!", nil)
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      config.AppConfig.SenderName,
		AccountName: user.Email,
	})
	if err != nil {
		log.Printf("Error generating TOTP key: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to set up TOTP!", nil)
	}

	user.TOTPSecret = key.Secret()
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to set up TOTP!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "TOTP setup started. Confirm with a code to activate.", fiber.Map{
		"secret": key.Secret(),
		"url":    key.URL(),
	})
}

// ActivateTOTP turns the second factor on after the user proves they hold
// the secret, and hands out the one-time backup codes.
func ActivateTOTP(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.TOTPSecret == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "TOTP setup has not been started!", nil)
	}
	if user.TOTPEnabled {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "TOTP is already enabled!", nil)
	}

	reqData, ok := c.Locals("validatedTOTPCode").(*authValidator.TOTPCodePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if !totp.Validate(reqData.Code, user.TOTPSecret) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid TOTP code!", nil)
	}

	codes := utils.GenerateBackupCodes(backupCodeCount)
	hashes := make([]string, len(codes))
	for i, code := range codes {
		hash, err := bcrypt.GenerateFromPassword([]byte(code), config.AppConfig.SaltRound)
		if err != nil {
			log.Printf("Error hashing backup code: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to activate TOTP!", nil)
		}
		hashes[i] = string(hash)
	}

	raw, err := json.Marshal(hashes)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to activate TOTP!", nil)
	}

	user.TOTPEnabled = true
	user.BackupCodes = raw
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to activate TOTP!", nil)
	}

	// Backup codes are shown exactly once
	return middleware.JsonResponse(c, fiber.StatusOK, true, "TOTP activated. Store your backup codes safely.", fiber.Map{
		"backup_codes": codes,
	})
}

// DisableTOTP turns the second factor off after verifying a current code
func DisableTOTP(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if !user.TOTPEnabled {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "TOTP is not enabled!", nil)
	}

	reqData, ok := c.Locals("validatedTOTPCode").(*authValidator.TOTPCodePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if !verifySecondFactor(&user, reqData.Code) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid TOTP code!", nil)
	}

	user.TOTPEnabled = false
	user.TOTPSecret = ""
	user.BackupCodes = nil
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to disable TOTP!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "TOTP disabled.", nil)
}
