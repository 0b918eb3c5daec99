package authController

import (
	"encoding/json"
	"log"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"prayerhub/config"
	"prayerhub/database"
	"prayerhub/middleware"
	"prayerhub/models"
	"prayerhub/utils"
	authValidator "prayerhub/validators/auth"
)

type socialProfile struct {
	ID    string
	Name  string
	Email string
}

// fetchGoogleProfile exchanges an access token for the Google userinfo record
func fetchGoogleProfile(accessToken string) (*socialProfile, error) {
	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+accessToken).
		Get(config.AppConfig.GoogleUserInfoURL)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		log.Printf("Google userinfo failed: %s", resp.String())
		return nil, fiber.ErrUnauthorized
	}

	var data struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		return nil, err
	}
	return &socialProfile{ID: data.ID, Name: data.Name, Email: data.Email}, nil
}

// fetchFacebookProfile exchanges an access token for the Facebook profile
func fetchFacebookProfile(accessToken string) (*socialProfile, error) {
	client := resty.New()
	resp, err := client.R().
		SetQueryParam("fields", "id,name,email").
		SetQueryParam("access_token", accessToken).
		Get(config.AppConfig.FacebookUserInfoURL)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		log.Printf("Facebook profile fetch failed: %s", resp.String())
		return nil, fiber.ErrUnauthorized
	}

	var data struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		return nil, err
	}
	return &socialProfile{ID: data.ID, Name: data.Name, Email: data.Email}, nil
}

// loginWithProfile finds or creates the local account for a social profile
// and issues the usual auth artifacts
func loginWithProfile(c *fiber.Ctx, provider string, profile *socialProfile) error {
	if profile.Email == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Provider did not share an email address!", nil)
	}

	db := database.Database.Db

	var user models.User
	err := db.Where("email = ? AND is_deleted = ?", profile.Email, false).First(&user).Error
	if err != nil {
		// First social login: create the account with a throwaway password
		hashed, hashErr := bcrypt.GenerateFromPassword([]byte(utils.RandomPassword()), config.AppConfig.SaltRound)
		if hashErr != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}
		user = models.User{
			Name:            profile.Name,
			Email:           profile.Email,
			Password:        string(hashed),
			Provider:        provider,
			ProviderID:      profile.ID,
			IsEmailVerified: true, // the provider vouched for the address
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Error creating social user: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
		}
	} else if user.Provider == "" {
		// Link the existing password account to the provider
		user.Provider = provider
		user.ProviderID = profile.ID
		db.Save(&user)
	}

	if !user.IsActive {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Account is deactivated!", nil)
	}

	data, err := issueAuth(c, &user)
	if err != nil {
		log.Printf("Error issuing auth for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", data)
}

func GoogleLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSocialToken").(*authValidator.SocialTokenPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	profile, err := fetchGoogleProfile(reqData.AccessToken)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Failed to verify Google token!", nil)
	}

	return loginWithProfile(c, "GOOGLE", profile)
}

func FacebookLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSocialToken").(*authValidator.SocialTokenPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	profile, err := fetchFacebookProfile(reqData.AccessToken)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Failed to verify Facebook token!", nil)
	}

	return loginWithProfile(c, "FACEBOOK", profile)
}
