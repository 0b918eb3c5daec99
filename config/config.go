package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	BaseURL   string
	JWTKey    string
	SaltRound int

	SessionStore string // "memory" or "db"
	SessionHours int

	UploadDir     string
	MaxUploadSize int // megabytes

	EmailSender string
	SenderName  string
	SendGridKey string

	StripeApiURL    string
	StripeSecretKey string

	PayPalApiURL   string
	PayPalClientID string
	PayPalSecret   string

	GoogleUserInfoURL   string
	FacebookUserInfoURL string

	AmazonTag string // Amazon Associates referral tag for the book store
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		BaseURL:   getEnv("BASE_URL", "http://localhost:3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		SessionStore: getEnv("SESSION_STORE", "memory"),
		SessionHours: getEnvInt("SESSION_HOURS", 24),

		UploadDir:     getEnv("UPLOAD_DIR", "./public/uploads"),
		MaxUploadSize: getEnvInt("MAX_UPLOAD_MB", 20),

		EmailSender: getEnv("EMAIL_SENDER", "no-reply@example.org"),
		SenderName:  getEnv("SENDER_NAME", "Prayer Ministry"),
		SendGridKey: getEnv("SENDGRID_API_KEY", ""),

		StripeApiURL:    getEnv("STRIPE_API_URL", "https://api.stripe.com/v1"),
		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),

		PayPalApiURL:   getEnv("PAYPAL_API_URL", "https://api-m.sandbox.paypal.com"),
		PayPalClientID: getEnv("PAYPAL_CLIENT_ID", ""),
		PayPalSecret:   getEnv("PAYPAL_SECRET", ""),

		GoogleUserInfoURL:   getEnv("GOOGLE_USERINFO_URL", "https://www.googleapis.com/oauth2/v2/userinfo"),
		FacebookUserInfoURL: getEnv("FACEBOOK_USERINFO_URL", "https://graph.facebook.com/me"),

		AmazonTag: getEnv("AMAZON_ASSOCIATE_TAG", ""),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.StripeSecretKey == "" {
		log.Println("Warning: STRIPE_SECRET_KEY not set. Card donations will fail.")
	}
	if AppConfig.SendGridKey == "" {
		log.Println("Warning: SENDGRID_API_KEY not set. Outgoing email disabled.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
