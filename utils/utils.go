package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"prayerhub/config"
)

// GenerateOTP generates a 6-digit OTP
func GenerateOTP() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	otp := ""
	for i := 0; i < 6; i++ {
		otp += fmt.Sprintf("%d", rng.Intn(10))
	}
	return otp
}

// GenerateToken returns an opaque url-safe token for verify/unsubscribe links
func GenerateToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

const backupCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateBackupCodes returns n single-use recovery codes in XXXX-XXXX form
func GenerateBackupCodes(n int) []string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	codes := make([]string, n)
	for i := range codes {
		b := make([]byte, 8)
		for j := range b {
			b[j] = backupCodeChars[rng.Intn(len(backupCodeChars))]
		}
		codes[i] = string(b[:4]) + "-" + string(b[4:])
	}
	return codes
}

// RandomPassword returns a throwaway password for social-login accounts
func RandomPassword() string {
	return uuid.NewString()
}

// AmazonReferralURL builds the storefront link for a book ASIN with the
// configured associate tag appended
func AmazonReferralURL(asin string) string {
	if asin == "" {
		return ""
	}
	url := "https://www.amazon.com/dp/" + asin
	if tag := config.AppConfig.AmazonTag; tag != "" {
		url += "?tag=" + tag
	}
	return url
}
