package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prayerhub/config"
)

func TestGenerateOTP(t *testing.T) {
	otp := GenerateOTP()
	assert.Len(t, otp, 6)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), otp)
}

func TestGenerateToken(t *testing.T) {
	token := GenerateToken()
	assert.Len(t, token, 32)
	assert.NotContains(t, token, "-")
	assert.NotEqual(t, token, GenerateToken())
}

func TestGenerateBackupCodes(t *testing.T) {
	codes := GenerateBackupCodes(10)
	require.Len(t, codes, 10)

	pattern := regexp.MustCompile(`^[A-Z2-9]{4}-[A-Z2-9]{4}$`)
	for _, code := range codes {
		assert.Regexp(t, pattern, code)
	}
}

func TestAmazonReferralURL(t *testing.T) {
	config.AppConfig = &config.Config{AmazonTag: "ministry-20"}

	assert.Equal(t, "https://www.amazon.com/dp/0310337501?tag=ministry-20", AmazonReferralURL("0310337501"))
	assert.Equal(t, "", AmazonReferralURL(""))

	config.AppConfig.AmazonTag = ""
	assert.Equal(t, "https://www.amazon.com/dp/0310337501", AmazonReferralURL("0310337501"))
}
