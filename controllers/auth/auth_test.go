package authController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"prayerhub/config"
	"prayerhub/database"
	"prayerhub/models"
	authRoutes "prayerhub/routers/authRoutes"
	"prayerhub/session"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupAuthApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:       "test-secret",
		SaltRound:    4,
		SessionStore: "memory",
		SessionHours: 24,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	session.Init("memory", db)

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (*http.Response, apiResponse) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp, parseBody(t, resp)
}

func parseBody(t *testing.T, resp *http.Response) apiResponse {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return parsed
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == session.CookieName {
			return cookie
		}
	}
	return nil
}

func TestSignupAndLogin(t *testing.T) {
	app, _ := setupAuthApp(t)

	resp, parsed := postJSON(t, app, "/api/auth/signup", map[string]string{
		"name":     "Grace",
		"email":    "grace@example.org",
		"password": "Password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.True(t, parsed.Status)

	// Duplicate email is rejected
	resp, _ = postJSON(t, app, "/api/auth/signup", map[string]string{
		"name":     "Grace Again",
		"email":    "grace@example.org",
		"password": "Password123",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, parsed = postJSON(t, app, "/api/auth/login", map[string]string{
		"email":    "grace@example.org",
		"password": "Password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(parsed.Data, &data))
	assert.NotEmpty(t, data.Token)

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := setupAuthApp(t)

	resp, _ := postJSON(t, app, "/api/auth/signup", map[string]string{
		"name":     "Grace",
		"email":    "grace@example.org",
		"password": "Password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = postJSON(t, app, "/api/auth/login", map[string]string{
		"email":    "grace@example.org",
		"password": "WrongPassword1",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginLockoutAfterRepeatedFailures(t *testing.T) {
	app, _ := setupAuthApp(t)

	resp, _ := postJSON(t, app, "/api/auth/signup", map[string]string{
		"name":     "Grace",
		"email":    "grace@example.org",
		"password": "Password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	for i := 0; i < 5; i++ {
		resp, _ = postJSON(t, app, "/api/auth/login", map[string]string{
			"email":    "grace@example.org",
			"password": "WrongPassword1",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}

	// Correct password is refused while blocked
	resp, _ = postJSON(t, app, "/api/auth/login", map[string]string{
		"email":    "grace@example.org",
		"password": "Password123",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSessionCookieAuthenticatesRequests(t *testing.T) {
	app, _ := setupAuthApp(t)

	resp, _ := postJSON(t, app, "/api/auth/signup", map[string]string{
		"name":     "Grace",
		"email":    "grace@example.org",
		"password": "Password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = postJSON(t, app, "/api/auth/login", map[string]string{
		"email":    "grace@example.org",
		"password": "Password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)

	// No Authorization header, only the session cookie
	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.AddCookie(cookie)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// After logout the same cookie no longer works
	req = httptest.NewRequest("POST", "/api/auth/logout", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/auth/me", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestVerifyEmailWithOTP(t *testing.T) {
	app, db := setupAuthApp(t)

	resp, _ := postJSON(t, app, "/api/auth/signup", map[string]string{
		"name":     "Grace",
		"email":    "grace@example.org",
		"password": "Password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var otp models.OTP
	require.NoError(t, db.Where("email = ?", "grace@example.org").First(&otp).Error)

	// Wrong code is rejected
	wrong := "000000"
	if otp.Code == wrong {
		wrong = "111111"
	}
	resp, _ = postJSON(t, app, "/api/auth/verify-email", map[string]string{
		"email": "grace@example.org",
		"code":  wrong,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = postJSON(t, app, "/api/auth/verify-email", map[string]string{
		"email": "grace@example.org",
		"code":  otp.Code,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user models.User
	require.NoError(t, db.Where("email = ?", "grace@example.org").First(&user).Error)
	assert.True(t, user.IsEmailVerified)
}
