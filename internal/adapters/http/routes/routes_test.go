package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pharmatrack/internal/adapters/http/middleware"
	"pharmatrack/internal/adapters/persistence/models"
	"pharmatrack/internal/config"
	"pharmatrack/internal/core/domain"
	"pharmatrack/internal/pkg/jwt"
	"pharmatrack/internal/pkg/password"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.AutoMigrate(db))

	cfg := &config.Config{
		AppMode: "dev",
		Port:    "3000",
		JWT: config.JWTConfig{
			Secret:           "test-access-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
		Alerts: config.AlertConfig{
			LowStockThreshold: 10,
			ExpiryHorizonDays: 90,
		},
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.CustomErrorHandler,
	})
	Setup(app, db, cfg)

	return app, db, cfg
}

func createTestUser(t *testing.T, db *gorm.DB, username, plaintext string, role domain.Role) *models.User {
	t.Helper()

	hashed, err := password.Hash(plaintext)
	require.NoError(t, err)

	user := &models.User{
		Username: username,
		Password: hashed,
		Role:     role.String(),
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)

	return user
}

func tokenFor(t *testing.T, cfg *config.Config, user *models.User) string {
	t.Helper()

	token, err := jwt.GenerateAccessToken(user.ID, user.Username, user.Role, cfg.JWT.Secret, cfg.JWT.AccessTokenMins)
	require.NoError(t, err)

	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, 30000)
	require.NoError(t, err)

	return resp
}

func mustDate(s string) time.Time {
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return parsed
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))

	return parsed
}

func TestLoginEndpoint(t *testing.T) {
	app, db, _ := setupTestApp(t)
	createTestUser(t, db, "admin", "admin123", domain.RoleAdmin)

	resp := doJSON(t, app, "POST", "/api/v1/auth/login", "", fiber.Map{
		"username": "admin",
		"password": "admin123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])

	resp = doJSON(t, app, "POST", "/api/v1/auth/login", "", fiber.Map{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app, _, _ := setupTestApp(t)

	for _, path := range []string{"/api/v1/drugs", "/api/v1/sales", "/api/v1/dashboard", "/api/v1/alerts"} {
		resp := doJSON(t, app, "GET", path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestDrugWritesAreAdminOnly(t *testing.T) {
	app, db, cfg := setupTestApp(t)

	admin := createTestUser(t, db, "admin", "admin123", domain.RoleAdmin)
	pharmacist := createTestUser(t, db, "pharmacist", "pharma123", domain.RolePharmacist)

	drugBody := fiber.Map{
		"name":          "Paracetamol 500mg",
		"category":      "Analgesic",
		"quantity":      100,
		"cost_price":    0.50,
		"selling_price": 1.00,
		"expiry_date":   "2027-12-31",
	}

	resp := doJSON(t, app, "POST", "/api/v1/drugs", tokenFor(t, cfg, pharmacist), drugBody)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/v1/drugs", tokenFor(t, cfg, admin), drugBody)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Reads are open to both roles
	resp = doJSON(t, app, "GET", "/api/v1/drugs", tokenFor(t, cfg, pharmacist), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUserManagementIsAdminOnly(t *testing.T) {
	app, db, cfg := setupTestApp(t)

	pharmacist := createTestUser(t, db, "pharmacist", "pharma123", domain.RolePharmacist)

	token := tokenFor(t, cfg, pharmacist)

	resp := doJSON(t, app, "GET", "/api/v1/users", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Restocking is locked down the same way
	resp = doJSON(t, app, "GET", "/api/v1/purchases", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSaleEndpoint(t *testing.T) {
	app, db, cfg := setupTestApp(t)

	pharmacist := createTestUser(t, db, "pharmacist", "pharma123", domain.RolePharmacist)
	token := tokenFor(t, cfg, pharmacist)

	drug := &models.Drug{
		Name:         "Ibuprofen 200mg",
		Category:     "Analgesic",
		BatchNo:      "B-001",
		Manufacturer: "Acme Pharma",
		Quantity:     5,
		CostPrice:    1.00,
		SellingPrice: 2.00,
		ExpiryDate:   mustDate("2027-06-30"),
	}
	require.NoError(t, db.Create(drug).Error)

	resp := doJSON(t, app, "POST", "/api/v1/sales", token, fiber.Map{
		"drug_id":  drug.ID,
		"quantity": 2,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	sale := body["data"].(map[string]interface{})["sale"].(map[string]interface{})
	assert.Equal(t, "pharmacist", sale["staff_name"])
	assert.Equal(t, 4.0, sale["total_price"])

	// Overselling the remaining stock is rejected with a conflict
	resp = doJSON(t, app, "POST", "/api/v1/sales", token, fiber.Map{
		"drug_id":  drug.ID,
		"quantity": 4,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var updated models.Drug
	require.NoError(t, db.First(&updated, drug.ID).Error)
	assert.Equal(t, 3, updated.Quantity)
}
