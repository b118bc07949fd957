package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yethan4/shop-backend/internal/config"
	"github.com/yethan4/shop-backend/internal/database"
	"github.com/yethan4/shop-backend/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode},
		JWT: config.JWTConfig{
			Secret:             "test-secret",
			Issuer:             "shop-backend-test",
			AccessExpireMins:   30,
			RefreshExpireHours: 24,
		},
		Security: config.SecurityConfig{BcryptCost: 4}, // min cost, tests only
	}
}

// newTestEnv builds a router over a fresh in-memory database. Each test
// gets its own named shared-cache DB so parallel connections from the pool
// see the same data without leaking state between tests.
func newTestEnv(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))

	return router.SetupRouter(testConfig(), db), db
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	data, ok := parseBody(t, w)["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

func errorsField(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	errs, ok := parseBody(t, w)["errors"].(map[string]interface{})
	require.True(t, ok, "response has no errors object: %s", w.Body.String())
	return errs
}

func validRegistration() map[string]interface{} {
	return map[string]interface{}{
		"username":     "michal",
		"email":        "michal@example.com",
		"first_name":   "Michal",
		"last_name":    "Es",
		"phone_number": "123456789",
		"password":     "test1234",
		"password2":    "test1234",
	}
}

// registerAndLogin provisions a user and returns a valid access token.
func registerAndLogin(t *testing.T, r *gin.Engine, payload map[string]interface{}) string {
	t.Helper()

	w := doJSON(r, http.MethodPost, "/api/register", payload, "")
	require.Equal(t, http.StatusCreated, w.Code, "register: %s", w.Body.String())

	w = doJSON(r, http.MethodPost, "/api/token", map[string]interface{}{
		"email":    payload["email"],
		"password": payload["password"],
	}, "")
	require.Equal(t, http.StatusOK, w.Code, "token: %s", w.Body.String())

	token, ok := dataField(t, w)["access"].(string)
	require.True(t, ok)
	return token
}
