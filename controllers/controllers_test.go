package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/FrankCasanova/fastapi-blog/config"
	"github.com/FrankCasanova/fastapi-blog/models"
	"github.com/FrankCasanova/fastapi-blog/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testSettings() *config.Settings {
	return &config.Settings{
		ProjectName:              "blog-api",
		ProjectVersion:           "test",
		SecretKey:                "unit-test-secret-key",
		Algorithm:                "HS256",
		AccessTokenExpireMinutes: 30,
	}
}

// newTestRouter builds a full router over a fresh in-memory database.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *config.Settings) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Blog{}))

	settings := testSettings()
	router := gin.New()
	routes.SetupAuthRoutes(router, db, settings)
	routes.SetupUserRoutes(router, db, settings)
	routes.SetupBlogRoutes(router, db, settings)

	return router, db, settings
}

// doJSON performs a JSON request, optionally with a bearer token.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func registerUser(t *testing.T, router *gin.Engine, email, password string) {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/users", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
}

func loginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}
