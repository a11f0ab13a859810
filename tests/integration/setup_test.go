package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"arsenal/internal/config"
	"arsenal/internal/logger"
	"arsenal/internal/models"
	"arsenal/internal/server"
	"arsenal/internal/testutil"
	"arsenal/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB       *gorm.DB
	Router   *gin.Engine
	Services *server.Services
	Config   *config.Config
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test", "error")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T, tweak ...func(*config.Config)) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)

	cfg := config.Default()
	cfg.DB.Driver = "sqlite"
	cfg.JWTSecret = "integration-secret"
	cfg.MaxLoginAttempts = 3
	for _, fn := range tweak {
		fn(cfg)
	}

	svc := server.NewServices(db, cfg)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = svc.Audit.Close(ctx)
	})

	return &testApp{DB: db, Router: server.NewRouter(cfg, svc), Services: svc, Config: cfg}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// mustStatus fails the test unless rec has the wanted status.
func mustStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseJSON(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got %s", rec.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}

// login authenticates and returns the bearer token.
func (app *testApp) login(t *testing.T, email, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/auth/login", body, "")
	mustStatus(t, rec, http.StatusOK)
	return parseJSON(t, rec)["token"].(string)
}

// userToken creates a user directly in the store and logs in through the API.
func (app *testApp) userToken(t *testing.T, role models.Role, baseID string) string {
	t.Helper()
	user := testutil.CreateTestUser(t, app.DB, role, baseID)
	return app.login(t, user.Email, testutil.TestPassword)
}

// createBase creates a base through the admin API and returns its id.
func (app *testApp) createBase(t *testing.T, adminToken, name string) string {
	t.Helper()
	rec := app.request("POST", "/api/bases", fmt.Sprintf(`{"name":%q,"location":"Sector 7"}`, name), adminToken)
	mustStatus(t, rec, http.StatusCreated)
	return parseJSON(t, rec)["base"].(map[string]interface{})["id"].(string)
}

// createAsset creates an asset line through the admin API and returns its id.
func (app *testApp) createAsset(t *testing.T, adminToken, name, assetType, baseID string, opening int64) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"type":%q,"baseId":%q,"openingBalance":%d}`, name, assetType, baseID, opening)
	rec := app.request("POST", "/api/assets", body, adminToken)
	mustStatus(t, rec, http.StatusCreated)
	return parseJSON(t, rec)["asset"].(map[string]interface{})["id"].(string)
}

// getAsset reads an asset line through the API.
func (app *testApp) getAsset(t *testing.T, token, id string) map[string]interface{} {
	t.Helper()
	rec := app.request("GET", "/api/assets/"+id, "", token)
	mustStatus(t, rec, http.StatusOK)
	return parseJSON(t, rec)["asset"].(map[string]interface{})
}

func assertCounters(t *testing.T, asset map[string]interface{}, current, assigned, expended float64) {
	t.Helper()
	if asset["currentBalance"] != current || asset["assigned"] != assigned || asset["expended"] != expended {
		t.Errorf("expected current=%v assigned=%v expended=%v, got current=%v assigned=%v expended=%v",
			current, assigned, expended, asset["currentBalance"], asset["assigned"], asset["expended"])
	}
}

// requestWithHeader is request with one extra header.
func (app *testApp) requestWithHeader(method, path, body, token, key, value string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(key, value)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}
