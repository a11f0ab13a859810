package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"arsenal/internal/access"
	apperrors "arsenal/internal/errors"
	"arsenal/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubUsers map[string]*models.User

func (s stubUsers) GetUserByID(id string) (*models.User, error) {
	if u, ok := s[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

// brokenUsers fails every lookup the way a lost database connection does.
type brokenUsers struct{ err error }

func (b brokenUsers) GetUserByID(string) (*models.User, error) { return nil, b.err }

func strPtr(s string) *string { return &s }

func newUser(id string, role models.Role, baseID *string) *models.User {
	u := &models.User{Role: role, AssignedBaseID: baseID, IsActive: true}
	u.ID = id
	return u
}

func setupAuthRouter(issuer *TokenIssuer, users UserLookup, restrict bool, roles ...models.Role) *gin.Engine {
	r := gin.New()
	r.Use(AuthMiddleware(issuer, users, restrict))
	if len(roles) > 0 {
		r.Use(RequireRoles(roles...))
	}
	r.GET("/test", func(c *gin.Context) {
		policy, _ := PolicyFrom(c)
		base, _ := policy.BaseID()
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetString(UserIDKey),
			"role":   policy.Role(),
			"base":   base,
		})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := parseBody(t, rec)
	errObj, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got %v", body)
	}
	code, _ := errObj["code"].(string)
	return code
}

func bearer(t *testing.T, issuer *TokenIssuer, user *models.User) string {
	t.Helper()
	token, err := issuer.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	return "Bearer " + token
}

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	user := newUser("user-1", models.RoleBaseCommander, strPtr("base-a"))

	token, err := issuer.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	claims, err := issuer.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Errorf("expected subject user-1, got %q", claims.Subject)
	}
	if claims.Role != models.RoleBaseCommander {
		t.Errorf("expected role base_commander, got %q", claims.Role)
	}

	other := NewTokenIssuer("other-secret", time.Hour)
	if _, err := other.ParseAccessToken(token); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}

	expired := NewTokenIssuer("test-secret", -time.Minute)
	stale, err := expired.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, err := issuer.ParseAccessToken(stale); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestAuthMiddleware(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	admin := newUser("admin-1", models.RoleAdmin, nil)
	commander := newUser("cmd-1", models.RoleBaseCommander, strPtr("base-a"))
	orphan := newUser("cmd-2", models.RoleBaseCommander, nil)
	inactive := newUser("off-1", models.RoleLogisticsOfficer, nil)
	inactive.IsActive = false
	users := stubUsers{
		admin.ID:     admin,
		commander.ID: commander,
		orphan.ID:    orphan,
		inactive.ID:  inactive,
	}
	r := setupAuthRouter(issuer, users, false)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
		wantBase   string
	}{
		{name: "missing_header", header: "", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "bad_scheme", header: "Token abc", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "garbage_token", header: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "unknown_user", header: bearer(t, issuer, newUser("ghost", models.RoleAdmin, nil)), wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "inactive_user", header: bearer(t, issuer, inactive), wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "commander_without_base", header: bearer(t, issuer, orphan), wantStatus: http.StatusForbidden, wantCode: "NO_BASE_ASSIGNED"},
		{name: "admin", header: bearer(t, issuer, admin), wantStatus: http.StatusOK},
		{name: "commander", header: bearer(t, issuer, commander), wantStatus: http.StatusOK, wantBase: "base-a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(r, tt.header)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if tt.wantCode != "" {
				if code := errorCode(t, rec); code != tt.wantCode {
					t.Errorf("expected error code %q, got %q", tt.wantCode, code)
				}
				return
			}
			body := parseBody(t, rec)
			if body["base"] != tt.wantBase {
				t.Errorf("expected base %q, got %v", tt.wantBase, body["base"])
			}
		})
	}
}

func TestAuthMiddlewareLookupFailure(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	token := bearer(t, issuer, newUser("admin-1", models.RoleAdmin, nil))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "not_found", err: apperrors.ErrUserNotFound, wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "wrapped_store_error", err: apperrors.Wrap(apperrors.ErrInternalServer, errors.New("connection refused")), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
		{name: "raw_store_error", err: errors.New("connection refused"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupAuthRouter(issuer, brokenUsers{err: tt.err}, false)

			rec := doRequest(r, token)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if code := errorCode(t, rec); code != tt.wantCode {
				t.Errorf("expected error code %q, got %q", tt.wantCode, code)
			}
		})
	}
}

func TestAuthMiddlewareRestrictsLogistics(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	scoped := newUser("log-1", models.RoleLogisticsOfficer, strPtr("base-b"))
	floating := newUser("log-2", models.RoleLogisticsOfficer, nil)
	users := stubUsers{scoped.ID: scoped, floating.ID: floating}

	open := setupAuthRouter(issuer, users, false)
	rec := doRequest(open, bearer(t, issuer, scoped))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if base := parseBody(t, rec)["base"]; base != "" {
		t.Errorf("expected unrestricted logistics officer, got base %v", base)
	}

	restricted := setupAuthRouter(issuer, users, true)
	rec = doRequest(restricted, bearer(t, issuer, scoped))
	if base := parseBody(t, rec)["base"]; base != "base-b" {
		t.Errorf("expected logistics officer scoped to base-b, got %v", base)
	}

	rec = doRequest(restricted, bearer(t, issuer, floating))
	if rec.Code != http.StatusForbidden || errorCode(t, rec) != "NO_BASE_ASSIGNED" {
		t.Errorf("expected 403 NO_BASE_ASSIGNED, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRequireRoles(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	admin := newUser("admin-1", models.RoleAdmin, nil)
	commander := newUser("cmd-1", models.RoleBaseCommander, strPtr("base-a"))
	logistics := newUser("log-1", models.RoleLogisticsOfficer, nil)
	users := stubUsers{admin.ID: admin, commander.ID: commander, logistics.ID: logistics}

	r := setupAuthRouter(issuer, users, false, models.RoleAdmin, models.RoleBaseCommander)

	if rec := doRequest(r, bearer(t, issuer, admin)); rec.Code != http.StatusOK {
		t.Errorf("admin: expected 200, got %d", rec.Code)
	}
	if rec := doRequest(r, bearer(t, issuer, commander)); rec.Code != http.StatusOK {
		t.Errorf("commander: expected 200, got %d", rec.Code)
	}
	rec := doRequest(r, bearer(t, issuer, logistics))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("logistics: expected 403, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "FORBIDDEN" {
		t.Errorf("expected FORBIDDEN, got %q", code)
	}
}

func TestRequireRolesWithoutPolicy(t *testing.T) {
	r := gin.New()
	r.Use(RequireRoles(models.RoleAdmin))
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := doRequest(r, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/app", func(c *gin.Context) {
		_ = c.Error(apperrors.InsufficientQuantity(7))
	})
	r.GET("/plain", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app", http.NoBody))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	errObj := parseBody(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "INSUFFICIENT_QUANTITY" {
		t.Errorf("expected INSUFFICIENT_QUANTITY, got %v", errObj["code"])
	}
	details, ok := errObj["details"].(map[string]interface{})
	if !ok || details["available"] != float64(7) {
		t.Errorf("expected details.available=7, got %v", errObj["details"])
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/plain", http.NoBody))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "INTERNAL_ERROR" {
		t.Errorf("expected INTERNAL_ERROR, got %q", code)
	}
}

func TestRequestLoggingSetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/test", func(c *gin.Context) {
		c.Set(access.ContextKey, access.Admin("a"))
		c.Status(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", http.NoBody))
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected generated X-Request-ID header")
	}

	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("X-Request-ID", "req-42")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "req-42" {
		t.Errorf("expected propagated request id, got %q", got)
	}
}
