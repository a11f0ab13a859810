package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"arsenal/internal/access"
	"arsenal/internal/models"
	"arsenal/internal/pagination"
	"arsenal/internal/services"
)

func setupDashboardRouter(handler *DashboardHandler, policy access.Policy) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectPolicy(policy))
	auth.GET("/dashboard", handler.GetMetrics)
	auth.GET("/dashboard/movements", handler.GetMovements)
	return r
}

func TestDashboardHandler_GetMetrics(t *testing.T) {
	var gotPolicy access.Policy
	var gotFilter services.RecordFilter
	svc := &mockDashboardService{
		getMetricsFn: func(policy access.Policy, filter services.RecordFilter) (*services.DashboardMetrics, error) {
			gotPolicy, gotFilter = policy, filter
			return &services.DashboardMetrics{OpeningBalance: 100, ClosingBalance: 105, NetMovement: 5}, nil
		},
	}
	r := setupDashboardRouter(NewDashboardHandler(svc), access.BaseCommander(testCommander, testBaseA))

	rec := doRequest(r, "GET", "/dashboard?baseId="+testBaseB+"&equipmentType=ammunition", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if base, _ := gotPolicy.BaseID(); base != testBaseA {
		t.Errorf("expected commander policy, got base %q", base)
	}
	if gotFilter.EquipmentType != models.AssetTypeAmmunition {
		t.Errorf("unexpected filter: %+v", gotFilter)
	}
	metrics := parseJSON(t, rec)["metrics"].(map[string]interface{})
	if metrics["closingBalance"] != float64(105) || metrics["netMovement"] != float64(5) {
		t.Errorf("unexpected metrics: %v", metrics)
	}
}

func TestDashboardHandler_GetMovements(t *testing.T) {
	svc := &mockDashboardService{
		getMovementsFn: func(_ access.Policy, _ services.RecordFilter) (*services.Movements, error) {
			return &services.Movements{
				Purchases:    []models.Purchase{{Quantity: 50}},
				TransfersIn:  []models.Transfer{},
				TransfersOut: []models.Transfer{{Quantity: 20}},
			}, nil
		},
	}
	r := setupDashboardRouter(NewDashboardHandler(svc), access.Admin(testAdminID))

	rec := doRequest(r, "GET", "/dashboard/movements", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	movements := parseJSON(t, rec)["movements"].(map[string]interface{})
	if len(movements["purchases"].([]interface{})) != 1 || len(movements["transfersOut"].([]interface{})) != 1 {
		t.Errorf("unexpected movements: %v", movements)
	}
}

func TestAuditHandler_ListAuditLogs(t *testing.T) {
	var gotFilter services.AuditFilter
	audit := &mockAuditService{
		listFn: func(filter services.AuditFilter, _ pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
			gotFilter = filter
			resp := pagination.NewPageResponse([]models.AuditLog{{Action: "CREATE_PURCHASE"}}, 1, 20, 1)
			return &resp, nil
		},
	}
	r := gin.New()
	r.GET("/audit-logs", injectPolicy(access.Admin(testAdminID)), NewAuditHandler(audit).ListAuditLogs)

	rec := doRequest(r, "GET", "/audit-logs?entityType=purchase&userId="+testAdminID, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotFilter.EntityType != "purchase" || gotFilter.UserID != testAdminID {
		t.Errorf("unexpected filter: %+v", gotFilter)
	}
	data := parseJSON(t, rec)["data"].([]interface{})
	if len(data) != 1 {
		t.Errorf("expected 1 entry, got %d", len(data))
	}
}
