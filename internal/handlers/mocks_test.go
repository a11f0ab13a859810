package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"arsenal/internal/access"
	"arsenal/internal/middleware"
	"arsenal/internal/models"
	"arsenal/internal/pagination"
	"arsenal/internal/services"
	"arsenal/internal/validator"
)

// --- mock services ---

type mockPurchaseService struct {
	createPurchaseFn func(policy access.Policy, in services.PurchaseInput) (*models.Purchase, *services.AuditEvent, error)
	getPurchaseFn    func(policy access.Policy, id string) (*models.Purchase, error)
	listPurchasesFn  func(policy access.Policy, filter services.RecordFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Purchase], error)
}

func (m *mockPurchaseService) CreatePurchase(policy access.Policy, in services.PurchaseInput) (*models.Purchase, *services.AuditEvent, error) {
	if m.createPurchaseFn != nil {
		return m.createPurchaseFn(policy, in)
	}
	return &models.Purchase{}, nil, nil
}

func (m *mockPurchaseService) GetPurchase(policy access.Policy, id string) (*models.Purchase, error) {
	if m.getPurchaseFn != nil {
		return m.getPurchaseFn(policy, id)
	}
	return &models.Purchase{}, nil
}

func (m *mockPurchaseService) ListPurchases(policy access.Policy, filter services.RecordFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Purchase], error) {
	if m.listPurchasesFn != nil {
		return m.listPurchasesFn(policy, filter, page)
	}
	resp := pagination.NewPageResponse([]models.Purchase{}, 1, 20, 0)
	return &resp, nil
}

type mockTransferService struct {
	createTransferFn func(policy access.Policy, in services.TransferInput) (*models.Transfer, *services.AuditEvent, error)
	getTransferFn    func(policy access.Policy, id string) (*models.Transfer, error)
	listTransfersFn  func(policy access.Policy, filter services.RecordFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transfer], error)
}

func (m *mockTransferService) CreateTransfer(policy access.Policy, in services.TransferInput) (*models.Transfer, *services.AuditEvent, error) {
	if m.createTransferFn != nil {
		return m.createTransferFn(policy, in)
	}
	return &models.Transfer{}, nil, nil
}

func (m *mockTransferService) GetTransfer(policy access.Policy, id string) (*models.Transfer, error) {
	if m.getTransferFn != nil {
		return m.getTransferFn(policy, id)
	}
	return &models.Transfer{}, nil
}

func (m *mockTransferService) ListTransfers(policy access.Policy, filter services.RecordFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transfer], error) {
	if m.listTransfersFn != nil {
		return m.listTransfersFn(policy, filter, page)
	}
	resp := pagination.NewPageResponse([]models.Transfer{}, 1, 20, 0)
	return &resp, nil
}

type mockAssignmentService struct {
	createAssignmentFn func(policy access.Policy, in services.AssignmentInput) (*models.Assignment, *services.AuditEvent, error)
	returnAssignmentFn func(policy access.Policy, id string) (*models.Assignment, *services.AuditEvent, error)
	listAssignmentsFn  func(policy access.Policy, filter services.RecordFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Assignment], error)
}

func (m *mockAssignmentService) CreateAssignment(policy access.Policy, in services.AssignmentInput) (*models.Assignment, *services.AuditEvent, error) {
	if m.createAssignmentFn != nil {
		return m.createAssignmentFn(policy, in)
	}
	return &models.Assignment{}, nil, nil
}

func (m *mockAssignmentService) ReturnAssignment(policy access.Policy, id string) (*models.Assignment, *services.AuditEvent, error) {
	if m.returnAssignmentFn != nil {
		return m.returnAssignmentFn(policy, id)
	}
	return &models.Assignment{}, nil, nil
}

func (m *mockAssignmentService) ListAssignments(policy access.Policy, filter services.RecordFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Assignment], error) {
	if m.listAssignmentsFn != nil {
		return m.listAssignmentsFn(policy, filter, page)
	}
	resp := pagination.NewPageResponse([]models.Assignment{}, 1, 20, 0)
	return &resp, nil
}

type mockExpenditureService struct {
	createExpenditureFn func(policy access.Policy, in services.ExpenditureInput) (*models.Expenditure, *services.AuditEvent, error)
	listExpendituresFn  func(policy access.Policy, filter services.RecordFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Expenditure], error)
}

func (m *mockExpenditureService) CreateExpenditure(policy access.Policy, in services.ExpenditureInput) (*models.Expenditure, *services.AuditEvent, error) {
	if m.createExpenditureFn != nil {
		return m.createExpenditureFn(policy, in)
	}
	return &models.Expenditure{}, nil, nil
}

func (m *mockExpenditureService) ListExpenditures(policy access.Policy, filter services.RecordFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Expenditure], error) {
	if m.listExpendituresFn != nil {
		return m.listExpendituresFn(policy, filter, page)
	}
	resp := pagination.NewPageResponse([]models.Expenditure{}, 1, 20, 0)
	return &resp, nil
}

type mockDashboardService struct {
	getMetricsFn   func(policy access.Policy, filter services.RecordFilter) (*services.DashboardMetrics, error)
	getMovementsFn func(policy access.Policy, filter services.RecordFilter) (*services.Movements, error)
}

func (m *mockDashboardService) GetMetrics(policy access.Policy, filter services.RecordFilter) (*services.DashboardMetrics, error) {
	if m.getMetricsFn != nil {
		return m.getMetricsFn(policy, filter)
	}
	return &services.DashboardMetrics{}, nil
}

func (m *mockDashboardService) GetMovements(policy access.Policy, filter services.RecordFilter) (*services.Movements, error) {
	if m.getMovementsFn != nil {
		return m.getMovementsFn(policy, filter)
	}
	return &services.Movements{}, nil
}

type mockUserService struct {
	createUserFn     func(username, email, password string, role models.Role, assignedBaseID *string) (*models.User, error)
	getUserByEmailFn func(email string) (*models.User, error)
	getUserByIDFn    func(id string) (*models.User, error)
	attemptLoginFn   func(email, password string) (*models.User, error)
}

func (m *mockUserService) CreateUser(username, email, password string, role models.Role, assignedBaseID *string) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(username, email, password, role, assignedBaseID)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByEmail(email string) (*models.User, error) {
	if m.getUserByEmailFn != nil {
		return m.getUserByEmailFn(email)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByID(id string) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{}, nil
}

func (m *mockUserService) VerifyPassword(_ *models.User, _ string) bool { return true }

func (m *mockUserService) AttemptLogin(email, password string) (*models.User, error) {
	if m.attemptLoginFn != nil {
		return m.attemptLoginFn(email, password)
	}
	return &models.User{IsActive: true}, nil
}

type mockBaseService struct {
	createBaseFn func(name, location string, commanderID *string) (*models.Base, error)
	getBaseFn    func(policy access.Policy, id string) (*models.Base, error)
	listBasesFn  func(policy access.Policy) ([]models.Base, error)
}

func (m *mockBaseService) CreateBase(name, location string, commanderID *string) (*models.Base, error) {
	if m.createBaseFn != nil {
		return m.createBaseFn(name, location, commanderID)
	}
	return &models.Base{}, nil
}

func (m *mockBaseService) GetBase(policy access.Policy, id string) (*models.Base, error) {
	if m.getBaseFn != nil {
		return m.getBaseFn(policy, id)
	}
	return &models.Base{}, nil
}

func (m *mockBaseService) ListBases(policy access.Policy) ([]models.Base, error) {
	if m.listBasesFn != nil {
		return m.listBasesFn(policy)
	}
	return []models.Base{}, nil
}

type mockAssetService struct {
	createAssetFn func(name string, assetType models.AssetType, baseID string, openingBalance int64) (*models.Asset, error)
	getAssetFn    func(policy access.Policy, id string) (*models.Asset, error)
	listAssetsFn  func(policy access.Policy, filter services.RecordFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error)
}

func (m *mockAssetService) CreateAsset(name string, assetType models.AssetType, baseID string, openingBalance int64) (*models.Asset, error) {
	if m.createAssetFn != nil {
		return m.createAssetFn(name, assetType, baseID, openingBalance)
	}
	return &models.Asset{}, nil
}

func (m *mockAssetService) GetAsset(policy access.Policy, id string) (*models.Asset, error) {
	if m.getAssetFn != nil {
		return m.getAssetFn(policy, id)
	}
	return &models.Asset{}, nil
}

func (m *mockAssetService) ListAssets(policy access.Policy, filter services.RecordFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error) {
	if m.listAssetsFn != nil {
		return m.listAssetsFn(policy, filter, page)
	}
	resp := pagination.NewPageResponse([]models.Asset{}, 1, 20, 0)
	return &resp, nil
}

// mockAuditService captures recorded events.
type mockAuditService struct {
	mu     sync.Mutex
	events []services.AuditEvent
	listFn func(filter services.AuditFilter, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error)
}

func (m *mockAuditService) Record(event *services.AuditEvent, _ string) {
	if event == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, *event)
}

func (m *mockAuditService) List(filter services.AuditFilter, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	if m.listFn != nil {
		return m.listFn(filter, page)
	}
	resp := pagination.NewPageResponse([]models.AuditLog{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockAuditService) Close(_ context.Context) error { return nil }

func (m *mockAuditService) recorded() []services.AuditEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]services.AuditEvent(nil), m.events...)
}

// verify interface compliance
var (
	_ services.PurchaseServicer    = (*mockPurchaseService)(nil)
	_ services.TransferServicer    = (*mockTransferService)(nil)
	_ services.AssignmentServicer  = (*mockAssignmentService)(nil)
	_ services.ExpenditureServicer = (*mockExpenditureService)(nil)
	_ services.DashboardServicer   = (*mockDashboardService)(nil)
	_ services.UserServicer        = (*mockUserService)(nil)
	_ services.BaseServicer        = (*mockBaseService)(nil)
	_ services.AssetServicer       = (*mockAssetService)(nil)
	_ services.AuditServicer       = (*mockAuditService)(nil)
)

// --- test helpers ---

const (
	testAdminID   = "0190a8f2-0000-7000-8000-000000000001"
	testBaseA     = "0190a8f2-0000-7000-8000-00000000000a"
	testBaseB     = "0190a8f2-0000-7000-8000-00000000000b"
	testAssetID   = "0190a8f2-0000-7000-8000-0000000000a1"
	testRecordID  = "0190a8f2-0000-7000-8000-0000000000f1"
	testCommander = "0190a8f2-0000-7000-8000-000000000002"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// injectPolicy stands in for the auth middleware.
func injectPolicy(policy access.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, policy.ActorID())
		c.Set(access.ContextKey, policy)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	return doRequestWithHeaders(r, method, path, body, nil)
}

func doRequestWithHeaders(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
