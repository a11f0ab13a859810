package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"arsenal/internal/access"
	"arsenal/internal/models"
	"arsenal/internal/pagination"
)

// AuditEvent describes a committed mutation for the audit trail.
type AuditEvent struct {
	Action     string
	ActorID    string
	EntityType string
	EntityID   string
	Changes    map[string]any
}

// RecordFilter holds optional filters for listing ledger records. BaseID is
// narrowed by the caller's access policy before it is applied.
type RecordFilter struct {
	BaseID        string
	EquipmentType models.AssetType
	Status        string
	StartDate     *time.Time
	EndDate       *time.Time
}

// LedgerServicer is the only component allowed to change asset balances.
// Every method runs on the caller's transaction handle.
type LedgerServicer interface {
	FindByID(tx *gorm.DB, assetID string) (*models.Asset, error)
	FindForBase(tx *gorm.DB, assetID, baseID string) (*models.Asset, error)
	FindOrCreateForBase(tx *gorm.DB, name string, assetType models.AssetType, baseID string) (*models.Asset, error)
	Adjust(tx *gorm.DB, assetID string, delta models.BalanceDelta) (*models.Asset, error)
}

// PurchaseInput is a request to receive new stock at a base.
type PurchaseInput struct {
	Reference    string
	AssetID      string
	BaseID       string
	Quantity     int64
	PurchaseDate time.Time
	Notes        string
}

// PurchaseServicer defines the contract for purchase recording.
type PurchaseServicer interface {
	CreatePurchase(policy access.Policy, in PurchaseInput) (*models.Purchase, *AuditEvent, error)
	GetPurchase(policy access.Policy, id string) (*models.Purchase, error)
	ListPurchases(policy access.Policy, filter RecordFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Purchase], error)
}

// TransferInput is a request to move stock between two bases.
type TransferInput struct {
	Reference    string
	AssetID      string
	FromBaseID   string
	ToBaseID     string
	Quantity     int64
	TransferDate time.Time
	Notes        string
}

// TransferServicer defines the contract for inter-base transfers.
type TransferServicer interface {
	CreateTransfer(policy access.Policy, in TransferInput) (*models.Transfer, *AuditEvent, error)
	GetTransfer(policy access.Policy, id string) (*models.Transfer, error)
	ListTransfers(policy access.Policy, filter RecordFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transfer], error)
}

// AssignmentInput is a request to issue stock to personnel.
type AssignmentInput struct {
	Reference      string
	AssetID        string
	BaseID         string
	PersonnelName  string
	PersonnelID    string
	Quantity       int64
	AssignmentDate time.Time
}

// AssignmentServicer defines the contract for personnel assignments.
type AssignmentServicer interface {
	CreateAssignment(policy access.Policy, in AssignmentInput) (*models.Assignment, *AuditEvent, error)
	ReturnAssignment(policy access.Policy, id string) (*models.Assignment, *AuditEvent, error)
	ListAssignments(policy access.Policy, filter RecordFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Assignment], error)
}

// ExpenditureInput is a request to write off consumed stock.
type ExpenditureInput struct {
	Reference       string
	AssetID         string
	BaseID          string
	Quantity        int64
	Reason          string
	ExpenditureDate time.Time
}

// ExpenditureServicer defines the contract for expenditure recording.
type ExpenditureServicer interface {
	CreateExpenditure(policy access.Policy, in ExpenditureInput) (*models.Expenditure, *AuditEvent, error)
	ListExpenditures(policy access.Policy, filter RecordFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Expenditure], error)
}

// DashboardMetrics summarizes balances and movements for a scope.
type DashboardMetrics struct {
	OpeningBalance int64 `json:"openingBalance"`
	ClosingBalance int64 `json:"closingBalance"`
	CurrentBalance int64 `json:"currentBalance"`
	NetMovement    int64 `json:"netMovement"`
	Purchases      int64 `json:"purchases"`
	TransfersIn    int64 `json:"transfersIn"`
	TransfersOut   int64 `json:"transfersOut"`
	Assigned       int64 `json:"assigned"`
	Expended       int64 `json:"expended"`
	AssetsCount    int64 `json:"assetsCount"`
}

// Movements lists the records behind a dashboard's net movement.
type Movements struct {
	Purchases    []models.Purchase `json:"purchases"`
	TransfersIn  []models.Transfer `json:"transfersIn"`
	TransfersOut []models.Transfer `json:"transfersOut"`
}

// DashboardServicer defines the contract for read-only dashboard aggregates.
type DashboardServicer interface {
	GetMetrics(policy access.Policy, filter RecordFilter) (*DashboardMetrics, error)
	GetMovements(policy access.Policy, filter RecordFilter) (*Movements, error)
}

// AuditFilter holds optional filters for reading the audit trail.
type AuditFilter struct {
	EntityType string
	EntityID   string
	UserID     string
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Record(event *AuditEvent, ipAddress string)
	List(filter AuditFilter, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error)
	Close(ctx context.Context) error
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, email, password string, role models.Role, assignedBaseID *string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
}

// BaseServicer defines the contract for the base directory.
type BaseServicer interface {
	CreateBase(name, location string, commanderID *string) (*models.Base, error)
	GetBase(policy access.Policy, id string) (*models.Base, error)
	ListBases(policy access.Policy) ([]models.Base, error)
}

// AssetServicer defines the contract for the asset catalogue.
type AssetServicer interface {
	CreateAsset(name string, assetType models.AssetType, baseID string, openingBalance int64) (*models.Asset, error)
	GetAsset(policy access.Policy, id string) (*models.Asset, error)
	ListAssets(policy access.Policy, filter RecordFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error)
}
