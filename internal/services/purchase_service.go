package services

import (
	"gorm.io/gorm"

	"arsenal/internal/access"
	apperrors "arsenal/internal/errors"
	"arsenal/internal/models"
	"arsenal/internal/pagination"
)

// purchaseService records stock received at a base.
type purchaseService struct {
	db     *gorm.DB
	ledger LedgerServicer
}

// NewPurchaseService creates a new PurchaseServicer.
func NewPurchaseService(db *gorm.DB, ledger LedgerServicer) PurchaseServicer {
	return &purchaseService{db: db, ledger: ledger}
}

// CreatePurchase credits the asset's current balance and stores the purchase
// in one database transaction.
func (s *purchaseService) CreatePurchase(policy access.Policy, in PurchaseInput) (*models.Purchase, *AuditEvent, error) {
	if in.AssetID == "" || in.BaseID == "" {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "assetId and baseId are required")
	}
	if err := validateQuantity(in.Quantity); err != nil {
		return nil, nil, err
	}
	if err := policy.CanAccessBase(in.BaseID); err != nil {
		return nil, nil, err
	}

	purchase := &models.Purchase{
		Reference:    resolveReference(in.Reference),
		AssetID:      in.AssetID,
		BaseID:       in.BaseID,
		Quantity:     in.Quantity,
		PurchaseDate: defaultDate(in.PurchaseDate),
		CreatedBy:    policy.ActorID(),
		Notes:        in.Notes,
	}

	var balance *models.Asset
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureNewReference(tx, &models.Purchase{}, purchase.Reference); err != nil {
			return err
		}
		asset, err := s.ledger.FindForBase(tx, in.AssetID, in.BaseID)
		if err != nil {
			return err
		}
		balance, err = s.ledger.Adjust(tx, asset.ID, models.BalanceDelta{Current: in.Quantity})
		if err != nil {
			return err
		}
		return createRecord(tx, purchase)
	})
	if err != nil {
		return nil, nil, err
	}

	created, err := s.load(purchase.ID)
	if err != nil {
		return nil, nil, err
	}

	event := &AuditEvent{
		Action:     "CREATE_PURCHASE",
		ActorID:    policy.ActorID(),
		EntityType: "purchase",
		EntityID:   created.ID,
		Changes: map[string]any{
			"reference":      created.Reference,
			"assetId":        created.AssetID,
			"baseId":         created.BaseID,
			"quantity":       created.Quantity,
			"currentBalance": balance.CurrentBalance,
		},
	}
	return created, event, nil
}

// GetPurchase retrieves a purchase visible to policy.
func (s *purchaseService) GetPurchase(policy access.Policy, id string) (*models.Purchase, error) {
	purchase, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanAccessBase(purchase.BaseID); err != nil {
		return nil, err
	}
	return purchase, nil
}

// ListPurchases returns purchases in scope, newest first.
func (s *purchaseService) ListPurchases(policy access.Policy, filter RecordFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Purchase], error) {
	q := s.db.Model(&models.Purchase{})
	if base := policy.ScopeBase(filter.BaseID); base != "" {
		q = q.Where("base_id = ?", base)
	}
	q = applyRecordFilter(s.db, q, "purchase_date", filter)

	result, err := pagination.Find[models.Purchase](q, page, "purchase_date DESC", "Asset", "Base", "Creator")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

func (s *purchaseService) load(id string) (*models.Purchase, error) {
	var purchase models.Purchase
	if err := s.db.Preload("Asset").Preload("Base").Preload("Creator").
		Where("id = ?", id).First(&purchase).Error; err != nil {
		return nil, notFound(err, apperrors.ErrPurchaseNotFound)
	}
	return &purchase, nil
}
