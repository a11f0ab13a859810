package services

import (
	"strings"

	"gorm.io/gorm"

	"arsenal/internal/access"
	apperrors "arsenal/internal/errors"
	"arsenal/internal/models"
	"arsenal/internal/pagination"
)

// expenditureService writes off consumed or lost stock.
type expenditureService struct {
	db     *gorm.DB
	ledger LedgerServicer
}

// NewExpenditureService creates a new ExpenditureServicer.
func NewExpenditureService(db *gorm.DB, ledger LedgerServicer) ExpenditureServicer {
	return &expenditureService{db: db, ledger: ledger}
}

// CreateExpenditure moves quantity from current_balance to expended. Units
// already assigned to personnel cannot be expended.
func (s *expenditureService) CreateExpenditure(policy access.Policy, in ExpenditureInput) (*models.Expenditure, *AuditEvent, error) {
	if in.AssetID == "" || in.BaseID == "" {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "assetId and baseId are required")
	}
	if strings.TrimSpace(in.Reason) == "" {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "reason is required")
	}
	if err := validateQuantity(in.Quantity); err != nil {
		return nil, nil, err
	}
	if err := policy.CanAccessBase(in.BaseID); err != nil {
		return nil, nil, err
	}

	expenditure := &models.Expenditure{
		Reference:       resolveReference(in.Reference),
		AssetID:         in.AssetID,
		BaseID:          in.BaseID,
		Quantity:        in.Quantity,
		Reason:          in.Reason,
		ExpenditureDate: defaultDate(in.ExpenditureDate),
		RecordedBy:      policy.ActorID(),
	}

	var balance *models.Asset
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureNewReference(tx, &models.Expenditure{}, expenditure.Reference); err != nil {
			return err
		}
		asset, err := s.ledger.FindForBase(tx, in.AssetID, in.BaseID)
		if err != nil {
			return err
		}
		delta := models.BalanceDelta{Current: -in.Quantity, Expended: in.Quantity}
		if balance, err = s.ledger.Adjust(tx, asset.ID, delta); err != nil {
			return err
		}
		return createRecord(tx, expenditure)
	})
	if err != nil {
		return nil, nil, err
	}

	created, err := s.load(expenditure.ID)
	if err != nil {
		return nil, nil, err
	}

	event := &AuditEvent{
		Action:     "CREATE_EXPENDITURE",
		ActorID:    policy.ActorID(),
		EntityType: "expenditure",
		EntityID:   created.ID,
		Changes: map[string]any{
			"reference":      created.Reference,
			"assetId":        created.AssetID,
			"baseId":         created.BaseID,
			"quantity":       created.Quantity,
			"reason":         created.Reason,
			"currentBalance": balance.CurrentBalance,
			"expended":       balance.Expended,
		},
	}
	return created, event, nil
}

// ListExpenditures returns expenditures in scope, newest first.
func (s *expenditureService) ListExpenditures(policy access.Policy, filter RecordFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Expenditure], error) {
	q := s.db.Model(&models.Expenditure{})
	if base := policy.ScopeBase(filter.BaseID); base != "" {
		q = q.Where("base_id = ?", base)
	}
	q = applyRecordFilter(s.db, q, "expenditure_date", filter)

	result, err := pagination.Find[models.Expenditure](q, page, "expenditure_date DESC", "Asset", "Base", "Recorder")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

func (s *expenditureService) load(id string) (*models.Expenditure, error) {
	var expenditure models.Expenditure
	if err := s.db.Preload("Asset").Preload("Base").Preload("Recorder").
		Where("id = ?", id).First(&expenditure).Error; err != nil {
		return nil, notFound(err, apperrors.ErrNotFound)
	}
	return &expenditure, nil
}
