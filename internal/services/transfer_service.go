package services

import (
	"gorm.io/gorm"

	"arsenal/internal/access"
	apperrors "arsenal/internal/errors"
	"arsenal/internal/models"
	"arsenal/internal/pagination"
)

// transferService moves stock between bases.
type transferService struct {
	db     *gorm.DB
	ledger LedgerServicer
}

// NewTransferService creates a new TransferServicer.
func NewTransferService(db *gorm.DB, ledger LedgerServicer) TransferServicer {
	return &transferService{db: db, ledger: ledger}
}

// CreateTransfer debits the source asset, credits the matching asset line at
// the destination base (creating it if needed) and stores the transfer. All
// three writes share one database transaction.
func (s *transferService) CreateTransfer(policy access.Policy, in TransferInput) (*models.Transfer, *AuditEvent, error) {
	if in.AssetID == "" || in.FromBaseID == "" || in.ToBaseID == "" {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "assetId, fromBase and toBase are required")
	}
	if in.FromBaseID == in.ToBaseID {
		return nil, nil, apperrors.ErrSameBaseTransfer
	}
	if err := validateQuantity(in.Quantity); err != nil {
		return nil, nil, err
	}
	if err := policy.CanAccessBase(in.FromBaseID); err != nil {
		return nil, nil, err
	}

	actor := policy.ActorID()
	transfer := &models.Transfer{
		Reference:    resolveReference(in.Reference),
		AssetID:      in.AssetID,
		FromBaseID:   in.FromBaseID,
		ToBaseID:     in.ToBaseID,
		Quantity:     in.Quantity,
		TransferDate: defaultDate(in.TransferDate),
		Status:       models.TransferStatusCompleted,
		InitiatedBy:  actor,
		ApprovedBy:   &actor,
		Notes:        in.Notes,
	}

	var source, dest *models.Asset
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureNewReference(tx, &models.Transfer{}, transfer.Reference); err != nil {
			return err
		}
		if _, err := requireBase(tx, in.FromBaseID); err != nil {
			return err
		}
		if _, err := requireBase(tx, in.ToBaseID); err != nil {
			return err
		}

		asset, err := s.ledger.FindForBase(tx, in.AssetID, in.FromBaseID)
		if err != nil {
			return err
		}
		if source, err = s.ledger.Adjust(tx, asset.ID, models.BalanceDelta{Current: -in.Quantity}); err != nil {
			return err
		}

		target, err := s.ledger.FindOrCreateForBase(tx, asset.Name, asset.Type, in.ToBaseID)
		if err != nil {
			return err
		}
		if dest, err = s.ledger.Adjust(tx, target.ID, models.BalanceDelta{Current: in.Quantity}); err != nil {
			return err
		}

		transfer.DestAssetID = dest.ID
		return createRecord(tx, transfer)
	})
	if err != nil {
		return nil, nil, err
	}

	created, err := s.load(transfer.ID)
	if err != nil {
		return nil, nil, err
	}

	event := &AuditEvent{
		Action:     "CREATE_TRANSFER",
		ActorID:    actor,
		EntityType: "transfer",
		EntityID:   created.ID,
		Changes: map[string]any{
			"reference":          created.Reference,
			"assetId":            created.AssetID,
			"destAssetId":        created.DestAssetID,
			"fromBase":           created.FromBaseID,
			"toBase":             created.ToBaseID,
			"quantity":           created.Quantity,
			"sourceBalance":      source.CurrentBalance,
			"destinationBalance": dest.CurrentBalance,
		},
	}
	return created, event, nil
}

// GetTransfer retrieves a transfer touching a base visible to policy.
func (s *transferService) GetTransfer(policy access.Policy, id string) (*models.Transfer, error) {
	transfer, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanAccessAnyBase(transfer.FromBaseID, transfer.ToBaseID); err != nil {
		return nil, err
	}
	return transfer, nil
}

// ListTransfers returns transfers into or out of the scoped base, newest first.
func (s *transferService) ListTransfers(policy access.Policy, filter RecordFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transfer], error) {
	q := s.db.Model(&models.Transfer{})
	if base := policy.ScopeBase(filter.BaseID); base != "" {
		q = q.Where("from_base = ? OR to_base = ?", base, base)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	q = applyRecordFilter(s.db, q, "transfer_date", filter)

	result, err := pagination.Find[models.Transfer](q, page, "transfer_date DESC",
		"Asset", "FromBase", "ToBase", "Initiator")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

func (s *transferService) load(id string) (*models.Transfer, error) {
	var transfer models.Transfer
	if err := s.db.Preload("Asset").Preload("DestAsset").Preload("FromBase").Preload("ToBase").
		Preload("Initiator").Preload("Approver").
		Where("id = ?", id).First(&transfer).Error; err != nil {
		return nil, notFound(err, apperrors.ErrTransferNotFound)
	}
	return &transfer, nil
}
