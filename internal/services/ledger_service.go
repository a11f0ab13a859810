package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "arsenal/internal/errors"
	"arsenal/internal/models"
)

// ledgerService owns every write to the assets table.
type ledgerService struct{}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService() LedgerServicer {
	return &ledgerService{}
}

// FindByID loads an asset by ID.
func (s *ledgerService) FindByID(tx *gorm.DB, assetID string) (*models.Asset, error) {
	var asset models.Asset
	if err := tx.Where("id = ?", assetID).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, nil
}

// FindForBase loads an asset that must belong to baseID.
func (s *ledgerService) FindForBase(tx *gorm.DB, assetID, baseID string) (*models.Asset, error) {
	var asset models.Asset
	if err := tx.Where("id = ? AND base_id = ?", assetID, baseID).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, nil
}

// FindOrCreateForBase returns the asset line matching (name, type, baseID),
// creating it with zero balances when it does not exist. Concurrent callers
// converge on the same row through the unique index.
func (s *ledgerService) FindOrCreateForBase(tx *gorm.DB, name string, assetType models.AssetType, baseID string) (*models.Asset, error) {
	candidate := models.Asset{Name: name, Type: assetType, BaseID: baseID}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&candidate).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var asset models.Asset
	if err := tx.Where("name = ? AND type = ? AND base_id = ?", name, assetType, baseID).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, nil
}

// Adjust applies delta to the asset's counters in a single conditional
// UPDATE. The row is only written when every counter stays non-negative and
// current_balance stays at or above assigned, so concurrent adjustments can
// never jointly overdraw a line.
func (s *ledgerService) Adjust(tx *gorm.DB, assetID string, delta models.BalanceDelta) (*models.Asset, error) {
	if delta.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "balance adjustment must change at least one counter")
	}

	result := tx.Model(&models.Asset{}).
		Where("id = ?", assetID).
		Where("current_balance + ? >= 0", delta.Current).
		Where("assigned + ? >= 0", delta.Assigned).
		Where("expended + ? >= 0", delta.Expended).
		Where("(current_balance + ?) - (assigned + ?) >= 0", delta.Current, delta.Assigned).
		Updates(map[string]any{
			"current_balance": gorm.Expr("current_balance + ?", delta.Current),
			"assigned":        gorm.Expr("assigned + ?", delta.Assigned),
			"expended":        gorm.Expr("expended + ?", delta.Expended),
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}

	asset, err := s.FindByID(tx, assetID)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.InsufficientQuantity(asset.Available())
	}
	return asset, nil
}
