package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"arsenal/internal/access"
	apperrors "arsenal/internal/errors"
	"arsenal/internal/models"
	"arsenal/internal/pagination"
)

// assetService manages the catalogue of asset lines per base.
type assetService struct {
	db *gorm.DB
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(db *gorm.DB) AssetServicer {
	return &assetService{db: db}
}

// CreateAsset registers an asset line at a base. The opening balance is
// fixed at creation and seeds the current balance.
func (s *assetService) CreateAsset(name string, assetType models.AssetType, baseID string, openingBalance int64) (*models.Asset, error) {
	name = strings.TrimSpace(name)
	if name == "" || baseID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name and baseId are required")
	}
	if !assetType.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid asset type")
	}
	if openingBalance < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "openingBalance must not be negative")
	}

	asset := &models.Asset{
		Name:           name,
		Type:           assetType,
		BaseID:         baseID,
		OpeningBalance: openingBalance,
		CurrentBalance: openingBalance,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := requireBase(tx, baseID); err != nil {
			return err
		}
		if err := tx.Create(asset).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrDuplicateAsset
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return asset, nil
}

// GetAsset retrieves an asset visible to policy.
func (s *assetService) GetAsset(policy access.Policy, id string) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.Preload("Base").Where("id = ?", id).First(&asset).Error; err != nil {
		return nil, notFound(err, apperrors.ErrAssetNotFound)
	}
	if err := policy.CanAccessBase(asset.BaseID); err != nil {
		return nil, err
	}
	return &asset, nil
}

// ListAssets returns asset lines in scope ordered by name.
func (s *assetService) ListAssets(policy access.Policy, filter RecordFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error) {
	q := s.db.Model(&models.Asset{})
	if base := policy.ScopeBase(filter.BaseID); base != "" {
		q = q.Where("base_id = ?", base)
	}
	if filter.EquipmentType != "" {
		q = q.Where("type = ?", filter.EquipmentType)
	}

	result, err := pagination.Find[models.Asset](q, page, "name ASC", "Base")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}
