package services

import (
	"errors"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	apperrors "arsenal/internal/errors"
	"arsenal/internal/models"
)

// resolveReference returns the caller's idempotency reference, or a fresh
// ULID when none was supplied.
func resolveReference(ref string) string {
	if ref = strings.TrimSpace(ref); ref != "" {
		return ref
	}
	return ulid.Make().String()
}

// defaultDate returns t, or the current time when t is zero.
func defaultDate(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}

// validateQuantity rejects non-positive quantities.
func validateQuantity(q int64) error {
	if q <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "quantity must be greater than zero")
	}
	return nil
}

// ensureNewReference fails with DUPLICATE_TRANSACTION when model's table
// already holds a row with ref. The unique index still guards the insert.
func ensureNewReference(tx *gorm.DB, model any, ref string) error {
	var count int64
	if err := tx.Model(model).Where("reference = ?", ref).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrDuplicateTransaction
	}
	return nil
}

// createRecord inserts a ledger record, mapping a unique violation on the
// reference to DUPLICATE_TRANSACTION.
func createRecord(tx *gorm.DB, record any) error {
	if err := tx.Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrDuplicateTransaction
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// requireBase fails with BASE_NOT_FOUND unless the base exists.
func requireBase(tx *gorm.DB, baseID string) (*models.Base, error) {
	var base models.Base
	if err := tx.Where("id = ?", baseID).First(&base).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBaseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &base, nil
}

// assetIDsOfType is a subquery selecting the IDs of assets of type t.
func assetIDsOfType(db *gorm.DB, t models.AssetType) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).Model(&models.Asset{}).Select("id").Where("type = ?", t)
}

// applyRecordFilter narrows q by equipment type and a date range on
// dateColumn. Base and status filters differ per record kind and are applied
// by the caller.
func applyRecordFilter(db, q *gorm.DB, dateColumn string, f RecordFilter) *gorm.DB {
	if f.EquipmentType != "" {
		q = q.Where("asset_id IN (?)", assetIDsOfType(db, f.EquipmentType))
	}
	if f.StartDate != nil {
		q = q.Where(dateColumn+" >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where(dateColumn+" <= ?", *f.EndDate)
	}
	return q
}

// notFound maps gorm.ErrRecordNotFound to sentinel and anything else to an
// internal error.
func notFound(err error, sentinel *apperrors.AppError) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
