package models

import (
	"time"

	"arsenal/internal/uuid"

	"gorm.io/gorm"
)

// Entity contains common columns for all tables. Ledger facts are never
// deleted, so there is no soft-delete column.
type Entity struct {
	ID        string    `gorm:"size:36;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (e *Entity) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New()
	}
	return nil
}
