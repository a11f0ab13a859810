package models

import (
	"time"

	"arsenal/internal/uuid"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditLog records a successful mutating operation.
// Entries are append-only: no Entity embed and no UpdatedAt.
type AuditLog struct {
	ID         string         `gorm:"size:36;primaryKey" json:"id"`
	Action     string         `gorm:"size:64;not null" json:"action"`
	UserID     string         `gorm:"size:36;not null;index:idx_audit_logs_user_time,priority:1" json:"userId"`
	EntityType string         `gorm:"size:32;not null;index:idx_audit_logs_entity,priority:1" json:"entityType"`
	EntityID   string         `gorm:"size:36;not null;index:idx_audit_logs_entity,priority:2" json:"entityId"`
	Changes    datatypes.JSON `json:"changes"`
	IPAddress  string         `gorm:"size:64" json:"ipAddress"`
	Timestamp  time.Time      `gorm:"not null;index:idx_audit_logs_user_time,priority:2" json:"timestamp"`
}

// BeforeCreate hook generates a UUIDv7 and stamps the entry time.
func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New()
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now()
	}
	return nil
}
