package models

import "time"

// TransferStatus is the lifecycle state of a transfer. Transfers are applied
// immediately, so only TransferStatusCompleted is produced today.
type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "pending"
	TransferStatusCompleted TransferStatus = "completed"
	TransferStatusRejected  TransferStatus = "rejected"
)

// Transfer moves quantity of one asset line from one base to another. The
// source row is debited and the destination row (matched by name, type and
// base) is credited in the same database transaction.
type Transfer struct {
	Entity
	Reference    string         `gorm:"size:64;not null;uniqueIndex" json:"reference"`
	AssetID      string         `gorm:"size:36;not null" json:"assetId"`
	DestAssetID  string         `gorm:"size:36;not null" json:"destAssetId"`
	FromBaseID   string         `gorm:"column:from_base;size:36;not null;index:idx_transfers_from_date,priority:1" json:"fromBase"`
	ToBaseID     string         `gorm:"column:to_base;size:36;not null;index:idx_transfers_to_date,priority:1" json:"toBase"`
	Quantity     int64          `gorm:"not null" json:"quantity"`
	TransferDate time.Time      `gorm:"not null;index:idx_transfers_from_date,priority:2;index:idx_transfers_to_date,priority:2" json:"transferDate"`
	Status       TransferStatus `gorm:"size:16;not null;default:'completed';index" json:"status"`
	InitiatedBy  string         `gorm:"size:36;not null" json:"initiatedBy"`
	ApprovedBy   *string        `gorm:"size:36" json:"approvedBy,omitempty"`
	Notes        string         `json:"notes"`

	Asset     *Asset `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
	DestAsset *Asset `gorm:"foreignKey:DestAssetID" json:"destAsset,omitempty"`
	FromBase  *Base  `gorm:"foreignKey:FromBaseID" json:"fromBaseDetail,omitempty"`
	ToBase    *Base  `gorm:"foreignKey:ToBaseID" json:"toBaseDetail,omitempty"`
	Initiator *User  `gorm:"foreignKey:InitiatedBy" json:"initiator,omitempty"`
	Approver  *User  `gorm:"foreignKey:ApprovedBy" json:"approver,omitempty"`
}
