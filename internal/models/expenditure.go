package models

import "time"

// Expenditure records units consumed or written off at a base. Immutable.
type Expenditure struct {
	Entity
	Reference       string    `gorm:"size:64;not null;uniqueIndex" json:"reference"`
	AssetID         string    `gorm:"size:36;not null;index" json:"assetId"`
	BaseID          string    `gorm:"size:36;not null;index:idx_expenditures_base_date,priority:1" json:"baseId"`
	Quantity        int64     `gorm:"not null" json:"quantity"`
	Reason          string    `gorm:"not null" json:"reason"`
	ExpenditureDate time.Time `gorm:"not null;index:idx_expenditures_base_date,priority:2" json:"expenditureDate"`
	RecordedBy      string    `gorm:"size:36;not null" json:"recordedBy"`

	Asset    *Asset `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
	Base     *Base  `gorm:"foreignKey:BaseID" json:"base,omitempty"`
	Recorder *User  `gorm:"foreignKey:RecordedBy" json:"recorder,omitempty"`
}
