package models

import "time"

// Purchase records new stock received at a base. Immutable once created.
type Purchase struct {
	Entity
	Reference    string    `gorm:"size:64;not null;uniqueIndex" json:"reference"`
	AssetID      string    `gorm:"size:36;not null;index:idx_purchases_asset_date,priority:1" json:"assetId"`
	BaseID       string    `gorm:"size:36;not null;index:idx_purchases_base_date,priority:1" json:"baseId"`
	Quantity     int64     `gorm:"not null" json:"quantity"`
	PurchaseDate time.Time `gorm:"not null;index:idx_purchases_base_date,priority:2;index:idx_purchases_asset_date,priority:2" json:"purchaseDate"`
	CreatedBy    string    `gorm:"size:36;not null" json:"createdBy"`
	Notes        string    `json:"notes"`

	Asset   *Asset `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
	Base    *Base  `gorm:"foreignKey:BaseID" json:"base,omitempty"`
	Creator *User  `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}
