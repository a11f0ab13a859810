package models

// AssetType is the equipment category of an asset line.
type AssetType string

const (
	AssetTypeVehicle    AssetType = "vehicle"
	AssetTypeWeapon     AssetType = "weapon"
	AssetTypeAmmunition AssetType = "ammunition"
	AssetTypeEquipment  AssetType = "equipment"
)

// Valid reports whether t is one of the known asset types.
func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeVehicle, AssetTypeWeapon, AssetTypeAmmunition, AssetTypeEquipment:
		return true
	}
	return false
}

// Asset is a named, typed inventory line scoped to one base. It is the single
// source of truth for balances; only the ledger service mutates it.
//
// Invariants: every counter is >= 0 and CurrentBalance >= Assigned. Assigned
// units are still physically present, so assignment does not reduce
// CurrentBalance.
type Asset struct {
	Entity
	Name           string    `gorm:"size:255;not null;uniqueIndex:uq_assets_name_type_base" json:"name"`
	Type           AssetType `gorm:"size:32;not null;uniqueIndex:uq_assets_name_type_base;index:idx_assets_base_type,priority:2" json:"type"`
	BaseID         string    `gorm:"size:36;not null;uniqueIndex:uq_assets_name_type_base;index:idx_assets_base_type,priority:1" json:"baseId"`
	OpeningBalance int64     `gorm:"not null;default:0" json:"openingBalance"`
	CurrentBalance int64     `gorm:"not null;default:0" json:"currentBalance"`
	Assigned       int64     `gorm:"not null;default:0" json:"assigned"`
	Expended       int64     `gorm:"not null;default:0" json:"expended"`

	Base *Base `gorm:"foreignKey:BaseID" json:"base,omitempty"`
}

// Available is the quantity eligible for new assignments, expenditure or
// transfer-out without breaking CurrentBalance >= Assigned.
func (a *Asset) Available() int64 {
	return a.CurrentBalance - a.Assigned
}

// BalanceDelta is a signed change applied atomically to an asset's counters.
type BalanceDelta struct {
	Current  int64
	Assigned int64
	Expended int64
}

// IsZero reports whether the delta changes nothing.
func (d BalanceDelta) IsZero() bool {
	return d.Current == 0 && d.Assigned == 0 && d.Expended == 0
}
