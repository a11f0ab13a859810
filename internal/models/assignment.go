package models

import "time"

// AssignmentStatus tracks whether assigned units are still with personnel.
type AssignmentStatus string

const (
	AssignmentStatusActive   AssignmentStatus = "active"
	AssignmentStatusReturned AssignmentStatus = "returned"
)

// Assignment issues units of an asset to a named member of personnel.
// Creating one raises Asset.Assigned; returning it lowers Asset.Assigned.
type Assignment struct {
	Entity
	Reference      string           `gorm:"size:64;not null;uniqueIndex" json:"reference"`
	AssetID        string           `gorm:"size:36;not null;index" json:"assetId"`
	BaseID         string           `gorm:"size:36;not null;index:idx_assignments_base_status,priority:1" json:"baseId"`
	PersonnelName  string           `gorm:"size:255;not null" json:"personnelName"`
	PersonnelID    string           `gorm:"size:64;not null" json:"personnelId"`
	Quantity       int64            `gorm:"not null" json:"quantity"`
	AssignmentDate time.Time        `gorm:"not null" json:"assignmentDate"`
	ReturnDate     *time.Time       `json:"returnDate"`
	Status         AssignmentStatus `gorm:"size:16;not null;default:'active';index:idx_assignments_base_status,priority:2" json:"status"`
	AssignedBy     string           `gorm:"size:36;not null" json:"assignedBy"`
	ReturnedBy     *string          `gorm:"size:36" json:"returnedBy,omitempty"`

	Asset    *Asset `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
	Base     *Base  `gorm:"foreignKey:BaseID" json:"base,omitempty"`
	Assigner *User  `gorm:"foreignKey:AssignedBy" json:"assigner,omitempty"`
}
