package models

// Base is a physical installation holding its own asset balances.
type Base struct {
	Entity
	Name        string  `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Location    string  `gorm:"size:255;not null" json:"location"`
	CommanderID *string `gorm:"size:36" json:"commanderId,omitempty"`
}
