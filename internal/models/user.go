package models

import "time"

// Role is the authorization role of a user.
type Role string

const (
	RoleAdmin            Role = "admin"
	RoleBaseCommander    Role = "base_commander"
	RoleLogisticsOfficer Role = "logistics_officer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleBaseCommander, RoleLogisticsOfficer:
		return true
	}
	return false
}

// User represents the user model in the database
type User struct {
	Entity
	Username            string     `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email               string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password            string     `gorm:"not null" json:"-"`
	Role                Role       `gorm:"size:32;not null" json:"role"`
	AssignedBaseID      *string    `gorm:"column:assigned_base;size:36" json:"assignedBase,omitempty"`
	IsActive            bool       `gorm:"default:true" json:"isActive"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time `json:"-"`
	LastLoginAt         *time.Time `json:"lastLoginAt,omitempty"`

	AssignedBase *Base `gorm:"foreignKey:AssignedBaseID" json:"assignedBaseDetail,omitempty"`
}
