package models

import "time"

// User roles
const (
	RoleInitiator = "initiator"
	RoleNPO       = "npo"
	RoleAdmin     = "admin"
)

// User represents a platform account. Email is normalized to lower case
// before storage and lookup.
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password     string    `gorm:"size:255" json:"-"`
	Role         string    `gorm:"size:50;not null" json:"role"` // initiator, npo, admin
	Name         string    `gorm:"size:255" json:"name"`
	Avatar       *string   `gorm:"size:500" json:"avatar"`
	Organization *string   `gorm:"size:255" json:"organization"`
	Phone        *string   `gorm:"size:50" json:"phone"`
	Address      *string   `gorm:"size:500" json:"address"`
	Bio          *string   `gorm:"type:text" json:"bio"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

func (User) TableName() string { return "users" }
