package models

import "gorm.io/datatypes"

// NPO approval statuses
const (
	NPOStatusPending  = "pending"
	NPOStatusApproved = "approved"
	NPOStatusRejected = "rejected"
)

// NPO is a non-profit organization directory entry. Its approval status is
// platform-level and independent of any project partnership.
type NPO struct {
	ID               string                      `gorm:"primaryKey;size:36" json:"id"`
	Name             string                      `gorm:"size:255;not null" json:"name"`
	Expertise        datatypes.JSONSlice[string] `json:"expertise"`
	Rating           float64                     `json:"rating"`
	Avatar           string                      `gorm:"size:500" json:"avatar"`
	ActiveProjects   int                         `json:"activeProjects"`
	PendingRequests  int                         `json:"pendingRequests"`
	Status           *string                     `gorm:"size:50" json:"status"` // pending, approved, rejected
	Description      *string                     `gorm:"type:text" json:"description"`
	RegistrationDate *string                     `gorm:"size:20" json:"registrationDate"`
}

func (NPO) TableName() string { return "npos" }
