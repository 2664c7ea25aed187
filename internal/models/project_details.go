package models

import "gorm.io/datatypes"

// ProjectDetails is a lazily created 1:1 extension of a project holding
// stage/progress reporting. When no row exists a default is synthesized at
// read time and not persisted.
type ProjectDetails struct {
	ID            string          `gorm:"primaryKey;size:36" json:"id"`
	ProjectID     string          `gorm:"size:36;index" json:"projectId"`
	Stage         string          `gorm:"size:100" json:"stage"`
	Progress      float64         `json:"progress"`
	NextMilestone string          `gorm:"size:255" json:"nextMilestone"`
	Collaborators datatypes.JSON  `json:"collaborators"`
	Documents     datatypes.JSON  `json:"documents"`
	Budget        BudgetBreakdown `gorm:"type:text" json:"budget"`
}

func (ProjectDetails) TableName() string { return "project_details" }
