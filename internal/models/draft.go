package models

// Draft is an initiator-private project scratchpad. It is promoted to a
// Project (and deleted) or discarded; it never appears in public listings.
type Draft struct {
	ID           string           `gorm:"primaryKey;size:36" json:"id"`
	InitiatorID  string           `gorm:"size:36;index" json:"initiatorId"`
	Title        string           `gorm:"size:255" json:"title"`
	Description  string           `gorm:"type:text" json:"description"`
	LastModified string           `gorm:"size:40" json:"lastModified"`
	Status       string           `gorm:"size:50;default:DRAFT" json:"status"`
	Step         int              `json:"step"`
	Resources    ResourceLineList `gorm:"type:text" json:"resources"`
	Type         *string          `gorm:"size:100" json:"type"`
	Photos       StringList       `gorm:"type:text" json:"photos"`
}

func (Draft) TableName() string { return "drafts" }
