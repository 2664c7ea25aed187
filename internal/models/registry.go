package models

import "gorm.io/datatypes"

// CatalogResource is a reusable priced template in the resource catalog,
// distinct from the per-project resource line items that copy from it.
type CatalogResource struct {
	ID        string  `gorm:"primaryKey;size:36" json:"id"`
	Resource  string  `gorm:"size:255" json:"resource"`
	Category  string  `gorm:"size:100" json:"category"`
	BasePrice float64 `gorm:"column:base_price" json:"basePrice"`
	Quantity  int     `json:"quantity"`
}

func (CatalogResource) TableName() string { return "resources" }

// Opportunity is a suggested project match surfaced to NPOs.
type Opportunity struct {
	ID          string                      `gorm:"primaryKey;size:36" json:"id"`
	Title       string                      `gorm:"size:255" json:"title"`
	Location    string                      `gorm:"size:255" json:"location"`
	Budget      float64                     `json:"budget"`
	MatchReason string                      `gorm:"size:500" json:"matchReason"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	InitiatorID string                      `gorm:"size:36;index" json:"initiatorId"`
	Status      string                      `gorm:"size:50" json:"status"`
}

func (Opportunity) TableName() string { return "opportunities" }

// Template is an admin-managed document template.
type Template struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	Name         string `gorm:"size:255" json:"name"`
	Category     string `gorm:"size:100" json:"category"`
	Content      string `gorm:"type:text" json:"content"`
	LastModified string `gorm:"size:40" json:"lastModified"`
}

func (Template) TableName() string { return "templates" }

// KnowledgeBaseEntry is a reference case from completed projects elsewhere.
type KnowledgeBaseEntry struct {
	ID       string                      `gorm:"primaryKey;size:36" json:"id"`
	Title    string                      `gorm:"size:255" json:"title"`
	Region   string                      `gorm:"size:255" json:"region"`
	Budget   float64                     `json:"budget"`
	Outcomes string                      `gorm:"type:text" json:"outcomes"`
	Tags     datatypes.JSONSlice[string] `json:"tags"`
}

func (KnowledgeBaseEntry) TableName() string { return "knowledge_base" }
