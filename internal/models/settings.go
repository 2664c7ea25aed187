package models

// SettingsID is the fixed primary key of the singleton settings row.
const SettingsID = 1

// GlobalSettings is a single row of platform-wide economic parameters,
// addressed by a fixed id and seeded once at startup.
type GlobalSettings struct {
	ID                 int     `gorm:"primaryKey" json:"-"`
	InflationRate      float64 `gorm:"column:inflation_rate" json:"inflationRate"`
	MaxBudget          float64 `gorm:"column:max_budget" json:"maxBudget"`
	MinBudget          float64 `gorm:"column:min_budget" json:"minBudget"`
	DefaultSubsidyRate float64 `gorm:"column:default_subsidy_rate" json:"defaultSubsidyRate"`
	CurrentYear        int     `gorm:"column:current_year" json:"currentYear"`
}

func (GlobalSettings) TableName() string { return "settings" }
