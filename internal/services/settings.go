package services

import (
	"errors"

	"github.com/civicgrid/initiative/backend/internal/models"
	"github.com/civicgrid/initiative/backend/pkg/response"
	"gorm.io/gorm"
)

type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// SettingsUpdateRequest carries the full settings payload. Fields are
// pointers so that presence is validated while zero values stay legal
// (a 0% inflation rate is a valid setting).
type SettingsUpdateRequest struct {
	InflationRate      *float64 `json:"inflationRate" binding:"required"`
	MaxBudget          *float64 `json:"maxBudget" binding:"required"`
	MinBudget          *float64 `json:"minBudget" binding:"required"`
	DefaultSubsidyRate *float64 `json:"defaultSubsidyRate" binding:"required"`
	CurrentYear        *int     `json:"currentYear" binding:"required"`
}

// Get returns the singleton settings row.
func (s *SettingsService) Get() (*models.GlobalSettings, error) {
	var settings models.GlobalSettings
	if err := s.db.First(&settings, "id = ?", models.SettingsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("settings not found")
		}
		return nil, err
	}
	return &settings, nil
}

// Update overwrites the singleton row with the full payload.
func (s *SettingsService) Update(req *SettingsUpdateRequest) (*models.GlobalSettings, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}

	settings.InflationRate = *req.InflationRate
	settings.MaxBudget = *req.MaxBudget
	settings.MinBudget = *req.MinBudget
	settings.DefaultSubsidyRate = *req.DefaultSubsidyRate
	settings.CurrentYear = *req.CurrentYear

	if err := s.db.Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
