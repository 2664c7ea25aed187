package services

import (
	"errors"

	"github.com/civicgrid/initiative/backend/internal/models"
	"github.com/civicgrid/initiative/backend/pkg/response"
	"gorm.io/gorm"
)

type NPOService struct {
	db *gorm.DB
}

func NewNPOService(db *gorm.DB) *NPOService {
	return &NPOService{db: db}
}

type NPOStatusUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

// List returns every registered NPO.
func (s *NPOService) List() ([]models.NPO, error) {
	var npos []models.NPO
	if err := s.db.Find(&npos).Error; err != nil {
		return nil, err
	}
	return npos, nil
}

func (s *NPOService) GetByID(id string) (*models.NPO, error) {
	var npo models.NPO
	if err := s.db.First(&npo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("NPO not found")
		}
		return nil, err
	}
	return &npo, nil
}

// UpdateStatus moves an NPO through the moderation states.
func (s *NPOService) UpdateStatus(id string, req *NPOStatusUpdateRequest) (*models.NPO, error) {
	npo, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	npo.Status = &req.Status
	if err := s.db.Save(npo).Error; err != nil {
		return nil, err
	}
	return npo, nil
}
