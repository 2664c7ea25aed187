package services

import (
	"github.com/civicgrid/initiative/backend/internal/models"
	"gorm.io/gorm"
)

// RegistryService serves the read-only reference collections: the resource
// catalog, opportunity matches, document templates and the knowledge base.
type RegistryService struct {
	db *gorm.DB
}

func NewRegistryService(db *gorm.DB) *RegistryService {
	return &RegistryService{db: db}
}

func (s *RegistryService) ListResources() ([]models.CatalogResource, error) {
	var items []models.CatalogResource
	if err := s.db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *RegistryService) ListOpportunities() ([]models.Opportunity, error) {
	var items []models.Opportunity
	if err := s.db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *RegistryService) ListTemplates() ([]models.Template, error) {
	var items []models.Template
	if err := s.db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *RegistryService) ListKnowledgeBase() ([]models.KnowledgeBaseEntry, error) {
	var items []models.KnowledgeBaseEntry
	if err := s.db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
