package services

import (
	"errors"
	"time"

	"github.com/civicgrid/initiative/backend/internal/models"
	"github.com/civicgrid/initiative/backend/pkg/response"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DraftService struct {
	db *gorm.DB
}

func NewDraftService(db *gorm.DB) *DraftService {
	return &DraftService{db: db}
}

type CreateDraftRequest struct {
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Step        int                     `json:"step"`
	Resources   models.ResourceLineList `json:"resources"`
	Type        *string                 `json:"type"`
	Photos      models.StringList       `json:"photos"`
}

// UpdateDraftRequest is a merge patch over the draft's mutable fields.
type UpdateDraftRequest struct {
	Title       *string                  `json:"title"`
	Description *string                  `json:"description"`
	Status      *string                  `json:"status"`
	Step        *int                     `json:"step"`
	Resources   *models.ResourceLineList `json:"resources"`
	Type        *string                  `json:"type"`
	Photos      *models.StringList       `json:"photos"`
}

// List returns all drafts belonging to the initiator.
func (s *DraftService) List(initiatorID string) ([]models.Draft, error) {
	var drafts []models.Draft
	if err := s.db.Where("initiator_id = ?", initiatorID).Find(&drafts).Error; err != nil {
		return nil, err
	}
	return drafts, nil
}

// Create stores a new draft scoped to the initiator.
func (s *DraftService) Create(initiatorID string, req *CreateDraftRequest) (*models.Draft, error) {
	title := req.Title
	if title == "" {
		title = "New draft"
	}
	step := req.Step
	if step == 0 {
		step = 1
	}
	resources := req.Resources
	if resources == nil {
		resources = models.ResourceLineList{}
	}

	draft := models.Draft{
		ID:           uuid.NewString(),
		InitiatorID:  initiatorID,
		Title:        title,
		Description:  req.Description,
		LastModified: time.Now().Format(time.RFC3339),
		Status:       "DRAFT",
		Step:         step,
		Resources:    resources,
		Type:         req.Type,
		Photos:       req.Photos,
	}
	if err := s.db.Create(&draft).Error; err != nil {
		return nil, err
	}

	return &draft, nil
}

// Get returns a draft only when it belongs to the initiator.
func (s *DraftService) Get(id, initiatorID string) (*models.Draft, error) {
	var draft models.Draft
	err := s.db.Where("id = ? AND initiator_id = ?", id, initiatorID).First(&draft).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("draft not found")
		}
		return nil, err
	}
	return &draft, nil
}

// Update applies a merge patch and bumps the last-modified stamp.
func (s *DraftService) Update(id, initiatorID string, req *UpdateDraftRequest) (*models.Draft, error) {
	draft, err := s.Get(id, initiatorID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Step != nil {
		updates["step"] = *req.Step
	}
	if req.Resources != nil {
		updates["resources"] = *req.Resources
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Photos != nil {
		updates["photos"] = *req.Photos
	}

	updates["last_modified"] = time.Now().Format(time.RFC3339)

	if err := s.db.Model(draft).Updates(updates).Error; err != nil {
		return nil, err
	}

	return draft, nil
}

// Delete removes a draft. Deleting an absent draft is not an error; the
// operation is idempotent.
func (s *DraftService) Delete(id, initiatorID string) error {
	return s.db.Where("id = ? AND initiator_id = ?", id, initiatorID).
		Delete(&models.Draft{}).Error
}
