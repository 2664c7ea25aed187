package services

import (
	"errors"
	"time"

	"github.com/civicgrid/initiative/backend/internal/models"
	"github.com/civicgrid/initiative/backend/pkg/response"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// defaultProjectImage is the stock photo applied when a project is created
// without one.
const defaultProjectImage = "https://images.unsplash.com/photo-1585829365291-1762f55e972e?q=80&w=800&auto=format&fit=crop"

// defaultCoordinates is the city-center fallback for projects created
// without a map pin.
var defaultCoordinates = models.Coordinates{Lat: 56.8380, Lng: 60.6030}

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

type CreateProjectRequest struct {
	Title        string                  `json:"title"`
	Description  string                  `json:"description"`
	Budget       float64                 `json:"budget"`
	Image        string                  `json:"image"`
	Location     string                  `json:"location"`
	Coordinates  *models.Coordinates     `json:"coordinates"`
	Status       string                  `json:"status" binding:"omitempty,oneof=DRAFT AI_SCORING DUPLICATE_CHECK RESOURCE_GENERATION REFINEMENT ACTIVE NGO_PARTNERED REJECTED APPEAL_PENDING SUCCESS"`
	Resources    models.ResourceLineList `json:"resources"`
	Type         *string                 `json:"type"`
	AIScore      *float64                `json:"ai_score"`
	SearchRadius *int                    `json:"search_radius"`
	DraftID      string                  `json:"draftId"`
}

type ProjectListRequest struct {
	InitiatorID string   `form:"initiator_id"`
	NPOID       string   `form:"npo_id"`
	Lat         *float64 `form:"lat"`
	Lng         *float64 `form:"lng"`
	Radius      *int     `form:"radius"`
}

type StatusUpdateRequest struct {
	Status models.ProjectStatus `json:"status" binding:"required,oneof=DRAFT AI_SCORING DUPLICATE_CHECK RESOURCE_GENERATION REFINEMENT ACTIVE NGO_PARTNERED REJECTED APPEAL_PENDING SUCCESS"`
}

type EstimateUpdateRequest struct {
	Resources models.ResourceLineList `json:"resources" binding:"required"`
}

type JoinRequestAction struct {
	Name   string `json:"name" binding:"required"`
	Action string `json:"action" binding:"required,oneof=approve reject"`
}

type AcceptPartnershipRequest struct {
	NPOID string `json:"npoId" binding:"required"`
}

type PartnerRequestPayload struct {
	NPOID   string `json:"npoId" binding:"required"`
	NPOName string `json:"npoName" binding:"required"`
	Message string `json:"message"`
}

type AppealAction struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
}

// Create builds a project from the payload. When resource lines are
// supplied the budget is recomputed as their sum and any caller-supplied
// budget is ignored; otherwise the caller's budget is used verbatim (0 by
// default). The initiator's display name is
// inserted as the first participant, and a referenced draft is consumed in
// the same transaction (a missing draft id is silently ignored).
func (s *ProjectService) Create(initiator *models.User, req *CreateProjectRequest) (*models.Project, error) {
	resources := req.Resources
	if resources == nil {
		resources = models.ResourceLineList{}
	}

	budget := req.Budget
	if len(resources) > 0 {
		budget = resources.Total()
	}

	title := req.Title
	if title == "" {
		title = "New project"
	}
	image := req.Image
	if image == "" {
		image = defaultProjectImage
	}
	location := req.Location
	if location == "" {
		location = "Not specified"
	}
	coords := req.Coordinates
	if coords == nil {
		c := defaultCoordinates
		coords = &c
	}
	status := models.ProjectStatus(req.Status)
	if status == "" {
		status = models.StatusActive
	}
	aiScore := 100.0
	if req.AIScore != nil {
		aiScore = *req.AIScore
	}
	searchRadius := DefaultSearchRadius
	if req.SearchRadius != nil {
		searchRadius = *req.SearchRadius
	}

	project := models.Project{
		ID:                  uuid.NewString(),
		Title:               title,
		Description:         req.Description,
		Budget:              budget,
		Image:               image,
		Location:            location,
		Coordinates:         coords,
		Status:              status,
		InitiatorID:         initiator.ID,
		CreatedAt:           time.Now().Format("2006-01-02"),
		Participants:        models.StringList{initiator.Name},
		PendingJoinRequests: models.StringList{},
		NGOPartnerRequests:  models.PartnerRequestList{},
		Resources:           resources,
		Type:                req.Type,
		AIScore:             aiScore,
		SearchRadius:        searchRadius,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		if req.DraftID != "" {
			// Best effort: promoting from an already-deleted draft is fine
			if err := tx.Where("id = ?", req.DraftID).Delete(&models.Draft{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &project, nil
}

// List returns projects matching the exact-match filters. When lat and lng
// are both supplied the result is narrowed to projects within radius
// meters (default 500) by a linear haversine scan; projects without stored
// coordinates are excluded from proximity results.
func (s *ProjectService) List(req *ProjectListRequest) ([]models.Project, error) {
	query := s.db.Model(&models.Project{})

	if req.InitiatorID != "" {
		query = query.Where("initiator_id = ?", req.InitiatorID)
	}
	if req.NPOID != "" {
		query = query.Where("npo_id = ?", req.NPOID)
	}

	var projects []models.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}

	if req.Lat != nil && req.Lng != nil {
		radius := DefaultSearchRadius
		if req.Radius != nil {
			radius = *req.Radius
		}

		filtered := make([]models.Project, 0, len(projects))
		for _, p := range projects {
			if p.Coordinates == nil {
				continue
			}
			d := HaversineDistance(*req.Lat, *req.Lng, p.Coordinates.Lat, p.Coordinates.Lng)
			if d <= float64(radius) {
				filtered = append(filtered, p)
			}
		}
		projects = filtered
	}

	return projects, nil
}

// GetByID returns a project or NotFound.
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}
	return &project, nil
}

// GetDetails returns the stored details row or, when none exists, a
// synthesized default that is not persisted.
func (s *ProjectService) GetDetails(projectID string) (*models.ProjectDetails, error) {
	var details models.ProjectDetails
	err := s.db.Where("project_id = ?", projectID).First(&details).Error
	if err == nil {
		return &details, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return &models.ProjectDetails{
		ID:            uuid.NewString(),
		ProjectID:     projectID,
		Stage:         "Initiation",
		Progress:      0,
		NextMilestone: "Planning",
		Collaborators: datatypes.JSON("[]"),
		Documents:     datatypes.JSON("[]"),
		Budget:        models.BudgetBreakdown{},
	}, nil
}

// UpdateStatus overwrites the project status. The lifecycle is advisory:
// any enum member is accepted from any prior status.
func (s *ProjectService) UpdateStatus(id string, req *StatusUpdateRequest) (*models.Project, error) {
	project, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !project.CanTransition(req.Status) {
		return nil, response.NewBadRequest("invalid project status")
	}

	project.Status = req.Status
	if err := s.db.Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// UpdateEstimate replaces the resource line items wholesale and recomputes
// the budget from the new lines.
func (s *ProjectService) UpdateEstimate(id string, req *EstimateUpdateRequest) (*models.Project, error) {
	project, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	project.ApplyEstimate(req.Resources)
	if err := s.db.Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// Join files a join request on behalf of the user. The operation is
// idempotent and reports success even when nothing changed.
func (s *ProjectService) Join(id string, user *models.User) error {
	project, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if project.RequestJoin(user.Name) {
		return s.db.Save(project).Error
	}
	return nil
}

// ResolveJoinRequest approves or rejects a pending join request by display
// name. Resolving a name that is not pending leaves the project untouched.
func (s *ProjectService) ResolveJoinRequest(id string, req *JoinRequestAction) (*models.Project, error) {
	project, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if project.ResolveJoinRequest(req.Name, req.Action == "approve") {
		if err := s.db.Save(project).Error; err != nil {
			return nil, err
		}
	}
	return project, nil
}

// AcceptPartnership records the NPO as the project partner and forces the
// status to NGO_PARTNERED.
func (s *ProjectService) AcceptPartnership(id string, req *AcceptPartnershipRequest) (*models.Project, error) {
	project, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	project.AcceptPartnership(req.NPOID)
	if err := s.db.Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// AddPartnerRequest appends a partnership offer unless the NPO already has
// one on this project (the first request wins).
func (s *ProjectService) AddPartnerRequest(id string, req *PartnerRequestPayload) error {
	project, err := s.GetByID(id)
	if err != nil {
		return err
	}

	added := project.AddPartnerRequest(models.PartnerRequest{
		NPOID:   req.NPOID,
		NPOName: req.NPOName,
		Message: req.Message,
	})
	if added {
		return s.db.Save(project).Error
	}
	return nil
}

// ResolveAppeal sets the status to ACTIVE on approval and REJECTED
// otherwise.
func (s *ProjectService) ResolveAppeal(id string, req *AppealAction) (*models.Project, error) {
	project, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	project.ResolveAppeal(req.Action == "approve")
	if err := s.db.Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}
