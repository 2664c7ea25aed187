package handlers

import (
	"github.com/civicgrid/initiative/backend/internal/middleware"
	"github.com/civicgrid/initiative/backend/internal/services"
	"github.com/civicgrid/initiative/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProjectHandler struct {
	projectService *services.ProjectService
	authService    *services.AuthService
}

func NewProjectHandler(db *gorm.DB, authService *services.AuthService) *ProjectHandler {
	return &ProjectHandler{
		projectService: services.NewProjectService(db),
		authService:    authService,
	}
}

// List returns projects, optionally filtered by initiator, partner NPO,
// or proximity to a point
// GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	var req services.ProjectListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	projects, err := h.projectService.List(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, projects)
}

// Create publishes a project from the payload, optionally consuming a
// draft
// POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req services.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.GetUserByEmail(middleware.GetEmail(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	project, err := h.projectService.Create(user, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, project)
}

// Get returns a single project
// GET /api/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.projectService.GetByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, project)
}

// GetDetails returns the stage/progress extension, synthesizing a default
// when none is stored
// GET /api/projects/:id/details
func (h *ProjectHandler) GetDetails(c *gin.Context) {
	details, err := h.projectService.GetDetails(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, details)
}

// UpdateStatus moves a project to another lifecycle status
// PATCH /api/projects/:id/status
func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	var req services.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.UpdateStatus(c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, project)
}

// UpdateEstimate replaces the resource estimate and recomputes the budget
// PATCH /api/projects/:id/estimate
func (h *ProjectHandler) UpdateEstimate(c *gin.Context) {
	var req services.EstimateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.UpdateEstimate(c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, project)
}

// Join files a join request on behalf of the caller
// POST /api/projects/:id/join
func (h *ProjectHandler) Join(c *gin.Context) {
	user, err := h.authService.GetUserByEmail(middleware.GetEmail(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.projectService.Join(c.Param("id"), user); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "join request submitted"})
}

// ResolveJoinRequest approves or rejects a pending join request
// POST /api/projects/:id/requests
func (h *ProjectHandler) ResolveJoinRequest(c *gin.Context) {
	var req services.JoinRequestAction
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.ResolveJoinRequest(c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, project)
}

// AcceptPartnership records an NPO as the project partner
// POST /api/projects/:id/partner
func (h *ProjectHandler) AcceptPartnership(c *gin.Context) {
	var req services.AcceptPartnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.AcceptPartnership(c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, project)
}

// AddPartnerRequest files an NPO partnership offer on a project
// POST /api/projects/:id/partner-request
func (h *ProjectHandler) AddPartnerRequest(c *gin.Context) {
	var req services.PartnerRequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.projectService.AddPartnerRequest(c.Param("id"), &req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "partner request submitted"})
}

// ResolveAppeal decides a rejection appeal
// POST /api/projects/:id/appeal
func (h *ProjectHandler) ResolveAppeal(c *gin.Context) {
	var req services.AppealAction
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.ResolveAppeal(c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, project)
}
