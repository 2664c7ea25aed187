package handlers

import (
	"github.com/civicgrid/initiative/backend/internal/middleware"
	"github.com/civicgrid/initiative/backend/internal/services"
	"github.com/civicgrid/initiative/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DraftHandler serves per-initiator draft workspaces. Every route is
// scoped to the authenticated user; drafts of other users behave as if
// they do not exist.
type DraftHandler struct {
	draftService *services.DraftService
	authService  *services.AuthService
}

func NewDraftHandler(db *gorm.DB, authService *services.AuthService) *DraftHandler {
	return &DraftHandler{
		draftService: services.NewDraftService(db),
		authService:  authService,
	}
}

func (h *DraftHandler) currentUserID(c *gin.Context) (string, error) {
	user, err := h.authService.GetUserByEmail(middleware.GetEmail(c))
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

// List returns the caller's drafts
// GET /api/projects/drafts
func (h *DraftHandler) List(c *gin.Context) {
	userID, err := h.currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	drafts, err := h.draftService.List(userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, drafts)
}

// Create opens a new draft
// POST /api/projects/drafts
func (h *DraftHandler) Create(c *gin.Context) {
	var req services.CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID, err := h.currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	draft, err := h.draftService.Create(userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, draft)
}

// Get returns one of the caller's drafts
// GET /api/projects/drafts/:id
func (h *DraftHandler) Get(c *gin.Context) {
	userID, err := h.currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	draft, err := h.draftService.Get(c.Param("id"), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, draft)
}

// Update merge-patches a draft and bumps its last-modified stamp
// PATCH /api/projects/drafts/:id
func (h *DraftHandler) Update(c *gin.Context) {
	var req services.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID, err := h.currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	draft, err := h.draftService.Update(c.Param("id"), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, draft)
}

// Delete removes a draft; deleting an absent draft still succeeds
// DELETE /api/projects/drafts/:id
func (h *DraftHandler) Delete(c *gin.Context) {
	userID, err := h.currentUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.draftService.Delete(c.Param("id"), userID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "draft deleted"})
}
