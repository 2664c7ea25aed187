package handlers

import (
	"github.com/civicgrid/initiative/backend/internal/services"
	"github.com/civicgrid/initiative/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NPOHandler struct {
	npoService *services.NPOService
}

func NewNPOHandler(db *gorm.DB) *NPOHandler {
	return &NPOHandler{
		npoService: services.NewNPOService(db),
	}
}

// List returns every registered NPO
// GET /api/npos
func (h *NPOHandler) List(c *gin.Context) {
	npos, err := h.npoService.List()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, npos)
}

// UpdateStatus moves an NPO through moderation
// PATCH /api/npos/:id/status
func (h *NPOHandler) UpdateStatus(c *gin.Context) {
	var req services.NPOStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	npo, err := h.npoService.UpdateStatus(c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, npo)
}
