package handlers

import (
	"github.com/civicgrid/initiative/backend/internal/services"
	"github.com/civicgrid/initiative/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegistryHandler serves the read-only reference collections.
type RegistryHandler struct {
	registryService *services.RegistryService
}

func NewRegistryHandler(db *gorm.DB) *RegistryHandler {
	return &RegistryHandler{
		registryService: services.NewRegistryService(db),
	}
}

// ListResources returns the priced resource catalog
// GET /api/resources
func (h *RegistryHandler) ListResources(c *gin.Context) {
	items, err := h.registryService.ListResources()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, items)
}

// ListOpportunities returns suggested project matches for NPOs
// GET /api/opportunities
func (h *RegistryHandler) ListOpportunities(c *gin.Context) {
	items, err := h.registryService.ListOpportunities()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, items)
}

// ListTemplates returns the document template library
// GET /api/admin/templates
func (h *RegistryHandler) ListTemplates(c *gin.Context) {
	items, err := h.registryService.ListTemplates()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, items)
}

// ListKnowledgeBase returns reference cases from completed projects
// GET /api/admin/knowledge-base
func (h *RegistryHandler) ListKnowledgeBase(c *gin.Context) {
	items, err := h.registryService.ListKnowledgeBase()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, items)
}
