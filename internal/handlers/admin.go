package handlers

import (
	"github.com/civicgrid/initiative/backend/internal/services"
	"github.com/civicgrid/initiative/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminHandler serves platform administration: global settings and the
// activity log.
type AdminHandler struct {
	settingsService *services.SettingsService
	logService      *services.ActivityLogService
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{
		settingsService: services.NewSettingsService(db),
		logService:      services.NewActivityLogService(db),
	}
}

// GetSettings returns the platform-wide economic parameters
// GET /api/admin/settings
func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.Get()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, settings)
}

// UpdateSettings overwrites the settings row with the full payload
// PUT /api/admin/settings
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var req services.SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	settings, err := h.settingsService.Update(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, settings)
}

// ListActivityLogs returns the paginated audit trail
// GET /api/admin/activity-logs
func (h *AdminHandler) ListActivityLogs(c *gin.Context) {
	var req services.ActivityLogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.logService.List(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
