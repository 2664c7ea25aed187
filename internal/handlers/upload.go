package handlers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/civicgrid/initiative/backend/internal/config"
	"github.com/civicgrid/initiative/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadHandler struct {
	dir     string
	maxSize int64
}

func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{
		dir:     cfg.Upload.Dir,
		maxSize: cfg.Upload.MaxSizeMB * 1024 * 1024,
	}
}

// Upload stores a multipart file under a generated name and returns its
// public URL
// POST /api/upload
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	if h.maxSize > 0 && file.Size > h.maxSize {
		response.BadRequest(c, "file too large")
		return
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		response.ServerError(c, err.Error())
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.NewString() + ext
	dst := filepath.Join(h.dir, name)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"url": "/static/uploads/" + name})
}
