package handlers

import (
	"fmt"

	"github.com/civicgrid/initiative/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

// AIHandler exposes the scoring-model management surface. Scoring itself
// runs outside this service; retraining is acknowledged, not performed.
type AIHandler struct{}

func NewAIHandler() *AIHandler {
	return &AIHandler{}
}

// RetrainModel acknowledges a retraining request for the named model
// POST /api/ai/models/:id/retrain
func (h *AIHandler) RetrainModel(c *gin.Context) {
	response.Success(c, gin.H{
		"message": fmt.Sprintf("Model %s retraining started", c.Param("id")),
	})
}
