package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRetrainModel_AcknowledgesRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewAIHandler()
	router.POST("/api/ai/models/:id/retrain", handler.RetrainModel)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/ai/models/scoring-v2/retrain", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body struct {
		Code int `json:"code"`
		Data struct {
			Message string `json:"message"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if !strings.Contains(body.Data.Message, "scoring-v2") {
		t.Errorf("message should name the model, got %q", body.Data.Message)
	}
	if !strings.Contains(body.Data.Message, "retraining started") {
		t.Errorf("message should acknowledge retraining, got %q", body.Data.Message)
	}
}
