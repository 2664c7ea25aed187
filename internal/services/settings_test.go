package services

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/civicgrid/initiative/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestSettingsUpdateRequest_ZeroValuesBind(t *testing.T) {
	gin.SetMode(gin.TestMode)

	body := []byte(`{"inflationRate":0,"maxBudget":1000000,"minBudget":0,"defaultSubsidyRate":0,"currentYear":2026}`)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request, _ = http.NewRequest("PUT", "/api/admin/settings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		t.Fatalf("zero values must bind, got error: %v", err)
	}

	if req.InflationRate == nil || *req.InflationRate != 0 {
		t.Error("InflationRate should bind to 0")
	}
	if req.DefaultSubsidyRate == nil || *req.DefaultSubsidyRate != 0 {
		t.Error("DefaultSubsidyRate should bind to 0")
	}
	if req.CurrentYear == nil || *req.CurrentYear != 2026 {
		t.Error("CurrentYear should bind to 2026")
	}
}

func TestSettingsUpdateRequest_MissingFieldRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)

	body := []byte(`{"maxBudget":1000000,"minBudget":0,"defaultSubsidyRate":0,"currentYear":2026}`)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request, _ = http.NewRequest("PUT", "/api/admin/settings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err == nil {
		t.Error("omitting inflationRate should fail binding")
	}
}

func TestSettingsUpdate_PersistsZeroRates(t *testing.T) {
	db := newTestDB(t)
	if err := db.AutoMigrate(&models.GlobalSettings{}); err != nil {
		t.Fatalf("migrate settings: %v", err)
	}
	if err := db.Create(&models.GlobalSettings{
		ID:                 models.SettingsID,
		InflationRate:      8.5,
		MaxBudget:          10000000,
		MinBudget:          10000,
		DefaultSubsidyRate: 95,
		CurrentYear:        2024,
	}).Error; err != nil {
		t.Fatalf("create settings row: %v", err)
	}

	svc := NewSettingsService(db)
	updated, err := svc.Update(&SettingsUpdateRequest{
		InflationRate:      floatPtr(0),
		MaxBudget:          floatPtr(5000000),
		MinBudget:          floatPtr(0),
		DefaultSubsidyRate: floatPtr(0),
		CurrentYear:        intPtr(2026),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.InflationRate != 0 {
		t.Errorf("InflationRate = %f, expected 0", updated.InflationRate)
	}
	if updated.DefaultSubsidyRate != 0 {
		t.Errorf("DefaultSubsidyRate = %f, expected 0", updated.DefaultSubsidyRate)
	}
	if updated.CurrentYear != 2026 {
		t.Errorf("CurrentYear = %d, expected 2026", updated.CurrentYear)
	}

	var stored models.GlobalSettings
	if err := db.First(&stored, "id = ?", models.SettingsID).Error; err != nil {
		t.Fatalf("reload settings: %v", err)
	}
	if stored.InflationRate != 0 || stored.MinBudget != 0 {
		t.Error("zero values should survive a round trip through the database")
	}
}
