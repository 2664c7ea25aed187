package models

import (
	"fmt"

	"github.com/civicgrid/initiative/backend/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB(cfg *config.DatabaseConfig) error {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	DB = db
	return nil
}

func AutoMigrate() error {
	return DB.AutoMigrate(
		&User{},
		&Project{},
		&Draft{},
		&NPO{},
		&CatalogResource{},
		&Opportunity{},
		&ProjectDetails{},
		&Template{},
		&KnowledgeBaseEntry{},
		&GlobalSettings{},
		&ActivityLog{},
	)
}

func GetDB() *gorm.DB {
	return DB
}

// SeedDefaultData populates first-boot state: the singleton settings row
// (addressed by a fixed id, written exactly once here; all later changes
// go through the admin settings update) and, when the database is empty,
// a demo data set so every registry has content out of the box.
func SeedDefaultData() error {
	var count int64
	DB.Model(&GlobalSettings{}).Where("id = ?", SettingsID).Count(&count)
	if count == 0 {
		settings := GlobalSettings{
			ID:                 SettingsID,
			InflationRate:      8.5,
			MaxBudget:          10000000,
			MinBudget:          10000,
			DefaultSubsidyRate: 95,
			CurrentYear:        2024,
		}
		if err := DB.Create(&settings).Error; err != nil {
			return err
		}
	}

	return seedDemoData(DB)
}
