package models

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// in-memory sqlite is per-connection, keep the pool at one
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db
}

func TestSeedDefaultData_PopulatesRegistries(t *testing.T) {
	DB = openTestDB(t)
	if err := AutoMigrate(); err != nil {
		t.Fatalf("AutoMigrate() error = %v", err)
	}

	if err := SeedDefaultData(); err != nil {
		t.Fatalf("SeedDefaultData() error = %v", err)
	}

	tables := []struct {
		name  string
		model interface{}
	}{
		{"users", &User{}},
		{"projects", &Project{}},
		{"npos", &NPO{}},
		{"resources", &CatalogResource{}},
		{"opportunities", &Opportunity{}},
		{"project_details", &ProjectDetails{}},
		{"templates", &Template{}},
		{"knowledge_base", &KnowledgeBaseEntry{}},
		{"settings", &GlobalSettings{}},
	}

	for _, tbl := range tables {
		var count int64
		if err := DB.Model(tbl.model).Count(&count).Error; err != nil {
			t.Fatalf("count %s: %v", tbl.name, err)
		}
		if count == 0 {
			t.Errorf("%s should not be empty after seeding", tbl.name)
		}
	}
}

func TestSeedDefaultData_Idempotent(t *testing.T) {
	DB = openTestDB(t)
	if err := AutoMigrate(); err != nil {
		t.Fatalf("AutoMigrate() error = %v", err)
	}

	if err := SeedDefaultData(); err != nil {
		t.Fatalf("first SeedDefaultData() error = %v", err)
	}

	var usersBefore, settingsBefore int64
	DB.Model(&User{}).Count(&usersBefore)
	DB.Model(&GlobalSettings{}).Count(&settingsBefore)

	if err := SeedDefaultData(); err != nil {
		t.Fatalf("second SeedDefaultData() error = %v", err)
	}

	var usersAfter, settingsAfter int64
	DB.Model(&User{}).Count(&usersAfter)
	DB.Model(&GlobalSettings{}).Count(&settingsAfter)

	if usersAfter != usersBefore {
		t.Errorf("user count changed on reseed: %d -> %d", usersBefore, usersAfter)
	}
	if settingsAfter != settingsBefore {
		t.Errorf("settings count changed on reseed: %d -> %d", settingsBefore, settingsAfter)
	}
}

func TestSeedDefaultData_SkipsNonEmptyDatabase(t *testing.T) {
	DB = openTestDB(t)
	if err := AutoMigrate(); err != nil {
		t.Fatalf("AutoMigrate() error = %v", err)
	}

	existing := User{ID: "u-existing", Email: "existing@example.com", Role: RoleInitiator, Name: "Existing"}
	if err := DB.Create(&existing).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	if err := SeedDefaultData(); err != nil {
		t.Fatalf("SeedDefaultData() error = %v", err)
	}

	var npoCount int64
	DB.Model(&NPO{}).Count(&npoCount)
	if npoCount != 0 {
		t.Errorf("demo data should not be loaded into a non-empty database, got %d NPOs", npoCount)
	}

	// the settings singleton is still ensured
	var settingsCount int64
	DB.Model(&GlobalSettings{}).Count(&settingsCount)
	if settingsCount != 1 {
		t.Errorf("settings row count = %d, expected 1", settingsCount)
	}
}
