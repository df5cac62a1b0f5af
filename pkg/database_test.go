package pkg

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/EduardoSlee/StudentRegistry/internal/models"
)

func TestMigrate_CreatesStudentsTableAndIndex(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	if !db.Migrator().HasTable("students") {
		t.Fatal("expected students table")
	}
	if !db.Migrator().HasIndex(&models.Student{}, "idx_students_name_last_name") {
		t.Fatal("expected composite name index")
	}
}

func TestGormLogLevel(t *testing.T) {
	if GormLogLevel("production") != logger.Error {
		t.Error("production should log errors only")
	}
	if GormLogLevel("development") != logger.Info {
		t.Error("development should log queries")
	}
}
