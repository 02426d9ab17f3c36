package services

import (
	"errors"
	"testing"

	"github.com/frctlprdx/community-sub000/internal/config"
	"github.com/frctlprdx/community-sub000/internal/models"
	"github.com/frctlprdx/community-sub000/internal/utils"
	"github.com/frctlprdx/community-sub000/pkg/response"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	// Keep bcrypt fast in tests; production cost is configured at startup.
	utils.SetBcryptCost(bcrypt.MinCost)
}

// setupTestDB opens an isolated in-memory SQLite database with the full
// schema migrated.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Community{},
		&models.CommunityMember{},
		&models.Event{},
		&models.Gallery{},
		&models.LoginHistory{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{BcryptCost: bcrypt.MinCost, TrustedImageHost: "cloudinary"}
}

// assertAppError fails the test unless err is an AppError with the given
// status and message.
func assertAppError(t *testing.T, err error, wantStatus int, wantMessage string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error %q, got nil", wantMessage)
	}
	var appErr *response.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if appErr.HTTPStatus != wantStatus {
		t.Errorf("status = %d, expected %d", appErr.HTTPStatus, wantStatus)
	}
	if wantMessage != "" && appErr.Message != wantMessage {
		t.Errorf("message = %q, expected %q", appErr.Message, wantMessage)
	}
}
