package repositories

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Irfansyah001/223-APIKeyGenerator/domain"
)

// newTestDB opens an in-memory sqlite database with the same error
// translation the production postgres connection uses, so constraint
// violations surface as the same sentinel errors.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// an in-memory sqlite database exists per connection
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	if err := db.AutoMigrate(&DBUser{}, &DBAdmin{}, &DBAPIKey{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func mustCreateUser(t *testing.T, repo domain.UserRepository, email string) *domain.User {
	t.Helper()
	user := &domain.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Status:    domain.StatusActive,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return user
}

func timePtr(tm time.Time) *time.Time {
	return &tm
}
