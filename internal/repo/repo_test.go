package repo

import (
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/fanclub-backend/internal/domain"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repo_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func seedWeek(t *testing.T, db *gorm.DB, weekID string, a, b int, start, end time.Time) *domain.WeeklyVote {
	t.Helper()
	wv := &domain.WeeklyVote{
		ID:        uuid.NewString(),
		WeekID:    weekID,
		ImageAURL: "https://cdn.example.com/" + weekID + "-a.jpg",
		ImageBURL: "https://cdn.example.com/" + weekID + "-b.jpg",
		VotesA:    a,
		VotesB:    b,
		StartDate: start.UTC(),
		EndDate:   end.UTC(),
	}
	if err := db.Create(wv).Error; err != nil {
		t.Fatalf("seed week %s: %v", weekID, err)
	}
	return wv
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
