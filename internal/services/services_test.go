package services

import (
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/fanclub-backend/internal/domain"
	"github.com/tbourn/fanclub-backend/internal/repo"
)

// ---------- test helpers ----------

// newTestStore returns a configured gateway over an isolated in-memory
// database, plus the raw handle for seeding and assertions.
func newTestStore(t *testing.T) (*repo.Gateway, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })
	return repo.NewStaticGateway(db), db
}

// unconfiguredStore has no credentials for either role.
func unconfiguredStore() *repo.Gateway { return repo.NewStaticGateway(nil) }

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func seedWeek(t *testing.T, db *gorm.DB, weekID string, a, b int, start, end time.Time) {
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
}
