package handlers

import (
	"context"

	"github.com/tbourn/fanclub-backend/internal/domain"
	"github.com/tbourn/fanclub-backend/internal/services"
	"github.com/tbourn/fanclub-backend/internal/storage"
)

//
// Service contracts (context-aware)
//

// VoteService runs the weekly vote.
type VoteService interface {
	// Current returns the open matchup.
	Current(ctx context.Context) (*domain.WeeklyVote, error)
	// Cast records a ballot and returns the new counters (nil when the week
	// has no matchup row).
	Cast(ctx context.Context, weekID string, opt domain.Option, voter string) (*domain.VoteTally, error)
}

// FeedService reads the content feeds.
type FeedService interface {
	FAQ(ctx context.Context, term string) ([]domain.FaqItem, error)
	Timeline(ctx context.Context) ([]domain.TimelineEvent, error)
	Friends(ctx context.Context) ([]domain.FriendOfClub, error)
	Calendar(ctx context.Context, limit int) ([]domain.CalendarEvent, error)
}

// UploadService stores media files.
type UploadService interface {
	Configured() bool
	Save(ctx context.Context, f *services.Upload) (string, error)
}

// StatusService reports on backing services.
type StatusService interface {
	Health(ctx context.Context) services.Health
	StorageStatus() storage.Status
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints. It depends on service interfaces
// only, so tests can substitute stubs.
type Handlers struct {
	voteSvc   VoteService
	feedSvc   FeedService
	uploadSvc UploadService
	statusSvc StatusService
}

// New returns a Handlers bound to the given services.
func New(vote VoteService, feed FeedService, upload UploadService, status StatusService) *Handlers {
	return &Handlers{voteSvc: vote, feedSvc: feed, uploadSvc: upload, statusSvc: status}
}
