// Package services – FeedService
//
// FeedService serves the read-only content feeds: FAQ, timeline, friends of
// the club and upcoming calendar events. Each call runs one query through
// the public (reader) datastore client. When the deployment has no
// datastore credentials the feeds return fixed fallback content instead of
// failing; the calendar falls back to an empty list.
package services

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/fanclub-backend/internal/domain"
	"github.com/tbourn/fanclub-backend/internal/repo"
	"github.com/tbourn/fanclub-backend/internal/search"
	"github.com/tbourn/fanclub-backend/internal/utils"
)

// Calendar limits.
const (
	DefaultCalendarLimit = 10
	MaxCalendarLimit     = 50
)

// FeedService reads the public content feeds.
type FeedService struct {
	Store Datastore
	Now   func() time.Time

	// CalendarLimit is used when a caller asks for no particular limit.
	CalendarLimit int
}

// NewFeedService returns a FeedService with the default calendar limit.
func NewFeedService(store Datastore) *FeedService {
	return &FeedService{Store: store, Now: time.Now, CalendarLimit: DefaultCalendarLimit}
}

// FAQ returns published FAQ items, optionally restricted to those whose
// question or answer contains term (case-insensitive).
func (s *FeedService) FAQ(ctx context.Context, term string) ([]domain.FaqItem, error) {
	term = search.Normalize(term)
	ctx, span := otel.Tracer("services/FeedService").Start(ctx, "FAQ",
		trace.WithAttributes(attribute.Bool("faq.search", term != "")),
	)
	defer span.End()

	if !s.Store.ReaderConfigured() {
		return fallbackFAQ(term, s.now().UTC()), nil
	}
	db, err := s.Store.Reader(ctx)
	if err != nil {
		return nil, err
	}
	return repo.ListFaqItems(ctx, db, term)
}

// Timeline returns every timeline event in date order.
func (s *FeedService) Timeline(ctx context.Context) ([]domain.TimelineEvent, error) {
	ctx, span := otel.Tracer("services/FeedService").Start(ctx, "Timeline")
	defer span.End()

	if !s.Store.ReaderConfigured() {
		return fallbackTimeline(s.now().UTC()), nil
	}
	db, err := s.Store.Reader(ctx)
	if err != nil {
		return nil, err
	}
	return repo.ListTimelineEvents(ctx, db)
}

// Friends returns active partner organizations by display order.
func (s *FeedService) Friends(ctx context.Context) ([]domain.FriendOfClub, error) {
	ctx, span := otel.Tracer("services/FeedService").Start(ctx, "Friends")
	defer span.End()

	if !s.Store.ReaderConfigured() {
		return fallbackFriends(s.now().UTC()), nil
	}
	db, err := s.Store.Reader(ctx)
	if err != nil {
		return nil, err
	}
	return repo.ListFriends(ctx, db)
}

// Calendar returns up to limit published events that have not started yet,
// soonest first. A non-positive limit selects the service default; limits
// above MaxCalendarLimit are capped.
func (s *FeedService) Calendar(ctx context.Context, limit int) ([]domain.CalendarEvent, error) {
	def := s.CalendarLimit
	if def <= 0 {
		def = DefaultCalendarLimit
	}
	limit = utils.ClampInt(limit, def, 1, MaxCalendarLimit)

	ctx, span := otel.Tracer("services/FeedService").Start(ctx, "Calendar",
		trace.WithAttributes(attribute.Int("calendar.limit", limit)),
	)
	defer span.End()

	if !s.Store.ReaderConfigured() {
		return []domain.CalendarEvent{}, nil
	}
	db, err := s.Store.Reader(ctx)
	if err != nil {
		return nil, err
	}
	return repo.ListUpcomingEvents(ctx, db, s.now(), limit)
}

func (s *FeedService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
