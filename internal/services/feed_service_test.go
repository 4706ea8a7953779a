package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/fanclub-backend/internal/domain"
)

func seedFeeds(t *testing.T, db *gorm.DB, now time.Time) {
	t.Helper()
	one, two := 1, 2
	rows := []any{
		&domain.FaqItem{ID: uuid.NewString(), Question: "Where was Lou born?", Answer: "New York City.", DisplayOrder: &two, IsPublished: true},
		&domain.FaqItem{ID: uuid.NewString(), Question: "What was his nickname?", Answer: "The Iron Horse.", DisplayOrder: &one, IsPublished: true},
		&domain.FaqItem{ID: uuid.NewString(), Question: "Draft question", Answer: "Iron draft.", IsPublished: false},
		&domain.TimelineEvent{ID: uuid.NewString(), Date: "1939-07-04", Title: "Farewell Speech"},
		&domain.TimelineEvent{ID: uuid.NewString(), Date: "1923-06-15", Title: "MLB Debut"},
		&domain.FriendOfClub{ID: uuid.NewString(), Name: "Hidden", IsActive: false},
		&domain.FriendOfClub{ID: uuid.NewString(), Name: "Second", DisplayOrder: &two, IsActive: true},
		&domain.FriendOfClub{ID: uuid.NewString(), Name: "First", DisplayOrder: &one, IsActive: true},
	}
	for i := 0; i < 12; i++ {
		rows = append(rows, &domain.CalendarEvent{
			ID:          uuid.NewString(),
			Title:       "Meetup",
			EventDate:   now.Add(time.Duration(i+1) * time.Hour),
			IsPublished: true,
		})
	}
	rows = append(rows,
		&domain.CalendarEvent{ID: uuid.NewString(), Title: "Past", EventDate: now.Add(-time.Hour), IsPublished: true},
		&domain.CalendarEvent{ID: uuid.NewString(), Title: "Unpublished", EventDate: now.Add(time.Minute), IsPublished: false},
	)
	for _, r := range rows {
		if err := db.Create(r).Error; err != nil {
			t.Fatalf("seed %T: %v", r, err)
		}
	}
}

func TestFeedService_Configured(t *testing.T) {
	now := time.Date(2024, 4, 3, 12, 0, 0, 0, time.UTC)
	store, db := newTestStore(t)
	seedFeeds(t, db, now)
	svc := NewFeedService(store)
	svc.Now = fixedClock(now)
	ctx := context.Background()

	faq, err := svc.FAQ(ctx, "")
	if err != nil {
		t.Fatalf("FAQ: %v", err)
	}
	if len(faq) != 2 || faq[0].Question != "What was his nickname?" {
		t.Fatalf("unexpected FAQ order/filter: %+v", faq)
	}

	faq, err = svc.FAQ(ctx, "  IRON ")
	if err != nil {
		t.Fatalf("FAQ search: %v", err)
	}
	if len(faq) != 1 || faq[0].Answer != "The Iron Horse." {
		t.Fatalf("unexpected FAQ search result: %+v", faq)
	}

	tl, err := svc.Timeline(ctx)
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	if len(tl) != 2 || tl[0].Date != "1923-06-15" {
		t.Fatalf("unexpected timeline: %+v", tl)
	}

	friends, err := svc.Friends(ctx)
	if err != nil {
		t.Fatalf("Friends: %v", err)
	}
	if len(friends) != 2 || friends[0].Name != "First" || friends[1].Name != "Second" {
		t.Fatalf("unexpected friends: %+v", friends)
	}

	cases := []struct {
		limit, want int
	}{
		{0, 10},
		{-1, 10},
		{3, 3},
		{500, 12},
	}
	for _, tc := range cases {
		events, err := svc.Calendar(ctx, tc.limit)
		if err != nil {
			t.Fatalf("Calendar(%d): %v", tc.limit, err)
		}
		if len(events) != tc.want {
			t.Fatalf("Calendar(%d): got %d events want %d", tc.limit, len(events), tc.want)
		}
		for i := 1; i < len(events); i++ {
			if events[i].EventDate.Before(events[i-1].EventDate) {
				t.Fatalf("Calendar not ascending at %d", i)
			}
		}
		for _, e := range events {
			if e.Title != "Meetup" {
				t.Fatalf("unexpected event %q", e.Title)
			}
		}
	}
}

func TestFeedService_EmptyTablesReturnEmptySlices(t *testing.T) {
	store, _ := newTestStore(t)
	svc := NewFeedService(store)
	ctx := context.Background()

	faq, _ := svc.FAQ(ctx, "x")
	tl, _ := svc.Timeline(ctx)
	fr, _ := svc.Friends(ctx)
	ev, _ := svc.Calendar(ctx, 0)
	if faq == nil || tl == nil || fr == nil || ev == nil {
		t.Fatalf("expected non-nil empty slices")
	}
}

func TestFeedService_Fallbacks(t *testing.T) {
	svc := NewFeedService(unconfiguredStore())
	ctx := context.Background()

	faq, err := svc.FAQ(ctx, "")
	if err != nil || len(faq) != 2 {
		t.Fatalf("FAQ fallback: %v %+v", err, faq)
	}

	cases := []struct {
		term string
		want int
	}{
		{"farewell", 1},
		{"FIRST BASE", 1},
		{"yankee", 1},
		{"lou", 1},
		{"zzz", 0},
	}
	for _, tc := range cases {
		got, err := svc.FAQ(ctx, tc.term)
		if err != nil {
			t.Fatalf("FAQ(%q): %v", tc.term, err)
		}
		if len(got) != tc.want {
			t.Fatalf("FAQ(%q): got %d want %d", tc.term, len(got), tc.want)
		}
	}

	tl, _ := svc.Timeline(ctx)
	if len(tl) != 3 || tl[0].Title != "MLB Debut" || tl[2].Title != "Murderers' Row" {
		t.Fatalf("unexpected timeline fallback: %+v", tl)
	}

	fr, _ := svc.Friends(ctx)
	if len(fr) != 3 || *fr[1].WebsiteURL != "https://www.als.org" {
		t.Fatalf("unexpected friends fallback: %+v", fr)
	}

	ev, err := svc.Calendar(ctx, 5)
	if err != nil || ev == nil || len(ev) != 0 {
		t.Fatalf("calendar fallback should be empty, got %v %+v", err, ev)
	}
}

func TestFeedService_FallbackIsFreshPerCall(t *testing.T) {
	svc := NewFeedService(unconfiguredStore())
	a, _ := svc.Friends(context.Background())
	a[0].Name = "mutated"
	b, _ := svc.Friends(context.Background())
	if b[0].Name != "Baseball Hall of Fame" {
		t.Fatalf("fallback rows must not be shared between calls")
	}
}

func TestFeedService_FallbackRowsCarryClockTime(t *testing.T) {
	at := time.Date(2026, 3, 9, 14, 30, 0, 0, time.UTC)
	svc := NewFeedService(unconfiguredStore())
	svc.Now = fixedClock(at)
	ctx := context.Background()

	faq, _ := svc.FAQ(ctx, "")
	for _, it := range faq {
		if !it.CreatedAt.Equal(at) || !it.UpdatedAt.Equal(at) {
			t.Fatalf("faq %s timestamps: created=%v updated=%v", it.ID, it.CreatedAt, it.UpdatedAt)
		}
	}
	tl, _ := svc.Timeline(ctx)
	for _, ev := range tl {
		if !ev.CreatedAt.Equal(at) {
			t.Fatalf("timeline %s created_at = %v", ev.ID, ev.CreatedAt)
		}
	}
	fr, _ := svc.Friends(ctx)
	for _, f := range fr {
		if !f.CreatedAt.Equal(at) {
			t.Fatalf("friend %s created_at = %v", f.ID, f.CreatedAt)
		}
	}

	body, err := json.Marshal(fr[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(body), "0001-01-01") {
		t.Fatalf("fallback row serialized a zero time: %s", body)
	}
}
