package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tbourn/fanclub-backend/internal/domain"
)

var voteNow = time.Date(2024, 4, 3, 12, 0, 0, 0, time.UTC)

func newVoteSvc(t *testing.T) (*VoteService, func(weekID string, a, b int, start, end time.Time)) {
	t.Helper()
	store, db := newTestStore(t)
	svc := NewVoteService(store)
	svc.Now = fixedClock(voteNow)
	return svc, func(weekID string, a, b int, start, end time.Time) {
		seedWeek(t, db, weekID, a, b, start, end)
	}
}

func countRecords(t *testing.T, svc *VoteService, weekID string) int64 {
	t.Helper()
	db, err := svc.Store.Writer(context.Background())
	if err != nil {
		t.Fatalf("writer: %v", err)
	}
	var n int64
	if err := db.Model(&domain.VoteRecord{}).Where("week_id = ?", weekID).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestVoteService_Unconfigured(t *testing.T) {
	svc := NewVoteService(unconfiguredStore())

	if _, err := svc.Current(context.Background()); !errors.Is(err, ErrUnconfigured) {
		t.Fatalf("Current: expected ErrUnconfigured, got %v", err)
	}
	if _, err := svc.Cast(context.Background(), "2024-W14", domain.OptionA, "1.2.3.4"); !errors.Is(err, ErrUnconfigured) {
		t.Fatalf("Cast: expected ErrUnconfigured, got %v", err)
	}
}

func TestVoteService_Current(t *testing.T) {
	svc, seed := newVoteSvc(t)

	if _, err := svc.Current(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("empty table: expected ErrNotFound, got %v", err)
	}

	day := 24 * time.Hour
	seed("2024-W12", 1, 1, voteNow.Add(-20*day), voteNow.Add(-13*day)) // closed
	seed("2024-W13", 2, 2, voteNow.Add(-6*day), voteNow.Add(1*day))
	seed("2024-W14", 3, 3, voteNow.Add(-1*day), voteNow.Add(6*day))

	wv, err := svc.Current(context.Background())
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if wv.WeekID != "2024-W14" {
		t.Fatalf("expected latest open week 2024-W14, got %s", wv.WeekID)
	}
}

func TestVoteService_Cast(t *testing.T) {
	svc, seed := newVoteSvc(t)
	seed("2024-W14", 5, 3, voteNow.Add(-time.Hour), voteNow.Add(time.Hour))

	before := testutil.ToFloat64(votesCast.WithLabelValues("B"))

	tally, err := svc.Cast(context.Background(), "2024-W14", domain.OptionB, "1.2.3.4")
	if err != nil {
		t.Fatalf("Cast: %v", err)
	}
	if tally == nil || tally.VotesA != 5 || tally.VotesB != 4 {
		t.Fatalf("expected 5/4, got %+v", tally)
	}
	if got := testutil.ToFloat64(votesCast.WithLabelValues("B")); got != before+1 {
		t.Fatalf("votes counter: got %v want %v", got, before+1)
	}

	// Same voter, other option: rejected with no mutation.
	if _, err := svc.Cast(context.Background(), "2024-W14", domain.OptionA, "1.2.3.4"); !errors.Is(err, ErrDuplicateVote) {
		t.Fatalf("expected ErrDuplicateVote, got %v", err)
	}
	if n := countRecords(t, svc, "2024-W14"); n != 1 {
		t.Fatalf("expected 1 record after duplicate, got %d", n)
	}

	// Different voter.
	tally, err = svc.Cast(context.Background(), "2024-W14", domain.OptionA, "5.6.7.8")
	if err != nil {
		t.Fatalf("second voter: %v", err)
	}
	if tally.VotesA != 6 || tally.VotesB != 4 {
		t.Fatalf("expected 6/4, got %+v", tally)
	}
}

func TestVoteService_CastUnknownWeekStoresRecord(t *testing.T) {
	svc, _ := newVoteSvc(t)

	tally, err := svc.Cast(context.Background(), "1999-W01", domain.OptionA, "9.9.9.9")
	if err != nil {
		t.Fatalf("Cast: %v", err)
	}
	if tally != nil {
		t.Fatalf("expected nil tally for missing week, got %+v", tally)
	}
	if n := countRecords(t, svc, "1999-W01"); n != 1 {
		t.Fatalf("expected record to be stored, got %d", n)
	}
}

func TestVoteService_CastBlankVoterIsUnknown(t *testing.T) {
	svc, seed := newVoteSvc(t)
	seed("2024-W14", 0, 0, voteNow.Add(-time.Hour), voteNow.Add(time.Hour))

	if _, err := svc.Cast(context.Background(), "2024-W14", domain.OptionA, "  "); err != nil {
		t.Fatalf("Cast: %v", err)
	}
	if _, err := svc.Cast(context.Background(), "2024-W14", domain.OptionB, domain.UnknownVoter); !errors.Is(err, ErrDuplicateVote) {
		t.Fatalf("blank voter should be recorded as %q; got %v", domain.UnknownVoter, err)
	}
}

func TestVoteService_CastValidation(t *testing.T) {
	svc, _ := newVoteSvc(t)

	cases := []struct {
		name   string
		weekID string
		opt    domain.Option
		want   error
	}{
		{"missing week", " ", domain.OptionA, ErrMissingWeek},
		{"invalid option", "2024-W14", domain.Option("C"), ErrInvalidOption},
		{"lowercase option", "2024-W14", domain.Option("a"), ErrInvalidOption},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Cast(context.Background(), tc.weekID, tc.opt, "1.1.1.1"); !errors.Is(err, tc.want) {
				t.Fatalf("got %v want %v", err, tc.want)
			}
		})
	}
}
