// Package services – VoteService
//
// VoteService owns the weekly image vote: it finds the open matchup and
// records ballots. A ballot is stored, counted and re-read in a single
// transaction; the unique (week_id, voter_ip) index guarantees one ballot
// per voter per week even when two requests race past the read check.
//
// Observability: public methods are OpenTelemetry-instrumented and
// successful ballots increment fanclub_votes_cast_total{option}.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/fanclub-backend/internal/domain"
	"github.com/tbourn/fanclub-backend/internal/repo"
)

var votesCast = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fanclub_votes_cast_total",
		Help: "Ballots recorded, by selected option.",
	},
	[]string{"option"},
)

func init() {
	prometheus.MustRegister(votesCast)
}

// VoteService coordinates the weekly vote.
type VoteService struct {
	Store Datastore
	Now   func() time.Time
}

// NewVoteService returns a VoteService reading the wall clock.
func NewVoteService(store Datastore) *VoteService {
	return &VoteService{Store: store, Now: time.Now}
}

// Current returns the open matchup: among weeks whose end date has not
// passed, the one that started last.
func (s *VoteService) Current(ctx context.Context) (*domain.WeeklyVote, error) {
	ctx, span := otel.Tracer("services/VoteService").Start(ctx, "Current")
	defer span.End()

	db, err := s.Store.Writer(ctx)
	if err != nil {
		return nil, mapUnconfigured(err)
	}
	wv, err := repo.CurrentWeeklyVote(ctx, db, s.now())
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "current weekly vote")
		return nil, err
	}
	span.SetAttributes(attribute.String("vote.week_id", wv.WeekID))
	return wv, nil
}

// Cast records voter's ballot for weekID and returns the updated counters.
// Configuration is checked before the input is validated.
//
// A ballot for a week that has no matchup row is still recorded; the
// returned tally is then nil. A voter who already has a ballot for the week
// gets ErrDuplicateVote and nothing is written.
func (s *VoteService) Cast(ctx context.Context, weekID string, opt domain.Option, voter string) (*domain.VoteTally, error) {
	weekID = strings.TrimSpace(weekID)
	voter = strings.TrimSpace(voter)
	if voter == "" {
		voter = domain.UnknownVoter
	}

	ctx, span := otel.Tracer("services/VoteService").Start(ctx, "Cast",
		trace.WithAttributes(
			attribute.String("vote.week_id", weekID),
			attribute.String("vote.option", string(opt)),
		),
	)
	defer span.End()

	if !s.Store.WriterConfigured() {
		return nil, ErrUnconfigured
	}
	if weekID == "" {
		return nil, ErrMissingWeek
	}
	if !opt.Valid() {
		return nil, ErrInvalidOption
	}

	db, err := s.Store.Writer(ctx)
	if err != nil {
		return nil, mapUnconfigured(err)
	}

	var tally *domain.VoteTally
	err = db.Transaction(func(tx *gorm.DB) error {
		if _, err := repo.FindVoteRecord(ctx, tx, weekID, voter); err == nil {
			return ErrDuplicateVote
		} else if !repo.IsNotFound(err) {
			return err
		}

		if _, err := repo.CreateVoteRecord(ctx, tx, weekID, voter, opt); err != nil {
			if errors.Is(err, repo.ErrDuplicate) {
				return ErrDuplicateVote
			}
			return err
		}

		n, err := repo.IncrementVote(ctx, tx, weekID, opt)
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}

		t, err := repo.GetVoteTally(ctx, tx, weekID)
		if err != nil {
			return err
		}
		tally = t
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrDuplicateVote) {
			span.RecordError(err)
			span.SetStatus(codes.Error, "cast vote")
		}
		return nil, err
	}

	votesCast.WithLabelValues(string(opt)).Inc()
	return tally, nil
}

func (s *VoteService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
