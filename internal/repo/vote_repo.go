// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the weekly
// vote and its ballots.
//
// The repository stays thin: each function is one statement. Sequencing,
// duplicate detection and transaction boundaries belong to
// services.VoteService.
//
// Error semantics:
//   - Lookups that match nothing return ErrNotFound.
//   - Inserting a second ballot for the same (week_id, voter_ip) returns
//     ErrDuplicate.
//   - Everything else propagates the raw gorm error.
package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/fanclub-backend/internal/domain"
)

// CurrentWeeklyVote returns the open matchup: the row with the latest
// start_date among those whose end_date is at or after now.
func CurrentWeeklyVote(ctx context.Context, db *gorm.DB, now time.Time) (*domain.WeeklyVote, error) {
	var wv domain.WeeklyVote
	err := db.WithContext(ctx).
		Where(instant(db, "end_date")+" >= "+instant(db, "?"), now.UTC()).
		Order(instant(db, "start_date") + " DESC").
		Limit(1).
		Take(&wv).Error
	if err != nil {
		return nil, err
	}
	return &wv, nil
}

// FindVoteRecord returns the ballot cast by voter in weekID, if any.
func FindVoteRecord(ctx context.Context, db *gorm.DB, weekID, voter string) (*domain.VoteRecord, error) {
	var recs []domain.VoteRecord
	err := db.WithContext(ctx).
		Select("id", "week_id", "voter_ip", "selected_option", "voted_at").
		Where("week_id = ? AND voter_ip = ?", weekID, voter).
		Limit(1).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrNotFound
	}
	return &recs[0], nil
}

// CreateVoteRecord inserts a ballot and returns ErrDuplicate when voter has
// already voted in weekID.
func CreateVoteRecord(ctx context.Context, db *gorm.DB, weekID, voter string, opt domain.Option) (*domain.VoteRecord, error) {
	rec := &domain.VoteRecord{
		ID:             uuid.NewString(),
		WeekID:         weekID,
		VoterIP:        &voter,
		SelectedOption: opt,
		VotedAt:        time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return rec, nil
}

// IncrementVote adds one to the counter column for opt in a single UPDATE,
// treating a NULL counter as zero. It reports how many rows matched; zero
// means the week does not exist.
func IncrementVote(ctx context.Context, db *gorm.DB, weekID string, opt domain.Option) (int64, error) {
	col := opt.Column()
	if col == "" {
		return 0, fmt.Errorf("increment vote: invalid option %q", opt)
	}
	res := db.WithContext(ctx).
		Model(&domain.WeeklyVote{}).
		Where("week_id = ?", weekID).
		UpdateColumn(col, gorm.Expr("COALESCE("+col+", 0) + 1"))
	return res.RowsAffected, res.Error
}

// GetVoteTally reads the two counters for weekID.
func GetVoteTally(ctx context.Context, db *gorm.DB, weekID string) (*domain.VoteTally, error) {
	var rows []domain.VoteTally
	err := db.WithContext(ctx).
		Model(&domain.WeeklyVote{}).
		Select("COALESCE(votes_a, 0) AS votes_a, COALESCE(votes_b, 0) AS votes_b").
		Where("week_id = ?", weekID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// Ping issues the cheapest bounded query against weekly_votes.
func Ping(ctx context.Context, db *gorm.DB) error {
	var ids []string
	return db.WithContext(ctx).
		Model(&domain.WeeklyVote{}).
		Limit(1).
		Pluck("id", &ids).Error
}

// IsNotFound reports whether err is a repository not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
