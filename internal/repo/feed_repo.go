// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the read-only queries behind the
// content feeds: FAQ, timeline, friends of the club and calendar.
//
// Each function issues exactly one SELECT and returns a non-nil slice.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/fanclub-backend/internal/domain"
	"github.com/tbourn/fanclub-backend/internal/search"
)

// ListFaqItems returns published FAQ items by display order. A non-blank
// term restricts the result to items whose question or answer contains it,
// case-insensitively.
func ListFaqItems(ctx context.Context, db *gorm.DB, term string) ([]domain.FaqItem, error) {
	q := db.WithContext(ctx).
		Where("is_published = ?", true)

	if pattern, ok := search.LikePattern(term); ok {
		q = q.Where(
			"(LOWER(question) LIKE ? ESCAPE '\\' OR LOWER(answer) LIKE ? ESCAPE '\\')",
			pattern, pattern,
		)
	}

	items := []domain.FaqItem{}
	err := q.Order("display_order ASC").Order("created_at ASC").Find(&items).Error
	return items, err
}

// ListTimelineEvents returns every timeline event in date order.
func ListTimelineEvents(ctx context.Context, db *gorm.DB) ([]domain.TimelineEvent, error) {
	events := []domain.TimelineEvent{}
	err := db.WithContext(ctx).
		Order("date ASC").
		Order("created_at ASC").
		Find(&events).Error
	return events, err
}

// ListFriends returns active partner organizations by display order.
func ListFriends(ctx context.Context, db *gorm.DB) ([]domain.FriendOfClub, error) {
	friends := []domain.FriendOfClub{}
	err := db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC").
		Order("name ASC").
		Find(&friends).Error
	return friends, err
}

// ListUpcomingEvents returns up to limit published events starting at or
// after now, soonest first.
func ListUpcomingEvents(ctx context.Context, db *gorm.DB, now time.Time, limit int) ([]domain.CalendarEvent, error) {
	events := []domain.CalendarEvent{}
	err := db.WithContext(ctx).
		Where("is_published = ? AND "+instant(db, "event_date")+" >= "+instant(db, "?"), true, now.UTC()).
		Order(instant(db, "event_date") + " ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}
