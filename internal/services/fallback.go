package services

import (
	"time"

	"github.com/tbourn/fanclub-backend/internal/domain"
	"github.com/tbourn/fanclub-backend/internal/search"
)

// Fallback content served when the datastore is not configured. Each call
// returns fresh values so callers may modify them. Row timestamps are the
// time of the request.

func strp(s string) *string { return &s }
func intp(n int) *int       { return &n }

func fallbackFAQ(term string, now time.Time) []domain.FaqItem {
	items := []domain.FaqItem{
		{
			ID:           "1",
			Question:     "When was the Farewell Speech?",
			Answer:       "July 4, 1939 — Yankee Stadium.",
			Category:     strp("history"),
			DisplayOrder: intp(1),
			IsPublished:  true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "2",
			Question:     "What position did Lou play?",
			Answer:       "First base.",
			Category:     strp("career"),
			DisplayOrder: intp(2),
			IsPublished:  true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}

	out := make([]domain.FaqItem, 0, len(items))
	for _, it := range items {
		if search.MatchAny(term, it.Question, it.Answer) {
			out = append(out, it)
		}
	}
	return out
}

func fallbackTimeline(now time.Time) []domain.TimelineEvent {
	return []domain.TimelineEvent{
		{
			ID:          "1",
			Date:        "1923-06-15",
			Title:       "MLB Debut",
			Description: strp("Gehrig debuts with the Yankees on June 15, 1923."),
			Category:    strp("career"),
			CreatedAt:   now,
		},
		{
			ID:          "2",
			Date:        "1925-06-01",
			Title:       "The Streak Begins",
			Description: strp("Starts his consecutive games streak June 1, 1925."),
			Category:    strp("career"),
			CreatedAt:   now,
		},
		{
			ID:          "3",
			Date:        "1927-01-01",
			Title:       "Murderers' Row",
			Description: strp("Key part of the legendary 1927 Yankees lineup."),
			Category:    strp("career"),
			CreatedAt:   now,
		},
	}
}

func fallbackFriends(now time.Time) []domain.FriendOfClub {
	return []domain.FriendOfClub{
		{
			ID:          "1",
			Name:        "Baseball Hall of Fame",
			Description: strp("Preserving baseball history and honoring legends like Lou Gehrig"),
			WebsiteURL:  strp("https://baseballhall.org"),
			IsActive:    true,
			CreatedAt:   now,
		},
		{
			ID:          "2",
			Name:        "ALS Association",
			Description: strp("Fighting ALS and supporting families affected by Lou Gehrig's Disease"),
			WebsiteURL:  strp("https://www.als.org"),
			IsActive:    true,
			CreatedAt:   now,
		},
		{
			ID:          "3",
			Name:        "New York Yankees",
			Description: strp("Lou's legendary team where he played his entire career"),
			WebsiteURL:  strp("https://www.mlb.com/yankees"),
			IsActive:    true,
			CreatedAt:   now,
		},
	}
}
