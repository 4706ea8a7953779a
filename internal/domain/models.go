// Package domain defines the persistence models for the fan-club site:
// the weekly image vote and its per-voter records, plus the read-mostly
// content feeds (friends of the club, timeline, FAQ, calendar). These types
// are mapped with GORM and shared by the repository and service layers.
//
// Table and column names follow the hosted schema so the same models work
// against the managed Postgres instance and against a local SQLite file.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Option is one of the two choices a voter can pick in a weekly matchup.
type Option string

const (
	OptionA Option = "A"
	OptionB Option = "B"
)

// Valid reports whether o is one of the enumerated options.
func (o Option) Valid() bool {
	return o == OptionA || o == OptionB
}

// Column returns the WeeklyVote counter column that tallies o.
// It returns "" for an invalid option.
func (o Option) Column() string {
	switch o {
	case OptionA:
		return "votes_a"
	case OptionB:
		return "votes_b"
	}
	return ""
}

// UnknownVoter is recorded when no network address can be derived from the
// request.
const UnknownVoter = "unknown"

// WeeklyVote is a two-image matchup open between StartDate and EndDate.
//
// Fields:
//   - WeekID: human-readable week identifier (e.g. "2024-W14"); unique.
//   - ImageAURL / ImageBURL: public URLs of the two contenders.
//   - VotesA / VotesB: running tallies, never negative.
//   - StartDate / EndDate: voting window. A row is "current" while
//     EndDate >= now; several rows may qualify, the latest StartDate wins.
type WeeklyVote struct {
	ID        string    `json:"id"          gorm:"type:varchar(36);primaryKey"`
	WeekID    string    `json:"week_id"     gorm:"type:varchar(64);not null;uniqueIndex:ux_weekly_votes_week"`
	ImageAURL string    `json:"image_a_url" gorm:"type:text;not null"`
	ImageBURL string    `json:"image_b_url" gorm:"type:text;not null"`
	VotesA    int       `json:"votes_a"     gorm:"not null;default:0;check:votes_a >= 0"`
	VotesB    int       `json:"votes_b"     gorm:"not null;default:0;check:votes_b >= 0"`
	StartDate time.Time `json:"start_date"  gorm:"not null;index:idx_weekly_votes_window,priority:2"`
	EndDate   time.Time `json:"end_date"    gorm:"not null;index:idx_weekly_votes_window,priority:1"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for WeeklyVote.
func (WeeklyVote) TableName() string { return "weekly_votes" }

// BeforeSave stores the voting window in UTC so SQLite's text timestamps
// compare in instant order.
func (w *WeeklyVote) BeforeSave(*gorm.DB) error {
	w.StartDate = w.StartDate.UTC()
	w.EndDate = w.EndDate.UTC()
	return nil
}

// VoteTally is the pair of counters returned after a vote is cast.
type VoteTally struct {
	VotesA int `json:"votes_a"`
	VotesB int `json:"votes_b"`
}

// VoteRecord stores a single ballot. At most one record may exist per
// (week_id, voter_ip); the unique index backs the service-level duplicate
// check so two concurrent ballots cannot both land.
type VoteRecord struct {
	ID               string    `json:"id"                gorm:"type:varchar(36);primaryKey"`
	WeekID           string    `json:"week_id"           gorm:"type:varchar(64);not null;uniqueIndex:ux_vote_records_week_voter,priority:1"`
	VoterIP          *string   `json:"voter_ip"          gorm:"type:varchar(128);uniqueIndex:ux_vote_records_week_voter,priority:2"`
	VoterFingerprint *string   `json:"voter_fingerprint" gorm:"type:varchar(255)"`
	SelectedOption   Option    `json:"selected_option"   gorm:"type:varchar(1);not null;check:selected_option IN ('A','B')"`
	VotedAt          time.Time `json:"voted_at"          gorm:"autoCreateTime"`
}

// TableName returns the database table name for VoteRecord.
func (VoteRecord) TableName() string { return "vote_records" }

// FriendOfClub is a partner organization listed on the site.
// DisplayOrder need not be contiguous; inactive rows are hidden.
type FriendOfClub struct {
	ID           string    `json:"id"            gorm:"type:varchar(36);primaryKey"`
	Name         string    `json:"name"          gorm:"type:varchar(255);not null"`
	Description  *string   `json:"description"   gorm:"type:text"`
	LogoURL      *string   `json:"logo_url"      gorm:"type:text"`
	WebsiteURL   *string   `json:"website_url"   gorm:"type:text"`
	DisplayOrder *int      `json:"display_order"`
	IsActive     bool      `json:"is_active"     gorm:"not null;index"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the database table name for FriendOfClub.
func (FriendOfClub) TableName() string { return "friends_of_club" }

// TimelineEvent is a dated milestone. Date is kept as an ISO calendar date
// (YYYY-MM-DD) and is not unique.
type TimelineEvent struct {
	ID          string    `json:"id"          gorm:"type:varchar(36);primaryKey"`
	Date        string    `json:"date"        gorm:"type:varchar(10);not null;index"`
	Title       string    `json:"title"       gorm:"type:varchar(255);not null"`
	Description *string   `json:"description" gorm:"type:text"`
	Category    *string   `json:"category"    gorm:"type:varchar(64)"`
	ImageURL    *string   `json:"image_url"   gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the database table name for TimelineEvent.
func (TimelineEvent) TableName() string { return "timeline_events" }

// FaqItem is a question/answer pair. Only published items are served.
type FaqItem struct {
	ID           string    `json:"id"            gorm:"type:varchar(36);primaryKey"`
	Question     string    `json:"question"      gorm:"type:text;not null"`
	Answer       string    `json:"answer"        gorm:"type:text;not null"`
	Category     *string   `json:"category"      gorm:"type:varchar(64)"`
	DisplayOrder *int      `json:"display_order"`
	IsPublished  bool      `json:"is_published"  gorm:"not null;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the database table name for FaqItem.
func (FaqItem) TableName() string { return "faq_items" }

// CalendarEvent is an upcoming club event.
type CalendarEvent struct {
	ID              string     `json:"id"               gorm:"type:varchar(36);primaryKey"`
	Title           string     `json:"title"            gorm:"type:varchar(255);not null"`
	Description     *string    `json:"description"      gorm:"type:text"`
	EventDate       time.Time  `json:"event_date"       gorm:"not null;index"`
	EndDate         *time.Time `json:"end_date"`
	Location        *string    `json:"location"         gorm:"type:varchar(255)"`
	EventType       *string    `json:"event_type"       gorm:"type:varchar(64)"`
	RegistrationURL *string    `json:"registration_url" gorm:"type:text"`
	IsPublished     bool       `json:"is_published"     gorm:"not null;index"`
	CreatedAt       time.Time  `json:"created_at"`
}

// TableName returns the database table name for CalendarEvent.
func (CalendarEvent) TableName() string { return "calendar_events" }

// BeforeSave stores event times in UTC.
func (e *CalendarEvent) BeforeSave(*gorm.DB) error {
	e.EventDate = e.EventDate.UTC()
	if e.EndDate != nil {
		end := e.EndDate.UTC()
		e.EndDate = &end
	}
	return nil
}

// All lists every model, in dependency order, for schema migration.
func All() []any {
	return []any{
		&WeeklyVote{},
		&VoteRecord{},
		&FriendOfClub{},
		&TimelineEvent{},
		&FaqItem{},
		&CalendarEvent{},
	}
}
