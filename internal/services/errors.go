// Package services defines the business logic for the weekly vote, the
// content feeds, media uploads and status reporting. This file centralizes
// the service-level error values so handlers can map them to HTTP results
// with errors.Is.
package services

import "errors"

var (
	// ErrUnconfigured indicates that the backing datastore or object store
	// has no credentials in this deployment.
	ErrUnconfigured = errors.New("backing service not configured")

	// ErrNotFound is returned when there is no current weekly vote.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateVote is returned when the voter already has a ballot for
	// the week.
	ErrDuplicateVote = errors.New("already voted this week")

	// ErrInvalidOption is returned for an option other than "A" or "B".
	ErrInvalidOption = errors.New("option must be A or B")

	// ErrMissingWeek is returned when a ballot names no week.
	ErrMissingWeek = errors.New("week id is required")

	// ErrNoFile is returned when an upload carries no file.
	ErrNoFile = errors.New("no file provided")

	// ErrNoPublicURL is returned when an object was stored but no CDN base
	// URL is configured to address it.
	ErrNoPublicURL = errors.New("cdn url not configured")
)
