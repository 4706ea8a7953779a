// Package handlers defines the machine-readable error codes carried in
// ErrorResponse.Code and the fixed messages shown to clients. Codes are
// lowercase snake_case; clients branch on them, never on the message.
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeTooLarge         = "payload_too_large"
	ErrCodeInternal         = "internal_error"

	// Domain-specific:
	ErrCodeUnconfigured  = "unconfigured"
	ErrCodeDuplicateVote = "duplicate_vote"
)

// Messages returned to clients.
const (
	msgDatastoreUnconfigured = "Database not configured. Set up Supabase environment variables."
	msgStorageUnconfigured   = "Storage not configured. Set up Backblaze B2 environment variables."

	msgInvalidVote   = "Invalid vote request"
	msgDuplicateVote = "Already voted this week"
	msgNoActiveVote  = "No active vote"
	msgVoteDataFail  = "Failed to get voting data"
	msgVoteFailed    = "Vote failed"

	msgFAQFailed      = "Failed to fetch FAQ"
	msgTimelineFailed = "Failed to fetch timeline"
	msgFriendsFailed  = "Failed to fetch friends"
	msgEventsFailed   = "Failed to fetch events"

	msgNoFile       = "No file provided"
	msgFileTooLarge = "File too large"
	msgNoCDN        = "CDN URL not configured"
	msgUploadFailed = "Upload failed"
)
