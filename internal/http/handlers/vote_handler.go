// Vote HTTP handlers.
//
//   - GET  /vote  (current matchup)
//   - POST /vote  (cast a ballot)
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/fanclub-backend/internal/domain"
	"github.com/tbourn/fanclub-backend/internal/services"
	"github.com/tbourn/fanclub-backend/internal/sysutil"
)

// CastVoteRequest is the JSON payload for casting a ballot.
type CastVoteRequest struct {
	// WeekID identifies the matchup.
	WeekID string `json:"weekId" example:"2024-W14"`
	// Option is "A" or "B".
	Option string `json:"option" example:"A" enums:"A,B"`
}

// CastVoteResponse reports the counters after a ballot. Votes is null when
// the week has no matchup row.
type CastVoteResponse struct {
	Success bool              `json:"success" example:"true"`
	Votes   *domain.VoteTally `json:"votes"`
}

// GetVote godoc
// @ID          getVote
// @Summary     Current weekly matchup
// @Description Returns the open matchup: the latest-starting week whose end date has not passed.
// @Tags        Vote
// @Produce     json
// @Success     200  {object}  domain.WeeklyVote
// @Failure     404  {object}  handlers.ErrorResponse  "No active vote"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Failure     503  {object}  handlers.ErrorResponse  "Datastore not configured"
// @Router      /vote [get]
func (h *Handlers) GetVote(c *gin.Context) {
	wv, err := h.voteSvc.Current(c.Request.Context())
	switch {
	case err == nil:
		ok(c, http.StatusOK, wv)
	case errors.Is(err, services.ErrUnconfigured):
		fail(c, http.StatusServiceUnavailable, ErrCodeUnconfigured, msgDatastoreUnconfigured, nil)
	case errors.Is(err, services.ErrNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, msgNoActiveVote, nil)
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, msgVoteDataFail, err)
	}
}

// CastVote godoc
// @ID          castVote
// @Summary     Cast a ballot
// @Description Records one ballot per client address per week and returns the updated counters.
// @Tags        Vote
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.CastVoteRequest  true  "Ballot"
// @Success     200   {object}  handlers.CastVoteResponse
// @Failure     400   {object}  handlers.ErrorResponse  "Invalid ballot or already voted"
// @Failure     500   {object}  handlers.ErrorResponse  "Internal error"
// @Failure     503   {object}  handlers.ErrorResponse  "Datastore not configured"
// @Router      /vote [post]
func (h *Handlers) CastVote(c *gin.Context) {
	var req CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = CastVoteRequest{}
	}

	tally, err := h.voteSvc.Cast(c.Request.Context(), req.WeekID, domain.Option(req.Option), voterAddress(c))
	switch {
	case err == nil:
		ok(c, http.StatusOK, CastVoteResponse{Success: true, Votes: tally})
	case errors.Is(err, services.ErrUnconfigured):
		fail(c, http.StatusServiceUnavailable, ErrCodeUnconfigured, msgDatastoreUnconfigured, nil)
	case errors.Is(err, services.ErrMissingWeek), errors.Is(err, services.ErrInvalidOption):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, msgInvalidVote, nil)
	case errors.Is(err, services.ErrDuplicateVote):
		fail(c, http.StatusBadRequest, ErrCodeDuplicateVote, msgDuplicateVote, nil)
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, msgVoteFailed, err)
	}
}

// voterAddress derives the identity used to deduplicate ballots: the first
// X-Forwarded-For entry, then X-Real-IP, then the connection address, and
// finally domain.UnknownVoter.
func voterAddress(c *gin.Context) string {
	first, _, _ := strings.Cut(c.GetHeader("X-Forwarded-For"), ",")
	return sysutil.FirstNonEmpty(first, c.GetHeader("X-Real-IP"), c.RemoteIP(), domain.UnknownVoter)
}
