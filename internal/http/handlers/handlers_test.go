package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/fanclub-backend/internal/domain"
	"github.com/tbourn/fanclub-backend/internal/services"
	"github.com/tbourn/fanclub-backend/internal/storage"
)

// ---------- stub services ----------

type stubVoteSvc struct {
	current *domain.WeeklyVote
	tally   *domain.VoteTally
	err     error

	gotWeek  string
	gotOpt   domain.Option
	gotVoter string
}

func (s *stubVoteSvc) Current(context.Context) (*domain.WeeklyVote, error) {
	return s.current, s.err
}

func (s *stubVoteSvc) Cast(_ context.Context, weekID string, opt domain.Option, voter string) (*domain.VoteTally, error) {
	s.gotWeek, s.gotOpt, s.gotVoter = weekID, opt, voter
	return s.tally, s.err
}

type stubFeedSvc struct {
	err    error
	events []domain.CalendarEvent

	gotTerm  string
	gotLimit int
}

func (s *stubFeedSvc) FAQ(_ context.Context, term string) ([]domain.FaqItem, error) {
	s.gotTerm = term
	if s.err != nil {
		return nil, s.err
	}
	return []domain.FaqItem{{ID: "1", Question: "Q", Answer: "A", IsPublished: true}}, nil
}

func (s *stubFeedSvc) Timeline(context.Context) ([]domain.TimelineEvent, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []domain.TimelineEvent{}, nil
}

func (s *stubFeedSvc) Friends(context.Context) ([]domain.FriendOfClub, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []domain.FriendOfClub{{ID: "1", Name: "ALS Association", IsActive: true}}, nil
}

func (s *stubFeedSvc) Calendar(_ context.Context, limit int) ([]domain.CalendarEvent, error) {
	s.gotLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	if s.events != nil {
		return s.events, nil
	}
	return []domain.CalendarEvent{}, nil
}

type stubUploadSvc struct {
	configured bool
	url        string
	err        error

	got *services.Upload
}

func (s *stubUploadSvc) Configured() bool { return s.configured }

func (s *stubUploadSvc) Save(_ context.Context, f *services.Upload) (string, error) {
	s.got = f
	return s.url, s.err
}

type stubStatusSvc struct {
	health  services.Health
	storage storage.Status
}

func (s *stubStatusSvc) Health(context.Context) services.Health { return s.health }
func (s *stubStatusSvc) StorageStatus() storage.Status          { return s.storage }

// ---------- helpers ----------

type stubs struct {
	vote   *stubVoteSvc
	feed   *stubFeedSvc
	upload *stubUploadSvc
	status *stubStatusSvc
}

func newRouter(s stubs) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if s.vote == nil {
		s.vote = &stubVoteSvc{}
	}
	if s.feed == nil {
		s.feed = &stubFeedSvc{}
	}
	if s.upload == nil {
		s.upload = &stubUploadSvc{}
	}
	if s.status == nil {
		s.status = &stubStatusSvc{}
	}
	h := New(s.vote, s.feed, s.upload, s.status)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/vote", h.GetVote)
	api.POST("/vote", h.CastVote)
	api.GET("/faq", h.ListFAQ)
	api.GET("/timeline", h.ListTimeline)
	api.GET("/friends", h.ListFriends)
	api.GET("/calendar", h.ListCalendar)
	api.GET("/calendar.ics", h.ExportCalendar)
	api.POST("/upload", h.Upload)
	api.GET("/health", h.Health)
	api.GET("/storage-status", h.StorageStatus)
	return r
}

func do(r http.Handler, method, path string, body io.Reader, hdr map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeErr(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var e ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode error envelope %q: %v", w.Body.String(), err)
	}
	return e
}
