// Content feed HTTP handlers.
//
//   - GET /faq?search=
//   - GET /timeline
//   - GET /friends
//   - GET /calendar?limit=
//   - GET /calendar.ics?limit=
//
// Each responds with a JSON array, except the iCalendar export. Without datastore credentials the
// service substitutes fallback content, so these never answer 503.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/fanclub-backend/internal/services"
	"github.com/tbourn/fanclub-backend/internal/utils"
)

const icsContentType = "text/calendar; charset=utf-8"

// ListFAQ godoc
// @ID          listFAQ
// @Summary     FAQ
// @Description Published FAQ items by display order, optionally filtered by a case-insensitive substring of question or answer.
// @Tags        Content
// @Produce     json
// @Param       search  query     string  false  "Substring to match"  example(iron horse)
// @Success     200     {array}   domain.FaqItem
// @Failure     500     {object}  handlers.ErrorResponse  "Failed to fetch FAQ"
// @Router      /faq [get]
func (h *Handlers) ListFAQ(c *gin.Context) {
	items, err := h.feedSvc.FAQ(c.Request.Context(), c.Query("search"))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, msgFAQFailed, err)
		return
	}
	ok(c, http.StatusOK, items)
}

// ListTimeline godoc
// @ID          listTimeline
// @Summary     Timeline
// @Description All timeline events in date order.
// @Tags        Content
// @Produce     json
// @Success     200  {array}   domain.TimelineEvent
// @Failure     500  {object}  handlers.ErrorResponse  "Failed to fetch timeline"
// @Router      /timeline [get]
func (h *Handlers) ListTimeline(c *gin.Context) {
	events, err := h.feedSvc.Timeline(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, msgTimelineFailed, err)
		return
	}
	ok(c, http.StatusOK, events)
}

// ListFriends godoc
// @ID          listFriends
// @Summary     Friends of the club
// @Description Active partner organizations by display order.
// @Tags        Content
// @Produce     json
// @Success     200  {array}   domain.FriendOfClub
// @Failure     500  {object}  handlers.ErrorResponse  "Failed to fetch friends"
// @Router      /friends [get]
func (h *Handlers) ListFriends(c *gin.Context) {
	friends, err := h.feedSvc.Friends(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, msgFriendsFailed, err)
		return
	}
	ok(c, http.StatusOK, friends)
}

// ListCalendar godoc
// @ID          listCalendar
// @Summary     Upcoming events
// @Description Published events that have not started yet, soonest first.
// @Tags        Content
// @Produce     json
// @Param       limit  query     int  false  "Maximum events"  minimum(1) maximum(50) default(10)
// @Success     200    {array}   domain.CalendarEvent
// @Failure     500    {object}  handlers.ErrorResponse  "Failed to fetch events"
// @Router      /calendar [get]
func (h *Handlers) ListCalendar(c *gin.Context) {
	limit := utils.AtoiDefault(c.Query("limit"), 0)
	events, err := h.feedSvc.Calendar(c.Request.Context(), limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, msgEventsFailed, err)
		return
	}
	ok(c, http.StatusOK, events)
}

// ExportCalendar godoc
// @ID          exportCalendar
// @Summary     Upcoming events as iCalendar
// @Tags        Content
// @Produce     text/calendar
// @Param       limit  query     int  false  "Maximum events"  minimum(1) maximum(50) default(10)
// @Success     200    {string}  string  "VCALENDAR document"
// @Failure     500    {object}  handlers.ErrorResponse  "Failed to fetch events"
// @Router      /calendar.ics [get]
func (h *Handlers) ExportCalendar(c *gin.Context) {
	limit := utils.AtoiDefault(c.Query("limit"), 0)
	events, err := h.feedSvc.Calendar(c.Request.Context(), limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, msgEventsFailed, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="events.ics"`)
	c.Data(http.StatusOK, icsContentType, []byte(services.CalendarICS(events, time.Now())))
}
