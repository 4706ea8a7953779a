package services

import (
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/tbourn/fanclub-backend/internal/domain"
)

const (
	icsProductID = "-//Lou Gehrig Fan Club//Events//EN"
	icsCalName   = "Lou Gehrig Fan Club Events"
	icsUIDSuffix = "@fanclub"
)

// CalendarICS renders events as an iCalendar (RFC 5545) document so
// subscribers can add the club calendar to their own. stamp is written as
// DTSTAMP on every entry.
func CalendarICS(events []domain.CalendarEvent, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetName(icsCalName)

	for _, e := range events {
		ev := cal.AddEvent(e.ID + icsUIDSuffix)
		ev.SetDtStampTime(stamp.UTC())
		ev.SetStartAt(e.EventDate.UTC())
		if e.EndDate != nil {
			ev.SetEndAt(e.EndDate.UTC())
		}
		ev.SetSummary(e.Title)
		if e.Description != nil && *e.Description != "" {
			ev.SetDescription(*e.Description)
		}
		if e.Location != nil && *e.Location != "" {
			ev.SetLocation(*e.Location)
		}
		if e.RegistrationURL != nil && *e.RegistrationURL != "" {
			ev.SetURL(*e.RegistrationURL)
		}
		if e.EventType != nil && *e.EventType != "" {
			ev.SetProperty(ics.ComponentPropertyCategories, *e.EventType)
		}
	}
	return cal.Serialize()
}
