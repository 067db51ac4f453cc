package services

import (
	"time"

	ics "github.com/arran4/golang-ical"

	"workshift/app/models"
)

// CalendarDocument renders feed events as an iCalendar document with
// the calendar's name as the display title.
func CalendarDocument(cal *models.Calendar, events []models.FeedEvent) string {
	doc := ics.NewCalendar()
	doc.SetProductId("-//WorkShift Calendar//EN")
	doc.SetVersion("2.0")
	doc.SetCalscale("GREGORIAN")
	doc.SetMethod(ics.MethodPublish)
	doc.SetXWRCalName(cal.Name)

	for _, ev := range events {
		e := doc.AddEvent(ev.UID())
		e.SetDtStampTime(time.Now().UTC())
		e.SetSummary(ev.Summary)
		e.SetStartAt(ev.Start)
		e.SetEndAt(ev.End)
		if ev.Description != nil {
			e.SetDescription(*ev.Description)
		}
	}
	return doc.Serialize()
}
