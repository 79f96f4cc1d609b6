// Package calendar serializes normalized events into an iCalendar document
// published alongside the JSON artifact.
package calendar

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/bernardocrvg/eventos-sympla-penha/internal/event"
)

// sessionLength is the assumed duration of a course session; the listing
// never publishes an end time.
const sessionLength = 2 * time.Hour

// BuildCalendar serializes events into a VCALENDAR. DTSTART combines the
// event date with the canonical session time assigned by the classifier.
func BuildCalendar(events []*event.Event, generatedAt time.Time) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Eventos Sympla Penha//eventos-sympla-penha//PT")

	for _, evt := range events {
		start, err := sessionStart(evt)
		if err != nil {
			return "", fmt.Errorf("event %s: %w", evt.ID, err)
		}

		e := cal.AddEvent(evt.ID + "@sympla.com.br")
		e.SetDtStampTime(generatedAt.UTC())
		e.SetStartAt(start)
		e.SetEndAt(start.Add(sessionLength))
		e.SetSummary(evt.Title)
		if evt.SymplaURL != "" {
			e.SetURL(evt.SymplaURL)
			e.SetDescription(fmt.Sprintf("Inscrições: %s", evt.SymplaURL))
		}
	}

	return cal.Serialize(), nil
}

// sessionStart combines the event's calendar date with its assigned clock time.
func sessionStart(evt *event.Event) (time.Time, error) {
	day, err := time.Parse("2006-01-02T15:04:05", evt.FullDateTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date: %w", err)
	}

	clock, err := time.Parse("15:04", evt.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing time: %w", err)
	}

	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.UTC), nil
}
