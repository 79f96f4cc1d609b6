package event

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Normalize converts one raw API record into an Event. The second return
// value is false when the record is rejected: empty title, out-of-domain
// title, unresolvable date, or a date already in the past. Rejections are
// per-record; a bad record never affects the rest of the batch.
func Normalize(raw map[string]interface{}) (*Event, bool) {
	return NormalizeAt(raw, time.Now())
}

// NormalizeAt is Normalize with an explicit reference time for the
// future-only filter. The comparison is date-only: an event today is kept,
// an event yesterday is not.
func NormalizeAt(raw map[string]interface{}, now time.Time) (*Event, bool) {
	title := strings.TrimSpace(stringValue(firstOf(raw, "name", "title", "event_name")))
	if title == "" {
		return nil, false
	}

	classification, ok := Classify(title)
	if !ok {
		return nil, false
	}

	date, ok := ResolveDate(raw, title)
	if !ok {
		return nil, false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	eventDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if eventDay.Before(today) {
		return nil, false
	}

	dayOfWeek := WeekdaySymbol(date.Weekday())

	id := stringValue(raw["id"])
	url := stringValue(firstOf(raw, "url", "public_url", "link"))
	if url == "" && id != "" {
		url = SynthesizeURL(id)
	}
	if id == "" {
		id = SynthesizeID(date)
	}

	return &Event{
		ID:           id,
		Title:        title,
		Date:         date.Format("02/01/2006"),
		Time:         classification.TimeFor(dayOfWeek),
		DayOfWeek:    dayOfWeek,
		SymplaURL:    url,
		EventType:    classification.Type,
		FullDateTime: date.Format("2006-01-02T15:04:05"),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}, true
}

// NormalizeAll normalizes a page of raw records, keeping only the accepted
// ones in their original order.
func NormalizeAll(items []map[string]interface{}, now time.Time) []*Event {
	accepted := make([]*Event, 0, len(items))
	for _, raw := range items {
		if evt, ok := NormalizeAt(raw, now); ok {
			accepted = append(accepted, evt)
		}
	}
	return accepted
}

// Deduplicate removes events sharing an ID, keeping the first occurrence and
// preserving relative order.
func Deduplicate(events []*Event) []*Event {
	seen := make(map[string]bool)
	unique := make([]*Event, 0, len(events))
	for _, evt := range events {
		if !seen[evt.ID] {
			seen[evt.ID] = true
			unique = append(unique, evt)
		}
	}
	return unique
}

// firstOf returns the first non-empty value among the named keys.
func firstOf(raw map[string]interface{}, keys ...string) interface{} {
	for _, k := range keys {
		if v := raw[k]; v != nil && stringValue(v) != "" {
			return v
		}
	}
	return nil
}

// stringValue renders a raw field as a string. Sympla sends event IDs as
// numbers, which the JSON decoder surfaces as float64.
func stringValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case json.Number:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
