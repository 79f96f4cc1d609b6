package pipeline

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bernardocrvg/eventos-sympla-penha/internal/event"
)

type stubFetcher struct {
	events []*event.Event
	err    error
}

func (s *stubFetcher) FetchAllEvents() ([]*event.Event, error) {
	return s.events, s.err
}

// nextWeekday returns the next occurrence of the given weekday after from.
func nextWeekday(from time.Time, day time.Weekday) time.Time {
	d := from.AddDate(0, 0, 1)
	for d.Weekday() != day {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func TestRunEndToEnd(t *testing.T) {
	now := time.Now()
	sunday := nextWeekday(now, time.Sunday)
	tuesday := nextWeekday(now, time.Tuesday)

	raw := []map[string]interface{}{
		{
			"id":         float64(1),
			"name":       "Curso Online de Pais e Padrinhos na Basílica",
			"start_date": sunday.Format("2006-01-02"),
		},
		{
			"id":         float64(2),
			"name":       "Curso de Pais - Fora da Basílica",
			"start_date": tuesday.Format("2006-01-02"),
		},
		{
			"id":         float64(3),
			"name":       "Promoção de produto",
			"start_date": sunday.Format("2006-01-02"),
		},
	}

	events := event.NormalizeAll(raw, now)
	res, err := Run(&stubFetcher{events: events})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if res.TotalEvents != 2 {
		t.Fatalf("expected 2 events (third rejected), got %d", res.TotalEvents)
	}
	if res.PenhaEventsCount != 1 || res.OutrasEventsCount != 1 {
		t.Errorf("expected 1 penha and 1 outras, got %d and %d",
			res.PenhaEventsCount, res.OutrasEventsCount)
	}
	if res.PenhaEvents[0].Time != "15:00" {
		t.Errorf("Sunday penha event should get 15:00, got %s", res.PenhaEvents[0].Time)
	}
	if res.OutrasEvents[0].Time != "11:00" {
		t.Errorf("Tuesday outras event should get 11:00, got %s", res.OutrasEvents[0].Time)
	}
	if !strings.Contains(res.HTMLPenha, "event-btn") {
		t.Error("penha fragment should contain an event button")
	}
	if !strings.Contains(res.HTMLCasais, "Nenhum evento") {
		t.Error("empty casais category should render the placeholder")
	}
}

func TestRunAtTimestamps(t *testing.T) {
	events := []*event.Event{
		{ID: "1", EventType: event.CategoryPenha, Date: "15/03/2026",
			DayOfWeek: "Dom", FullDateTime: "2026-03-15T00:00:00"},
	}
	now := time.Date(2026, time.March, 11, 14, 30, 0, 0, time.UTC)

	res, err := RunAt(&stubFetcher{events: events}, now)
	if err != nil {
		t.Fatalf("RunAt failed: %v", err)
	}
	if res.LastUpdate != "2026-03-11T14:30:00Z" {
		t.Errorf("unexpected last_update: %s", res.LastUpdate)
	}
	if res.GeneratedAt != "11/03/2026 às 14:30 UTC" {
		t.Errorf("unexpected generated_at: %s", res.GeneratedAt)
	}
}

func TestRunEmptyResultIsError(t *testing.T) {
	_, err := Run(&stubFetcher{events: nil})
	if !errors.Is(err, ErrNoEvents) {
		t.Fatalf("expected ErrNoEvents, got %v", err)
	}
}

func TestRunFetchErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	_, err := Run(&stubFetcher{err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped fetch error, got %v", err)
	}
}
