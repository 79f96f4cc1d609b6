// Package pipeline orchestrates one full run: fetch, split by category,
// group and render, then assemble the artifact written for downstream
// publishing.
package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/bernardocrvg/eventos-sympla-penha/internal/event"
	"github.com/bernardocrvg/eventos-sympla-penha/internal/logger"
	"github.com/bernardocrvg/eventos-sympla-penha/internal/render"
)

// ErrNoEvents is returned when a run yields zero events. The artifact would
// be meaningless, so the run is treated as failed rather than published.
var ErrNoEvents = errors.New("no events found")

// Fetcher retrieves the full normalized, deduplicated event set.
type Fetcher interface {
	FetchAllEvents() ([]*event.Event, error)
}

// Result is the complete artifact handed to storage. Field names match the
// published events-data.json consumed by the site.
type Result struct {
	PenhaEvents  []*event.Event `json:"penha_events"`
	OutrasEvents []*event.Event `json:"outras_events"`
	CasaisEvents []*event.Event `json:"casais_events"`

	HTMLPenha  string `json:"html_penha"`
	HTMLOutras string `json:"html_outras"`
	HTMLCasais string `json:"html_casais"`

	PenhaEventsCount  int `json:"penha_events_count"`
	OutrasEventsCount int `json:"outras_events_count"`
	CasaisEventsCount int `json:"casais_events_count"`
	TotalEvents       int `json:"total_events"`

	LastUpdate  string `json:"last_update"`
	GeneratedAt string `json:"generated_at"`
}

// Run executes the pipeline against the given fetcher.
func Run(f Fetcher) (*Result, error) {
	return RunAt(f, time.Now().UTC())
}

// RunAt is Run with an explicit timestamp for the artifact's last_update and
// generated_at fields.
func RunAt(f Fetcher, now time.Time) (*Result, error) {
	all, err := f.FetchAllEvents()
	if err != nil {
		return nil, fmt.Errorf("fetching events: %w", err)
	}
	if len(all) == 0 {
		return nil, ErrNoEvents
	}

	res := &Result{
		PenhaEvents:  make([]*event.Event, 0),
		OutrasEvents: make([]*event.Event, 0),
		CasaisEvents: make([]*event.Event, 0),
	}
	for _, evt := range all {
		switch evt.EventType {
		case event.CategoryPenha:
			res.PenhaEvents = append(res.PenhaEvents, evt)
		case event.CategoryCasais:
			res.CasaisEvents = append(res.CasaisEvents, evt)
		default:
			res.OutrasEvents = append(res.OutrasEvents, evt)
		}
	}

	res.HTMLPenha = render.Events(res.PenhaEvents)
	res.HTMLOutras = render.Events(res.OutrasEvents)
	res.HTMLCasais = render.Events(res.CasaisEvents)

	res.PenhaEventsCount = len(res.PenhaEvents)
	res.OutrasEventsCount = len(res.OutrasEvents)
	res.CasaisEventsCount = len(res.CasaisEvents)
	res.TotalEvents = len(all)

	res.LastUpdate = now.Format(time.RFC3339)
	res.GeneratedAt = fmt.Sprintf("%s às %s UTC", now.Format("02/01/2006"), now.Format("15:04"))

	logFragmentStats("penha", res.HTMLPenha)
	logFragmentStats("outras", res.HTMLOutras)
	logFragmentStats("casais", res.HTMLCasais)

	logger.Info("pipeline complete", logger.Fields{
		"penha":  res.PenhaEventsCount,
		"outras": res.OutrasEventsCount,
		"casais": res.CasaisEventsCount,
		"total":  res.TotalEvents,
	})

	return res, nil
}

func logFragmentStats(category, fragment string) {
	stats, err := render.FragmentStats(fragment)
	if err != nil {
		logger.Warn("fragment did not parse", logger.Fields{"category": category})
		return
	}
	logger.Debug("fragment rendered", logger.Fields{
		"category": category,
		"months":   stats.Months,
		"buttons":  stats.Buttons,
	})
}
