package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bernardocrvg/eventos-sympla-penha/internal/event"
)

// EmptyFragment is rendered when a category has no upcoming events.
const EmptyFragment = `<div class="empty">Nenhum evento disponível no momento.</div>`

var monthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// dayNames maps weekday symbols to the full names shown on event buttons.
var dayNames = map[string]string{
	"Dom": "DOMINGO",
	"Seg": "SEGUNDA-FEIRA",
	"Ter": "TERÇA-FEIRA",
	"Qua": "QUARTA-FEIRA",
	"Qui": "QUINTA-FEIRA",
	"Sex": "SEXTA-FEIRA",
	"Sáb": "SÁBADO",
}

// MonthGroup holds one month's events under its display key ("Março/2026").
type MonthGroup struct {
	Key    string
	Year   int
	Events []*event.Event
}

// GroupByMonth partitions events into month groups. Months are ordered by
// ascending year and, within a year, by the order the month was first seen
// while scanning the input. That mirrors the order the API returned events
// in rather than calendar order; callers depending on the published artifact
// expect it. Events inside a group are sorted ascending by date-time.
func GroupByMonth(events []*event.Event) []MonthGroup {
	groups := make([]MonthGroup, 0)
	index := make(map[string]int)

	for _, evt := range events {
		dt := parseFullDateTime(evt.FullDateTime)
		key := fmt.Sprintf("%s/%d", monthNames[dt.Month()-1], dt.Year())

		i, seen := index[key]
		if !seen {
			i = len(groups)
			index[key] = i
			groups = append(groups, MonthGroup{Key: key, Year: dt.Year()})
		}
		groups[i].Events = append(groups[i].Events, evt)
	}

	// Stable sort keeps first-seen order within a year.
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Year < groups[j].Year
	})

	for i := range groups {
		evs := groups[i].Events
		sort.SliceStable(evs, func(a, b int) bool {
			return parseFullDateTime(evs[a].FullDateTime).Before(parseFullDateTime(evs[b].FullDateTime))
		})
	}

	return groups
}

// Fragment renders one category's month groups as an HTML fragment without
// any styling. Rendering is pure: identical input yields identical output.
func Fragment(groups []MonthGroup) string {
	if len(groups) == 0 {
		return EmptyFragment
	}

	lines := make([]string, 0)
	for _, g := range groups {
		lines = append(lines, fmt.Sprintf(`<section class="month"><h3>%s</h3>`, strings.ToUpper(g.Key)))
		for _, evt := range g.Events {
			dn, ok := dayNames[evt.DayOfWeek]
			if !ok {
				dn = strings.ToUpper(evt.DayOfWeek)
			}
			lines = append(lines, fmt.Sprintf(
				`<a class="event-btn" href="%s" target="_blank" rel="noopener">%s (%s)</a>`,
				evt.SymplaURL, evt.Date, dn))
		}
		lines = append(lines, "</section>")
	}
	return strings.Join(lines, "\n")
}

// Events renders a category in one call: group then format.
func Events(events []*event.Event) string {
	return Fragment(GroupByMonth(events))
}

func parseFullDateTime(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		return time.Time{}
	}
	return t
}
