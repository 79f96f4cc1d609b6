package event

import (
	"fmt"
	"time"
)

// Category classifies an event by venue or course type.
type Category string

const (
	// CategoryPenha marks courses held at the Basílica da Penha itself.
	CategoryPenha Category = "penha"
	// CategoryOutras marks courses held at other churches.
	CategoryOutras Category = "outras"
	// CategoryCasais marks the couples course, which has its own schedule.
	CategoryCasais Category = "casais"
)

// Event is the canonical, validated representation of a Sympla course event.
// JSON field names match the published events-data.json artifact.
type Event struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Date         string   `json:"date"` // DD/MM/YYYY
	Time         string   `json:"time"` // HH:MM, assigned by the classifier
	DayOfWeek    string   `json:"day_of_week"`
	SymplaURL    string   `json:"sympla_url"`
	EventType    Category `json:"event_type"`
	FullDateTime string   `json:"full_date_time"` // sortable ISO representation
	CreatedAt    string   `json:"created_at"`
}

// weekdaySymbols maps Go weekdays to the short Portuguese symbols used in the
// artifact and in the schedule table.
var weekdaySymbols = map[time.Weekday]string{
	time.Sunday:    "Dom",
	time.Monday:    "Seg",
	time.Tuesday:   "Ter",
	time.Wednesday: "Qua",
	time.Thursday:  "Qui",
	time.Friday:    "Sex",
	time.Saturday:  "Sáb",
}

// WeekdaySymbol returns the short Portuguese symbol for a weekday.
func WeekdaySymbol(d time.Weekday) string {
	return weekdaySymbols[d]
}

// SynthesizeID builds a deterministic event ID from the event date, used when
// the source record carries no ID of its own.
func SynthesizeID(date time.Time) string {
	return fmt.Sprintf("evento-%s", date.Format("20060102"))
}

// SynthesizeURL builds the canonical Sympla event page URL for an event ID.
func SynthesizeURL(id string) string {
	return "https://www.sympla.com.br/evento/" + id
}
