package event

import (
	"regexp"
	"time"
)

// dateFields lists the record fields that may carry the event date, in the
// order they are consulted. The order is load-bearing: the first field that
// is present and non-empty and parses with any layout wins.
var dateFields = []string{"start_date", "date", "event_date", "start_time", "begin_date"}

// dateLayouts lists the accepted date formats, in the order they are tried
// against a field value.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"02-01-2006",
}

// titleDatePattern matches a DD/MM/YYYY date embedded in an event title.
var titleDatePattern = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)

// ResolveDate extracts the event date from a raw record, falling back to a
// date embedded in the title. Returns the zero time and false if no date can
// be resolved.
//
// Values are truncated to 19 characters before parsing so trailing fractional
// seconds or timezone suffixes do not break otherwise valid timestamps. A
// field whose value matches no layout falls through to the next field.
func ResolveDate(raw map[string]interface{}, title string) (time.Time, bool) {
	for _, field := range dateFields {
		val := stringValue(raw[field])
		if val == "" {
			continue
		}
		if len(val) > 19 {
			val = val[:19]
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, val); err == nil {
				return t, true
			}
		}
	}

	if match := titleDatePattern.FindString(title); match != "" {
		if t, err := time.Parse("02/01/2006", match); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
