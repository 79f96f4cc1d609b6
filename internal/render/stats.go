package render

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Stats summarizes the structure of a rendered fragment.
type Stats struct {
	Months  int
	Buttons int
}

// FragmentStats parses a rendered fragment back and counts its month sections
// and event buttons. The pipeline logs these after rendering so a structural
// regression shows up in the run log before the artifact is published.
func FragmentStats(fragment string) (Stats, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return Stats{}, fmt.Errorf("parsing fragment: %w", err)
	}
	return Stats{
		Months:  doc.Find("section.month").Length(),
		Buttons: doc.Find("a.event-btn").Length(),
	}, nil
}
