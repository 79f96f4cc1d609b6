package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bernardocrvg/eventos-sympla-penha/internal/event"
	"github.com/bernardocrvg/eventos-sympla-penha/internal/pipeline"
	"github.com/bernardocrvg/eventos-sympla-penha/internal/storage"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteOutput writes the run result in the specified format
func WriteOutput(w io.Writer, res *pipeline.Result, store *storage.Storage, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, res)
	case FormatText:
		return writeText(w, res, store)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the full artifact as JSON
func writeJSON(w io.Writer, res *pipeline.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(res)
}

// writeText outputs a human-readable run summary
func writeText(w io.Writer, res *pipeline.Result, store *storage.Storage) error {
	fmt.Fprintf(w, "Processed %d events (generated %s)\n", res.TotalEvents, res.GeneratedAt)

	writeCategory(w, "Na Basílica", res.PenhaEvents)
	writeCategory(w, "Outras igrejas", res.OutrasEvents)
	writeCategory(w, "Casais", res.CasaisEvents)

	if store != nil {
		fmt.Fprintf(w, "\nArtifacts: %s, %s\n", store.DataPath(), store.CalendarPath())
	}
	return nil
}

func writeCategory(w io.Writer, label string, events []*event.Event) {
	fmt.Fprintf(w, "\n%s (%d):\n", label, len(events))
	if len(events) == 0 {
		fmt.Fprintln(w, "  (nenhum)")
		return
	}
	for _, evt := range events {
		fmt.Fprintf(w, "  %s %s (%s) - %s\n", evt.Date, evt.Time, evt.DayOfWeek, evt.Title)
	}
}
