package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/bernardocrvg/eventos-sympla-penha/internal/event"
	"github.com/bernardocrvg/eventos-sympla-penha/internal/pipeline"
)

func sampleResult() *pipeline.Result {
	return &pipeline.Result{
		PenhaEvents: []*event.Event{
			{ID: "1", Title: "Curso de Pais na Basílica", Date: "15/03/2026",
				Time: "15:00", DayOfWeek: "Dom", EventType: event.CategoryPenha},
		},
		OutrasEvents:     []*event.Event{},
		CasaisEvents:     []*event.Event{},
		PenhaEventsCount: 1,
		TotalEvents:      1,
		GeneratedAt:      "11/03/2026 às 14:30 UTC",
		LastUpdate:       "2026-03-11T14:30:00Z",
		HTMLPenha:        "<section></section>",
		HTMLOutras:       "<div></div>",
		HTMLCasais:       "<div></div>",
	}
}

func TestWriteOutputText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), nil, FormatText); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Processed 1 events",
		"Na Basílica (1):",
		"15/03/2026 15:00 (Dom) - Curso de Pais na Basílica",
		"Outras igrejas (0):",
		"(nenhum)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q\n%s", want, out)
		}
	}
}

func TestWriteOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), nil, FormatJSON); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	var decoded pipeline.Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("JSON output did not decode: %v", err)
	}
	if decoded.TotalEvents != 1 || decoded.PenhaEventsCount != 1 {
		t.Errorf("unexpected decoded result: %+v", decoded)
	}
}

func TestWriteOutputUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), nil, OutputFormat("xml")); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
