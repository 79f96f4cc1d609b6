package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log at INFO threshold
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "page fetched",
			fields:  Fields{"page": 1},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "debug message",
			want:    false,
		},
		{
			name:    "warn message",
			level:   LevelWarn,
			message: "pagination stopped",
			want:    true,
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "request failed",
			err:     errors.New("boom"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(LevelInfo, &buf)

			l.log(tt.level, tt.message, tt.fields, tt.err)

			logged := buf.Len() > 0
			if logged != tt.want {
				t.Fatalf("logged = %v, expected %v", logged, tt.want)
			}
			if !logged {
				return
			}

			var entry LogEntry
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("log line is not JSON: %v", err)
			}
			if entry.Level != string(tt.level) {
				t.Errorf("level = %s, expected %s", entry.Level, tt.level)
			}
			if entry.Message != tt.message {
				t.Errorf("message = %q, expected %q", entry.Message, tt.message)
			}
			if tt.err != nil && entry.Error != tt.err.Error() {
				t.Errorf("error = %q, expected %q", entry.Error, tt.err.Error())
			}
			if entry.Timestamp == "" {
				t.Error("timestamp should be set")
			}
		})
	}
}

func TestLoggerOneLinePerEntry(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf)

	l.Debug("first", nil)
	l.Info("second", Fields{"n": 2})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, line := range lines {
		var entry LogEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Errorf("line is not valid JSON: %q", line)
		}
	}
}

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()
	m.IncrCounter("pages")
	m.IncrCounter("pages")
	m.AddCounter("accepted", 5)

	snapshot := m.GetSnapshot()
	counters := snapshot["counters"].(map[string]int64)
	if counters["pages"] != 2 {
		t.Errorf("pages = %d, expected 2", counters["pages"])
	}
	if counters["accepted"] != 5 {
		t.Errorf("accepted = %d, expected 5", counters["accepted"])
	}
}

func TestMetricsTimings(t *testing.T) {
	m := NewMetrics()
	m.RecordTiming("fetch", 100*time.Millisecond)
	m.RecordTiming("fetch", 300*time.Millisecond)

	snapshot := m.GetSnapshot()
	timings := snapshot["timings"].(map[string]map[string]interface{})
	fetch, ok := timings["fetch"]
	if !ok {
		t.Fatal("expected fetch timing stats")
	}
	if fetch["count"] != 2 {
		t.Errorf("count = %v, expected 2", fetch["count"])
	}
	if fetch["min"] != "100ms" || fetch["max"] != "300ms" {
		t.Errorf("min/max = %v/%v, expected 100ms/300ms", fetch["min"], fetch["max"])
	}
	if fetch["average"] != "200ms" {
		t.Errorf("average = %v, expected 200ms", fetch["average"])
	}
}
