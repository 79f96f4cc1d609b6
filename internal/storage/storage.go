// Package storage persists the run artifact: the events-data.json document
// consumed by the published site and the companion events.ics calendar.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bernardocrvg/eventos-sympla-penha/internal/pipeline"
)

const (
	// DataFileName is the JSON artifact consumed by the site.
	DataFileName = "events-data.json"
	// CalendarFileName is the ICS companion artifact.
	CalendarFileName = "events.ics"
)

// Storage writes run artifacts into a data directory.
type Storage struct {
	dataDir string
}

// New creates a Storage rooted at dataDir, creating the directory if needed.
// A leading ~/ is expanded to the user's home directory.
func New(dataDir string) (*Storage, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// DataPath returns the path of the JSON artifact.
func (s *Storage) DataPath() string {
	return filepath.Join(s.dataDir, DataFileName)
}

// CalendarPath returns the path of the ICS artifact.
func (s *Storage) CalendarPath() string {
	return filepath.Join(s.dataDir, CalendarFileName)
}

// SaveResult writes the run artifact as indented JSON.
func (s *Storage) SaveResult(res *pipeline.Result) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	if err := os.WriteFile(s.DataPath(), data, 0644); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}

	return nil
}

// LoadResult reads a previously saved artifact. A missing file returns
// (nil, nil) so callers can treat the first run uniformly.
func (s *Storage) LoadResult() (*pipeline.Result, error) {
	data, err := os.ReadFile(s.DataPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading result: %w", err)
	}

	var res pipeline.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("parsing result: %w", err)
	}

	return &res, nil
}

// SaveCalendar writes the serialized ICS document.
func (s *Storage) SaveCalendar(ics string) error {
	if err := os.WriteFile(s.CalendarPath(), []byte(ics), 0644); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	return nil
}
