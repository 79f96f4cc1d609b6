package sympla

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bernardocrvg/eventos-sympla-penha/internal/event"
	"github.com/bernardocrvg/eventos-sympla-penha/internal/logger"
)

const (
	// DefaultBaseURL is the Sympla public API root.
	DefaultBaseURL = "https://api.sympla.com.br/public/v1.5.1"
	// UserAgent mimics a browser; the API rejects unidentified clients.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	// Timeout bounds each page request.
	Timeout = 30 * time.Second
	// PageSize is the fixed page size requested from the API.
	PageSize = 100
	// DefaultMaxPages caps pagination so a server that never returns an
	// empty page cannot keep the run alive forever.
	DefaultMaxPages = 20
)

var (
	// ErrUnauthorized means the API key was rejected. The whole run fails.
	ErrUnauthorized = errors.New("invalid API key")
	// ErrForbidden means the key is valid but lacks access. The whole run fails.
	ErrForbidden = errors.New("no permission to access API")
)

// Client fetches published events from the Sympla API page by page.
type Client struct {
	client   *http.Client
	baseURL  string
	token    string
	maxPages int
}

// New creates a Client for the given API token. A zero baseURL selects the
// public API; a zero maxPages selects DefaultMaxPages.
func New(token, baseURL string, maxPages int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return &Client{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL:  baseURL,
		token:    token,
		maxPages: maxPages,
	}
}

// FetchAllEvents walks the page sequence, normalizes every record and
// deduplicates the result by event ID, keeping first occurrences.
//
// Stop conditions per page: 401/403 abort the run with an error; any other
// non-200 status, a transport failure or an unexpected body shape end
// pagination but keep what was already accumulated; an empty data array is
// the normal end of data.
func (c *Client) FetchAllEvents() ([]*event.Event, error) {
	all := make([]*event.Event, 0)

	for page := 1; page <= c.maxPages; page++ {
		items, err := c.fetchPage(page)
		if err != nil {
			if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden) {
				return nil, err
			}
			logger.Warn("pagination stopped", logger.Fields{
				"page":   page,
				"reason": err.Error(),
			})
			break
		}
		if items == nil {
			logger.Info("empty page, end of data", logger.Fields{"page": page})
			break
		}

		accepted := event.NormalizeAll(items, time.Now())
		logger.Info("page processed", logger.Fields{
			"page":     page,
			"items":    len(items),
			"accepted": len(accepted),
		})
		logger.AddCounter("sympla.records.accepted", int64(len(accepted)))
		logger.AddCounter("sympla.records.rejected", int64(len(items)-len(accepted)))

		all = append(all, accepted...)
	}

	unique := event.Deduplicate(all)
	logger.Info("fetch complete", logger.Fields{
		"events": len(unique),
	})
	return unique, nil
}

// fetchPage retrieves and decodes a single page. A nil, nil return means an
// empty data array, the normal end of pagination.
func (c *Client) fetchPage(page int) ([]map[string]interface{}, error) {
	endpoint := fmt.Sprintf("%s/events?page=%d&page_size=%d&published=true", c.baseURL, page, PageSize)

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("S_TOKEN", c.token)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	logger.RecordTiming("sympla.page_fetch", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusForbidden:
		return nil, ErrForbidden
	default:
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding body: %w", err)
	}

	rawItems, ok := payload["data"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected response structure")
	}
	if len(rawItems) == 0 {
		return nil, nil
	}

	items := make([]map[string]interface{}, 0, len(rawItems))
	for _, it := range rawItems {
		if m, ok := it.(map[string]interface{}); ok {
			items = append(items, m)
		}
	}
	return items, nil
}
