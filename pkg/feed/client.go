package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/seismoio/quakewatch/pkg/domain"
	"github.com/seismoio/quakewatch/pkg/regions"
)

// Client fetches the live earthquake feed over HTTPS
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a feed client for the given endpoint
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// payload is the upstream response envelope, extra fields ignored
type payload struct {
	Result []eventRecord `json:"result"`
}

type eventRecord struct {
	ID                 string    `json:"earthquake_id"`
	Title              string    `json:"title"`
	Magnitude          magnitude `json:"mag"`
	Date               string    `json:"date"`
	LocationProperties struct {
		EpiCenter struct {
			Name string `json:"name"`
		} `json:"epiCenter"`
	} `json:"location_properties"`
}

// magnitude tolerates the upstream sending either a JSON number or a string
type magnitude string

func (m *magnitude) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*m = ""
		return nil
	}
	*m = magnitude(strings.Trim(s, `"`))
	return nil
}

// Fetch retrieves and decodes the feed, newest event first as reported upstream
func (c *Client) Fetch(ctx context.Context) ([]domain.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", c.url, err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch feed %s: unexpected status %d", c.url, resp.StatusCode)
	}

	var data payload
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode feed response: %w", err)
	}

	events := make([]domain.Event, 0, len(data.Result))
	for _, rec := range data.Result {
		events = append(events, domain.Event{
			ID:        rec.ID,
			Title:     rec.Title,
			Magnitude: string(rec.Magnitude),
			Date:      rec.Date,
			Region:    regions.Normalize(rec.LocationProperties.EpiCenter.Name),
		})
	}
	return events, nil
}
