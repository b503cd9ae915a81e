// File: /statistics/census.go
package statistics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultBaseURL points at the US Census Bureau CPS volunteering supplement
// collected in September 2023.
const DefaultBaseURL = "https://api.census.gov/data/2023/cps/volunteer/sep"

// Frequencies maps a categorical response code to its occurrence count
type Frequencies map[string]int

// Aggregate tallies survey rows by their first column, the response code.
// Rows are counted exactly as returned by the API; codes that no metric
// consults (such as the header row's variable name) are simply never read.
func Aggregate(rows [][]string) Frequencies {
	results := make(Frequencies)

	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		results[row[0]]++
	}

	return results
}

// Client fetches single-variable extracts from the census API and keeps the
// aggregated result per field key for the life of the process. The key space
// is the handful of supplement variables the metrics consult, so the cache
// stays small even without eviction. Concurrent first requests for the same key may both fetch; the
// aggregation is pure, so the duplicate write is harmless.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger

	mu    sync.Mutex
	cache map[string]Frequencies
}

func NewClient(baseURL string, log *logrus.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        log,
		cache:      make(map[string]Frequencies),
	}
}

// FetchField returns the aggregated response counts for one survey variable,
// fetching and caching on first use. A transport failure or non-200 status
// is returned as an error and nothing is cached, so a later request retries.
func (c *Client) FetchField(ctx context.Context, fieldKey string) (Frequencies, error) {
	c.mu.Lock()
	cached, ok := c.cache[fieldKey]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	requestURL := c.baseURL + "?get=" + url.QueryEscape(fieldKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("census request for %s: %w", fieldKey, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("census request for %s: %w", fieldKey, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("census request for %s: unexpected status %d", fieldKey, resp.StatusCode)
	}

	var rows [][]string
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("census response for %s: %w", fieldKey, err)
	}

	aggregated := Aggregate(rows)

	c.mu.Lock()
	c.cache[fieldKey] = aggregated
	c.mu.Unlock()

	c.log.WithFields(logrus.Fields{
		"field": fieldKey,
		"rows":  len(rows),
	}).Info("statistics: cached census field")

	return aggregated, nil
}
