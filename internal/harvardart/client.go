package harvardart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the public object search endpoint.
const DefaultBaseURL = "https://api.harvardartmuseums.org"

// DefaultBatchSize is how many candidate records one search requests.
const DefaultBatchSize = 50

// ErrMissingAPIKey is returned before any network I/O when the client has no
// API key configured.
var ErrMissingAPIKey = errors.New("missing catalog API key (set HARVARD_ART_API_KEY)")

// Client is a catalog API client for the object search endpoint.
type Client struct {
	BaseURL    string
	APIKey     string
	httpClient *http.Client
}

// NewClient creates a new catalog client. An empty baseURL selects the
// public endpoint.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SearchObjects fetches up to size random candidate records, restricted to
// records that carry an image. The raw batch may be empty; that is not an
// error at this layer.
func (c *Client) SearchObjects(ctx context.Context, size int) ([]ObjectRecord, error) {
	if c.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if size <= 0 {
		size = DefaultBatchSize
	}

	params := url.Values{}
	params.Set("apikey", c.APIKey)
	params.Set("hasimage", "1")
	params.Set("sort", "random")
	params.Set("size", strconv.Itoa(size))
	searchURL := fmt.Sprintf("%s/object?%s", c.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("catalog API returned status %d: %s", resp.StatusCode, string(body))
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	return searchResp.Records, nil
}
