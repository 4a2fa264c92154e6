package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Client fetches interpreter payloads over HTTP, optionally backed by
// a SQLite response cache. The endpoint can also be a local file path
// containing a saved response, in which case the query is ignored.
type Client struct {
	endpoint    string
	isLocalFile bool
	httpClient  *http.Client
	cache       *Cache
	logger      *slog.Logger
}

// NewClient creates a client for the given config. Callers own the
// returned client and must Close it to release the cache.
func NewClient(config Config, logger *slog.Logger) (*Client, error) {
	isLocalFile := !strings.HasPrefix(config.APIEndpoint, "http://") && !strings.HasPrefix(config.APIEndpoint, "https://")

	client := &Client{
		endpoint:    config.APIEndpoint,
		isLocalFile: isLocalFile,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutMS) * time.Millisecond,
		},
		logger: logger,
	}

	if config.CachePath != "" && !isLocalFile {
		cache, err := OpenCache(config.CachePath)
		if err != nil {
			return nil, fmt.Errorf("opening response cache: %w", err)
		}
		client.cache = cache
	}

	return client, nil
}

func (c *Client) Close() error {
	if c.cache != nil {
		return c.cache.Close()
	}
	return nil
}

// Fetch runs an Overpass QL query and decodes the response payload.
// A non-200 status is fatal to the run; there is no retry.
func (c *Client) Fetch(ctx context.Context, query string) (*Payload, error) {
	if c.isLocalFile {
		data, err := os.ReadFile(c.endpoint)
		if err != nil {
			return nil, fmt.Errorf("reading payload file %s: %w", c.endpoint, err)
		}
		return decodePayload(data)
	}

	if c.cache != nil {
		if body, ok := c.cache.Get(query); ok {
			c.logger.Info("overpass cache hit", "endpoint", c.endpoint)
			return decodePayload(body)
		}
	}

	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", c.endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Put(query, body); err != nil {
			c.logger.Warn("failed to cache overpass response", "error", err)
		}
	}

	return decodePayload(body)
}

func decodePayload(data []byte) (*Payload, error) {
	var payload Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decoding overpass payload: %w", err)
	}
	return &payload, nil
}
