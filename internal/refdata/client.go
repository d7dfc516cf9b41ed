// Package refdata fetches reference data (currencies, tourist places,
// activities, travel modes) from the hosted content-management backend.
package refdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/mmynk/tripsplit/internal/cache"
)

// Collection names on the CMS.
const (
	CollectionCurrencies          = "currencies"
	CollectionTouristPlaces       = "touristplaces"
	CollectionAdventureActivities = "adventureactivities"
	CollectionTravelModes         = "travelmodes"
)

const defaultTimeout = 10 * time.Second

var ErrUnexpectedStatus = errors.New("unexpected status from CMS")

// listResponse is the envelope returned for every collection.
type listResponse struct {
	Items json.RawMessage `json:"items"`
}

// Client reads collections from the CMS. Concurrent requests for the same
// collection share one fetch, and results are cached for a TTL.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *cache.LRU[json.RawMessage]
	flights    singleflight.Group
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithCacheTTL caches fetched collections for ttl. Zero disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl > 0 {
			c.cache = cache.NewLRU[json.RawMessage](16, ttl)
		} else {
			c.cache = nil
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a client for the CMS at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		cache:      cache.NewLRU[json.RawMessage](16, 5*time.Minute),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchAll returns every item of the named collection decoded as T.
func FetchAll[T any](ctx context.Context, c *Client, collection string) ([]T, error) {
	raw, err := c.items(ctx, collection)
	if err != nil {
		return nil, err
	}
	var items []T
	if len(raw) == 0 || string(raw) == "null" {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", collection, err)
	}
	return items, nil
}

// Invalidate drops the cached copy of collection.
func (c *Client) Invalidate(collection string) {
	if c.cache != nil {
		c.cache.Delete(collection)
	}
}

func (c *Client) items(ctx context.Context, collection string) (json.RawMessage, error) {
	if c.cache != nil {
		if raw, ok := c.cache.Get(collection); ok {
			return raw, nil
		}
	}

	// Waiters share one fetch; it must outlive the caller that started it.
	v, err, _ := c.flights.Do(collection, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout())
		defer cancel()
		raw, err := c.fetch(fetchCtx, collection)
		if err != nil {
			return nil, err
		}
		if c.cache != nil {
			c.cache.Set(collection, raw)
		}
		return raw, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(json.RawMessage), nil
}

func (c *Client) fetchTimeout() time.Duration {
	if c.httpClient.Timeout > 0 {
		return c.httpClient.Timeout
	}
	return defaultTimeout
}

func (c *Client) fetch(ctx context.Context, collection string) (json.RawMessage, error) {
	endpoint := c.baseURL + "/collections/" + url.PathEscape(collection) + "/items"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", collection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, collection, resp.StatusCode)
	}

	var body listResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", collection, err)
	}

	c.logger.Debug("Fetched reference data",
		"collection", collection,
		"bytes", len(body.Items),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return body.Items, nil
}
