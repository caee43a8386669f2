package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"
)

const defaultCacheTTL = 15 * time.Minute

// ErrNotFound is returned when an id doesn't exist in the catalog.
var ErrNotFound = errors.New("title not found")

// Client is a catalog API client. The remote is a PostgREST-style read
// endpoint: filters are query parameters, responses are JSON row arrays.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *cache
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithCacheTTL sets the detail-lookup cache TTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = newCache(ttl)
	}
}

// NewClient creates a catalog client for the given endpoint.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: newCache(defaultCacheTTL),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AllUniverses is the filter value meaning "no universe restriction".
const AllUniverses = "all"

// List fetches catalog summaries ordered by year descending. A universe
// other than AllUniverses restricts rows to that tag; a non-empty search
// restricts titles to case-insensitive substring matches. Both filters
// compose.
func (c *Client) List(ctx context.Context, universe, search string) ([]Movie, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "year.desc")
	if universe != "" && universe != AllUniverses {
		q.Set("universe", "eq."+universe)
	}
	if search != "" {
		q.Set("title", "ilike.*"+search+"*")
	}

	var movies []Movie
	if err := c.get(ctx, "/rest/v1/movies", q, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// Get fetches a single title with its full episodic structure.
// Returns ErrNotFound for an id the catalog doesn't have.
func (c *Client) Get(ctx context.Context, id int64) (*Movie, error) {
	if m, ok := c.cache.get(id); ok {
		return m, nil
	}

	q := url.Values{}
	q.Set("select", "*")
	q.Set("id", fmt.Sprintf("eq.%d", id))

	var movies []Movie
	if err := c.get(ctx, "/rest/v1/movies", q, &movies); err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, ErrNotFound
	}

	m := &movies[0]
	c.cache.set(id, m)
	return m, nil
}

// Universes returns the distinct universe tags present in the catalog,
// sorted. The endpoint has no distinct projection, so rows are deduplicated
// here, the way the original column scan works.
func (c *Client) Universes(ctx context.Context) ([]string, error) {
	q := url.Values{}
	q.Set("select", "universe")

	var rows []struct {
		Universe string `json:"universe"`
	}
	if err := c.get(ctx, "/rest/v1/movies", q, &rows); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var universes []string
	for _, r := range rows {
		if r.Universe == "" || seen[r.Universe] {
			continue
		}
		seen[r.Universe] = true
		universes = append(universes, r.Universe)
	}
	sort.Strings(universes)
	return universes, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog API error: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
