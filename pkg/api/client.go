package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"algoway/pkg/cache"
	"algoway/pkg/route"
)

// DefaultBaseURL is where the route service listens in a local setup
const DefaultBaseURL = "http://127.0.0.1:8000"

// Options configures a Client. Zero values are usable: no timeout, no throttling, no cache.
type Options struct {
	BaseURL string
	Timeout time.Duration

	// RequestsPerSecond <= 0 disables throttling
	RequestsPerSecond float64
	Burst             int

	Cache  cache.Cache
	Logger *logrus.Logger
}

// Client talks to the AlgoWay route service
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	cache      cache.Cache
	logger     *logrus.Logger
}

func NewClient(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	c := opts.Cache
	if c == nil {
		c = cache.NewNoOpCache()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}

	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		baseURL:    baseURL,
		limiter:    limiter,
		cache:      c,
		logger:     logger,
	}
}

// Query is a single route search
type Query struct {
	From    route.City
	To      route.City
	Sort    route.SortCriterion
	Filters route.FilterSet
}

// Params returns the query string parameters for the search endpoint
func (q Query) Params() map[string]string {
	params := q.Filters.Params()
	params["from_city"] = string(q.From)
	params["to_city"] = string(q.To)
	return params
}

// FetchCities returns the catalog of city names known to the service
func (c *Client) FetchCities(ctx context.Context) ([]route.City, error) {
	const key = "cities"

	body, hit := c.cache.Get(ctx, key)
	if !hit {
		var err error
		body, err = c.get(ctx, "/api/cities/", nil)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch cities: %w", err)
		}
	}

	var cities []route.City
	if err := json.Unmarshal(body, &cities); err != nil {
		return nil, fmt.Errorf("failed to decode cities JSON: %w", err)
	}

	if !hit {
		c.remember(ctx, key, body)
	}

	return cities, nil
}

// FetchRoutes asks the service for routes ranked by q.Sort.
// An empty slice with a nil error means the service found nothing.
func (c *Client) FetchRoutes(ctx context.Context, q Query) ([]route.Route, error) {
	params := q.Params()
	key := cache.Key("routes:"+string(q.Sort), params)

	body, hit := c.cache.Get(ctx, key)
	if !hit {
		var err error
		body, err = c.get(ctx, fmt.Sprintf("/api/routes/%s/", q.Sort), params)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch routes: %w", err)
		}
	}

	var routes []route.Route
	if err := json.Unmarshal(body, &routes); err != nil {
		return nil, fmt.Errorf("failed to decode routes JSON: %w", err)
	}

	for i, r := range routes {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("route %d: %w", i+1, err)
		}
	}

	if routes == nil {
		routes = []route.Route{}
	}

	if !hit {
		c.remember(ctx, key, body)
	}

	return routes, nil
}

// get issues a GET request and returns the body of a 200 response
func (c *Client) get(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "algoway/1.0")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	c.logger.WithFields(logrus.Fields{
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	}).Debug("route service responded")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

func (c *Client) remember(ctx context.Context, key string, body []byte) {
	if err := c.cache.Set(ctx, key, body); err != nil {
		c.logger.WithFields(logrus.Fields{
			"key":   key,
			"error": err,
		}).Warn("failed to cache response")
	}
}
