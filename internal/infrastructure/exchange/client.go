// Package exchange fetches the USD to INR conversion rate from a public API,
// caching it so the dashboard never hammers the provider and falling back to a
// configured static rate when the provider is unreachable.
package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/interiorhq/interman-api/pkg/config"
)

// Sources reported alongside a rate.
const (
	SourceLive     = "live"
	SourceCache    = "cache"
	SourceFallback = "fallback"
)

// cacheTTL is how long a fetched rate stays fresh. Daily granularity is plenty
// for the dashboard's indicative conversion.
const cacheTTL = 24 * time.Hour

// Rate is a USD->INR conversion rate and where it came from.
type Rate struct {
	INRPerUSD decimal.Decimal
	Source    string
	FetchedAt time.Time
}

// Client fetches and caches the rate.
type Client struct {
	apiURL   string
	fallback decimal.Decimal
	http     *http.Client

	mu     sync.Mutex
	cached *Rate
}

// NewClient builds the rate client from configuration. A malformed fallback
// rate in config degrades to 83.0 rather than failing startup.
func NewClient(cfg config.ExchangeConfig) *Client {
	fallback, err := decimal.NewFromString(cfg.FallbackRate)
	if err != nil || fallback.LessThanOrEqual(decimal.Zero) {
		fallback = decimal.NewFromFloat(83.0)
	}
	return &Client{
		apiURL:   cfg.APIURL,
		fallback: fallback,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

type apiResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

// Get returns the current rate. Order of preference: fresh cache, live fetch,
// stale cache, configured fallback. It never returns an error; the caller
// always gets a usable rate.
func (c *Client) Get(ctx context.Context) Rate {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if c.cached != nil && now.Sub(c.cached.FetchedAt) < cacheTTL {
		return Rate{INRPerUSD: c.cached.INRPerUSD, Source: SourceCache, FetchedAt: c.cached.FetchedAt}
	}

	rate, err := c.fetch(ctx)
	if err == nil {
		c.cached = &Rate{INRPerUSD: rate, Source: SourceLive, FetchedAt: now}
		return *c.cached
	}

	// Stale beats static: an expired cached rate is still closer to reality
	// than the configured constant.
	if c.cached != nil {
		return Rate{INRPerUSD: c.cached.INRPerUSD, Source: SourceCache, FetchedAt: c.cached.FetchedAt}
	}
	return Rate{INRPerUSD: c.fallback, Source: SourceFallback, FetchedAt: now}
}

func (c *Client) fetch(ctx context.Context) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("build rate request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("fetch rate: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("fetch rate: status %d", resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("decode rate response: %w", err)
	}
	if body.Result != "success" {
		return decimal.Zero, fmt.Errorf("rate API result %q", body.Result)
	}
	inr, ok := body.Rates["INR"]
	if !ok || inr <= 0 {
		return decimal.Zero, fmt.Errorf("rate API returned no INR rate")
	}
	return decimal.NewFromFloat(inr), nil
}
