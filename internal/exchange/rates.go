package exchange

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library

	"debt_tracker/internal/domain"
	"debt_tracker/internal/utils"
)

// Rates maps a currency code to its rate into the base currency
type Rates map[domain.Currency]float64

// DefaultFallbackRates are approximate TRY rates used whenever the external
// source cannot be reached.
func DefaultFallbackRates() Rates {
	return Rates{
		domain.CurrencyTRY: 1.0,
		domain.CurrencyUSD: 34.0,
		domain.CurrencyEUR: 37.0,
	}
}

// Normalizer converts amounts into the base currency. Rate lookups go through
// a short-lived Redis cache, then the external API, then the fallback table;
// a conversion never fails.
type Normalizer struct {
	base     domain.Currency
	fallback Rates
	apiURL   string
	client   *http.Client
	rdb      *redis.Client // optional; nil disables the cache
	cacheTTL time.Duration
}

// NewNormalizer builds a Normalizer. rdb may be nil to disable caching;
// timeout bounds each rate fetch.
func NewNormalizer(base domain.Currency, fallback Rates, apiURL string, timeout time.Duration, rdb *redis.Client, cacheTTL time.Duration) *Normalizer {
	return &Normalizer{
		base:     base,
		fallback: fallback,
		apiURL:   apiURL,
		client:   &http.Client{Timeout: timeout},
		rdb:      rdb,
		cacheTTL: cacheTTL,
	}
}

// ToBase converts amount from the given currency into the base currency.
// The base currency converts at exactly 1.0 without touching the network;
// unknown codes also convert at 1.0.
func (n *Normalizer) ToBase(ctx context.Context, amount float64, currency domain.Currency) float64 {
	if currency == n.base {
		return amount
	}
	rates := n.rates(ctx)
	rate, ok := rates[currency]
	if !ok {
		rate = 1.0
	}
	return amount * rate
}

// rates returns the current rate table, consulting the cache first. A cached
// table is at most cacheTTL old.
func (n *Normalizer) rates(ctx context.Context) Rates {
	cacheKey := "rates:base:" + string(n.base)
	if n.rdb != nil {
		var cached Rates
		if found, err := utils.GetCache(ctx, n.rdb, cacheKey, &cached); err == nil && found {
			return cached
		}
	}
	fetched, err := n.fetch(ctx)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"base":  n.base,
			"error": err.Error(),
		}).Warn("Exchange rate fetch failed, using fallback rates")
		return n.fallback
	}
	if n.rdb != nil {
		_ = utils.SetCache(ctx, n.rdb, cacheKey, fetched, n.cacheTTL)
	}
	return fetched
}

// ratesResponse is the shape of the external API payload: units of each
// currency per one unit of the base.
type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// fetch obtains a fresh rate table from the external API and inverts it into
// rate-to-base form for the supported currencies.
func (n *Normalizer) fetch(ctx context.Context) (Rates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.apiURL+"/latest/"+string(n.base), nil)
	if err != nil {
		return nil, err
	}
	resp, err := n.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &unexpectedStatusError{code: resp.StatusCode}
	}
	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	out := Rates{n.base: 1.0}
	for _, c := range []domain.Currency{domain.CurrencyTRY, domain.CurrencyUSD, domain.CurrencyEUR} {
		if c == n.base {
			continue
		}
		perBase, ok := body.Rates[string(c)]
		if !ok || perBase <= 0 {
			return nil, &unexpectedShapeError{currency: c}
		}
		out[c] = 1.0 / perBase
	}
	return out, nil
}

type unexpectedStatusError struct{ code int }

func (e *unexpectedStatusError) Error() string {
	return "unexpected status " + http.StatusText(e.code) + " from rate source"
}

type unexpectedShapeError struct{ currency domain.Currency }

func (e *unexpectedShapeError) Error() string {
	return "rate source response missing rate for " + string(e.currency)
}
