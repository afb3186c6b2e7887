// Package rates caches provider exchange rates and converts reference-currency
// prices into settlement-asset amounts.
package rates

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/akozyrev/storepay/internal/core/domain"
	"github.com/govalues/decimal"
)

const cacheTTL = 30 * time.Second

type ExchangeRate struct {
	Source string
	Target string
	Rate   decimal.Decimal
}

// FetchFunc pulls fresh rates from the upstream provider.
type FetchFunc func(ctx context.Context) ([]ExchangeRate, error)

type pair struct {
	source string
	target string
}

// Cache refreshes lazily under a mutex so concurrent conversions within the
// TTL window share one upstream fetch.
type Cache struct {
	fetch FetchFunc

	mu       sync.Mutex
	rates    map[pair]decimal.Decimal
	cachedAt time.Time
	now      func() time.Time
}

func NewCache(fetch FetchFunc) *Cache {
	return &Cache{
		fetch: fetch,
		rates: make(map[pair]decimal.Decimal),
		now:   time.Now,
	}
}

// Rate returns how much of target one unit of source buys. When no direct
// rate is known the inverse one is used. Asset names are case-insensitive.
func (c *Cache) Rate(ctx context.Context, source, target string) (decimal.Decimal, error) {
	source = strings.ToUpper(source)
	target = strings.ToUpper(target)

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.rates) == 0 || c.now().Sub(c.cachedAt) > cacheTTL {
		if err := c.refresh(ctx); err != nil {
			return decimal.Decimal{}, err
		}
	}

	if rate, ok := c.rates[pair{source, target}]; ok {
		return rate, nil
	}

	if inverse, ok := c.rates[pair{target, source}]; ok && !inverse.IsZero() {
		rate, err := decimal.One.Quo(inverse)
		if err != nil {
			return decimal.Decimal{}, err
		}
		return rate, nil
	}

	return decimal.Decimal{}, fmt.Errorf("%s->%s: %w", source, target, domain.ErrRateUnavailable)
}

// Convert multiplies amount by the source->target rate.
func (c *Cache) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	rate, err := c.Rate(ctx, from, to)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return amount.Mul(rate)
}

func (c *Cache) refresh(ctx context.Context) error {
	list, err := c.fetch(ctx)
	if err != nil {
		return fmt.Errorf("refreshing rates: %w", err)
	}

	fresh := make(map[pair]decimal.Decimal, len(list))
	for _, r := range list {
		fresh[pair{strings.ToUpper(r.Source), strings.ToUpper(r.Target)}] = r.Rate
	}

	c.rates = fresh
	c.cachedAt = c.now()

	return nil
}

// Quantize rounds half-up to the asset's minimal tradeable unit: two decimal
// places for the assets in use, six as the fallback for unrecognized ones.
func Quantize(amount decimal.Decimal, asset string) decimal.Decimal {
	scale := 6
	switch strings.ToUpper(asset) {
	case "TON", "USDT":
		scale = 2
	}

	// round-half-up at the scale: add half a unit, then truncate
	half := decimal.MustNew(5, scale+1)
	shifted, err := amount.Add(half)
	if err != nil {
		return amount.Trunc(scale)
	}

	return shifted.Trunc(scale)
}
