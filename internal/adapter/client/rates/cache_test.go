package rates

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akozyrev/storepay/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
)

func fixedRates(calls *int) FetchFunc {
	return func(ctx context.Context) ([]ExchangeRate, error) {
		*calls++
		return []ExchangeRate{
			{Source: "USDT", Target: "RUB", Rate: decimal.MustParse("81.70")},
			{Source: "TON", Target: "RUB", Rate: decimal.MustParse("245.12")},
		}, nil
	}
}

func TestCache_RateWithinTTLFetchesOnce(t *testing.T) {
	calls := 0
	c := NewCache(fixedRates(&calls))

	now := time.Unix(0, 0)
	c.now = func() time.Time { return now }

	r1, err := c.Rate(context.Background(), "USDT", "RUB")
	assert.NoError(t, err)
	assert.Equal(t, "81.70", r1.String())

	now = now.Add(10 * time.Second)
	_, err = c.Rate(context.Background(), "TON", "RUB")
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)

	now = now.Add(cacheTTL)
	_, err = c.Rate(context.Background(), "USDT", "RUB")
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestCache_InverseRate(t *testing.T) {
	calls := 0
	c := NewCache(fixedRates(&calls))

	// only USDT->RUB is published; RUB->USDT comes from the inverse
	rate, err := c.Rate(context.Background(), "RUB", "USDT")
	assert.NoError(t, err)

	amount, err := decimal.MustParse("1499").Mul(rate)
	assert.NoError(t, err)
	assert.Equal(t, "18.35", Quantize(amount, "USDT").String())
}

func TestCache_QuantizationRoundTrip(t *testing.T) {
	calls := 0
	c := NewCache(fixedRates(&calls))
	ctx := context.Background()

	price := decimal.MustParse("1499")

	asset, err := c.Convert(ctx, price, "RUB", "USDT")
	assert.NoError(t, err)
	asset = Quantize(asset, "USDT")

	back, err := c.Convert(ctx, asset, "USDT", "RUB")
	assert.NoError(t, err)

	// one quantization unit of the asset, expressed in rubles
	unit, err := decimal.MustParse("0.01").Mul(decimal.MustParse("81.70"))
	assert.NoError(t, err)
	diff, err := back.Sub(price)
	assert.NoError(t, err)
	assert.LessOrEqual(t, diff.Abs().Cmp(unit), 0,
		"round trip drifted by %s rubles", diff.Abs())
}

func TestCache_RateIsCaseInsensitive(t *testing.T) {
	calls := 0
	c := NewCache(fixedRates(&calls))

	rate, err := c.Rate(context.Background(), "usdt", "rub")
	assert.NoError(t, err)
	assert.Equal(t, "81.70", rate.String())
}

func TestCache_UnknownPair(t *testing.T) {
	calls := 0
	c := NewCache(fixedRates(&calls))

	_, err := c.Rate(context.Background(), "BTC", "RUB")
	assert.ErrorIs(t, err, domain.ErrRateUnavailable)
}

func TestCache_FetchFailure(t *testing.T) {
	c := NewCache(func(ctx context.Context) ([]ExchangeRate, error) {
		return nil, errors.New("upstream down")
	})

	_, err := c.Rate(context.Background(), "USDT", "RUB")
	assert.Error(t, err)
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		asset  string
		exp    string
	}{
		{"half rounds up", "18.345", "USDT", "18.35"},
		{"below half rounds down", "18.344", "USDT", "18.34"},
		{"ton two places", "6.115", "TON", "6.12"},
		{"fallback six places", "0.0000005", "BTC", "0.000001"},
		{"exact amount unchanged", "18.34", "USDT", "18.34"},
		{"lowercase asset name", "18.345", "usdt", "18.35"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Quantize(decimal.MustParse(test.amount), test.asset)
			assert.Equal(t, test.exp, got.String())
		})
	}
}
