package service

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"dex_gateway/internal/domain/entity"
	"dex_gateway/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newQuoteService(feed *stubFeed) QuoteService {
	logger := zap.NewNop()
	return NewQuoteService(NewPriceService(feed, logger), logger)
}

// 1 BNB at the static defaults (BNB 600, USDT 1) through PancakeSwap's 0.25%
// fee: 600 * 0.9975 = 598.5 USDT, scaled to BSC USDT's 18 decimals.
func TestComputeQuoteStaticDefaults(t *testing.T) {
	svc := newQuoteService(&stubFeed{err: errors.New("feed down")})

	res, err := svc.ComputeQuote(context.Background(), "bsc", entity.QuoteRequest{
		TokenIn:  "BNB",
		TokenOut: "USDT",
		AmountIn: "1000000000000000000",
	})
	require.NoError(t, err)
	assert.Equal(t, "598500000000000000000", res.AmountOut)
	assert.Equal(t, 25, res.FeeBps)
	assert.Equal(t, "PancakeSwap V2", res.Route)
	assert.Equal(t, uint8(18), res.DecimalsOut)
	assert.Equal(t, entity.PriceOriginDefault, res.PriceSource)
}

func TestComputeQuoteLiveFeed(t *testing.T) {
	svc := newQuoteService(&stubFeed{prices: map[string]float64{
		"ethereum": 2000,
		"usd-coin": 1,
	}})

	// 2 ETH at $2000 through the 0.30% tier: 4000 * 0.997 = 3988 USDC.
	res, err := svc.ComputeQuote(context.Background(), "ethereum", entity.QuoteRequest{
		TokenIn:  "ETH",
		TokenOut: "USDC",
		AmountIn: "2000000000000000000",
	})
	require.NoError(t, err)
	assert.Equal(t, "3988000000", res.AmountOut)
	assert.Equal(t, entity.PriceOriginFeed, res.PriceSource)
	assert.Equal(t, uint8(6), res.DecimalsOut)
}

// When either leg resolves through the default table the whole quote is
// labeled default, even if the other leg came from the live feed.
func TestComputeQuoteMixedOriginLabeledDefault(t *testing.T) {
	svc := newQuoteService(&stubFeed{prices: map[string]float64{
		"ethereum": 2000,
		// usd-coin missing from the feed; it resolves via the default table.
	}})

	res, err := svc.ComputeQuote(context.Background(), "ethereum", entity.QuoteRequest{
		TokenIn:  "ETH",
		TokenOut: "USDC",
		AmountIn: "1000000000000000000",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PriceOriginDefault, res.PriceSource)
}

// Same-token quotes are allowed; the fee still applies.
func TestComputeQuoteSameToken(t *testing.T) {
	svc := newQuoteService(&stubFeed{err: errors.New("feed down")})

	res, err := svc.ComputeQuote(context.Background(), "ethereum", entity.QuoteRequest{
		TokenIn:  "USDC",
		TokenOut: "USDC",
		AmountIn: "1000000000",
	})
	require.NoError(t, err)
	// 1000 USDC minus the 0.30% tier.
	assert.Equal(t, "997000000", res.AmountOut)
}

func TestComputeQuoteZeroAmountBothPriced(t *testing.T) {
	svc := newQuoteService(&stubFeed{err: errors.New("feed down")})

	res, err := svc.ComputeQuote(context.Background(), "bsc", entity.QuoteRequest{
		TokenIn:  "BNB",
		TokenOut: "USDT",
		AmountIn: "0",
	})
	require.NoError(t, err)
	assert.Equal(t, "0", res.AmountOut)
}

// A zero-priced leg fails the quote even for a zero amount: the fee and route
// metadata would be attached to a price we do not have.
func TestComputeQuoteZeroAmountUnpricedLegFails(t *testing.T) {
	// JOE has no static default; with the feed down it resolves to 0.
	svc := newQuoteService(&stubFeed{err: errors.New("feed down")})

	_, err := svc.ComputeQuote(context.Background(), "avalanche", entity.QuoteRequest{
		TokenIn:  "JOE",
		TokenOut: "USDC",
		AmountIn: "0",
	})
	assert.ErrorIs(t, err, ErrPriceUnavailable)
}

func TestComputeQuotePriceUnavailable(t *testing.T) {
	svc := newQuoteService(&stubFeed{err: errors.New("feed down")})

	_, err := svc.ComputeQuote(context.Background(), "avalanche", entity.QuoteRequest{
		TokenIn:  "AVAX",
		TokenOut: "JOE",
		AmountIn: "1000000000000000000",
	})
	assert.ErrorIs(t, err, ErrPriceUnavailable)
}

func TestComputeQuoteValidation(t *testing.T) {
	svc := newQuoteService(&stubFeed{err: errors.New("feed down")})
	ctx := context.Background()

	_, err := svc.ComputeQuote(ctx, "nope", entity.QuoteRequest{TokenIn: "ETH", TokenOut: "USDC", AmountIn: "1"})
	assert.ErrorIs(t, err, registry.ErrChainNotFound)

	_, err = svc.ComputeQuote(ctx, "ethereum", entity.QuoteRequest{TokenIn: "DOGE", TokenOut: "USDC", AmountIn: "1"})
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ComputeQuote(ctx, "ethereum", entity.QuoteRequest{TokenIn: "ETH", TokenOut: "DOGE", AmountIn: "1"})
	assert.ErrorIs(t, err, ErrInvalidToken)

	for _, bad := range []string{"", "-1", "1.5", "0x10", "abc"} {
		_, err = svc.ComputeQuote(ctx, "ethereum", entity.QuoteRequest{TokenIn: "ETH", TokenOut: "USDC", AmountIn: bad})
		assert.ErrorIs(t, err, ErrInvalidAmount, "amountIn=%q", bad)
	}
}

// Doubling the input must (within float rounding) double the output. The
// floor step may shave base units but never adds them.
func TestComputeQuoteScalesLinearly(t *testing.T) {
	svc := newQuoteService(&stubFeed{err: errors.New("feed down")})
	ctx := context.Background()

	one, err := svc.ComputeQuote(ctx, "bsc", entity.QuoteRequest{TokenIn: "BNB", TokenOut: "USDT", AmountIn: "1000000000000000000"})
	require.NoError(t, err)
	two, err := svc.ComputeQuote(ctx, "bsc", entity.QuoteRequest{TokenIn: "BNB", TokenOut: "USDT", AmountIn: "2000000000000000000"})
	require.NoError(t, err)

	oneOut, ok := new(big.Int).SetString(one.AmountOut, 10)
	require.True(t, ok)
	twoOut, ok := new(big.Int).SetString(two.AmountOut, 10)
	require.True(t, ok)

	doubled := new(big.Int).Mul(oneOut, big.NewInt(2))
	diff := new(big.Int).Abs(new(big.Int).Sub(doubled, twoOut))
	assert.True(t, diff.Cmp(big.NewInt(1000)) < 0, "2x(%s) vs %s differ by %s", oneOut, twoOut, diff)
}
