package service

import (
	"context"
	"errors"
	"time"

	"dex_gateway/internal/domain/entity"
	"dex_gateway/internal/pkg/utils"
	"dex_gateway/internal/registry"
	"dex_gateway/pkg/metrics"

	"go.uber.org/zap"
)

var (
	// ErrInvalidToken means a requested symbol is absent from the chain's
	// registry. Client error, not retryable.
	ErrInvalidToken = errors.New("token not supported on this chain")
	// ErrInvalidAmount means amountIn is not a non-negative base-10 integer.
	ErrInvalidAmount = errors.New("amountIn must be a non-negative integer string in base units")
	// ErrPriceUnavailable means a leg's USD price resolved to 0 after every
	// fallback. Computing a quote would be meaningless, so this is a hard
	// failure — even for a zero amountIn.
	ErrPriceUnavailable = errors.New("price unavailable for token")
)

// QuoteService estimates swap outputs across the supported chains.
type QuoteService interface {
	ComputeQuote(ctx context.Context, chainID string, req entity.QuoteRequest) (entity.QuoteResult, error)
}

// quoteServiceImpl implements the QuoteService interface.
type quoteServiceImpl struct {
	prices PriceService
	logger *zap.Logger
}

// NewQuoteService creates a new instance of quoteServiceImpl.
func NewQuoteService(prices PriceService, logger *zap.Logger) QuoteService {
	return &quoteServiceImpl{
		prices: prices,
		logger: logger.Named("QuoteService"),
	}
}

// ComputeQuote implements the QuoteService interface.
//
// This is price-ratio quoting: the output is approximated from the two
// tokens' independent USD prices plus the DEX's flat fee. It does not
// simulate pool curves and therefore cannot reflect slippage or liquidity
// depth — a deliberate simplification of this system, not a shortcut to fix.
//
//	amountInHuman   = amountIn / 10^decimalsIn
//	usdValue        = amountInHuman * priceIn
//	amountOutHuman  = usdValue / priceOut * (1 - feeRate)
//	amountOut       = floor(amountOutHuman * 10^decimalsOut)
//
// Intermediate arithmetic is floating point; the final amount is floored
// into an arbitrary-precision integer string so a quote never overpays.
func (s *quoteServiceImpl) ComputeQuote(ctx context.Context, chainID string, req entity.QuoteRequest) (entity.QuoteResult, error) {
	started := time.Now()

	chain, err := registry.GetChain(chainID)
	if err != nil {
		return entity.QuoteResult{}, err
	}
	defer func() {
		metrics.QuoteDurationSeconds.WithLabelValues(chain.ID).Observe(time.Since(started).Seconds())
	}()

	tokenIn, err := registry.GetToken(chain.ID, req.TokenIn)
	if err != nil {
		metrics.QuoteRequestsTotal.WithLabelValues(chain.ID, "invalid_token").Inc()
		return entity.QuoteResult{}, ErrInvalidToken
	}
	tokenOut, err := registry.GetToken(chain.ID, req.TokenOut)
	if err != nil {
		metrics.QuoteRequestsTotal.WithLabelValues(chain.ID, "invalid_token").Inc()
		return entity.QuoteResult{}, ErrInvalidToken
	}

	amountIn, err := utils.ParseBaseUnits(req.AmountIn)
	if err != nil {
		metrics.QuoteRequestsTotal.WithLabelValues(chain.ID, "invalid_amount").Inc()
		return entity.QuoteResult{}, ErrInvalidAmount
	}

	snapshot, err := s.prices.GetPrices(ctx, chain.ID)
	if err != nil {
		return entity.QuoteResult{}, err
	}

	priceIn := snapshot.Prices[tokenIn.Symbol]
	priceOut := snapshot.Prices[tokenOut.Symbol]
	// A resolved price of 0 fails the quote regardless of amount. Zero-amount
	// requests only succeed when both legs priced.
	if priceIn.USD <= 0 || priceOut.USD <= 0 {
		s.logger.Warn("Quote rejected, price unavailable",
			zap.String("chain", chain.ID),
			zap.String("tokenIn", tokenIn.Symbol),
			zap.String("tokenOut", tokenOut.Symbol),
			zap.Float64("priceIn", priceIn.USD),
			zap.Float64("priceOut", priceOut.USD))
		metrics.QuoteRequestsTotal.WithLabelValues(chain.ID, "price_unavailable").Inc()
		return entity.QuoteResult{}, ErrPriceUnavailable
	}

	feeRate := float64(chain.SwapFeeBps) / 10000
	amountInHuman := utils.BaseUnitsToHuman(amountIn, tokenIn.Decimals)
	amountOutHuman := amountInHuman * priceIn.USD / priceOut.USD * (1 - feeRate)
	amountOut := utils.HumanToBaseUnitsFloor(amountOutHuman, tokenOut.Decimals)

	source := entity.PriceOriginFeed
	if priceIn.Origin != entity.PriceOriginFeed || priceOut.Origin != entity.PriceOriginFeed {
		source = entity.PriceOriginDefault
	}

	metrics.QuoteRequestsTotal.WithLabelValues(chain.ID, "ok").Inc()
	return entity.QuoteResult{
		AmountOut:   amountOut.String(),
		FeeBps:      chain.SwapFeeBps,
		Route:       chain.DEXName,
		DecimalsOut: tokenOut.Decimals,
		PriceSource: source,
	}, nil
}
