package service

import (
	"context"
	"sort"

	"dex_gateway/internal/client"
	"dex_gateway/internal/domain/entity"
	"dex_gateway/internal/registry"
	"dex_gateway/pkg/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PriceService resolves USD prices for a chain's token registry.
type PriceService interface {
	// GetPrices fetches a fresh snapshot for one chain. A price feed outage
	// is not an error: every symbol degrades to its static default (or 0).
	// The only error is an unknown chain id.
	GetPrices(ctx context.Context, chainID string) (entity.PriceSnapshot, error)
	// SnapshotAll fetches snapshots for every registered chain concurrently.
	// Advisory (startup warmup); per-chain failures degrade as in GetPrices.
	SnapshotAll(ctx context.Context) map[string]entity.PriceSnapshot
}

// priceServiceImpl implements the PriceService interface.
type priceServiceImpl struct {
	feed   client.PriceFeedClient
	logger *zap.Logger
}

// NewPriceService creates a new instance of priceServiceImpl.
func NewPriceService(feed client.PriceFeedClient, logger *zap.Logger) PriceService {
	return &priceServiceImpl{
		feed:   feed,
		logger: logger.Named("PriceService"),
	}
}

// GetPrices implements the PriceService interface. Snapshots are fetched
// fresh on every call; the absence of a cache here is a deliberate
// latency/cost tradeoff, not an oversight.
func (s *priceServiceImpl) GetPrices(ctx context.Context, chainID string) (entity.PriceSnapshot, error) {
	chain, err := registry.GetChain(chainID)
	if err != nil {
		return entity.PriceSnapshot{}, err
	}
	tokens, err := registry.GetAllTokens(chain.ID)
	if err != nil {
		return entity.PriceSnapshot{}, err
	}

	// Distinct feed ids only: the wrapped native and the native token share
	// one id, and the feed must see each id once per batch.
	idSet := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if tok.FeedID != "" {
			idSet[tok.FeedID] = struct{}{}
		}
	}
	feedIDs := make([]string, 0, len(idSet))
	for id := range idSet {
		feedIDs = append(feedIDs, id)
	}
	sort.Strings(feedIDs)

	feedPrices, feedErr := s.feed.GetUSDPrices(ctx, feedIDs)
	if feedErr != nil {
		// Degrade, do not retry: every symbol falls through to the static
		// default table (or 0).
		s.logger.Warn("Price feed unavailable, serving static defaults",
			zap.String("chain", chain.ID),
			zap.Error(feedErr))
		metrics.PriceFeedFailuresTotal.WithLabelValues(chain.ID).Inc()
		feedPrices = nil
	}

	snapshot := entity.PriceSnapshot{
		ChainID: chain.ID,
		Prices:  make(map[string]entity.TokenPrice, len(tokens)),
	}
	for sym, tok := range tokens {
		snapshot.Prices[sym] = resolvePrice(tok.FeedID, feedPrices)
	}
	return snapshot, nil
}

// resolvePrice applies the fallback order: live feed, static default, zero.
func resolvePrice(feedID string, feedPrices map[string]float64) entity.TokenPrice {
	if feedID != "" {
		if usd, ok := feedPrices[feedID]; ok && usd > 0 {
			return entity.TokenPrice{USD: usd, Origin: entity.PriceOriginFeed}
		}
		if usd, ok := registry.DefaultPrice(feedID); ok {
			return entity.TokenPrice{USD: usd, Origin: entity.PriceOriginDefault}
		}
	}
	return entity.TokenPrice{USD: 0, Origin: entity.PriceOriginNone}
}

// SnapshotAll implements the PriceService interface. Chains share no state,
// so their batched lookups fan out in parallel.
func (s *priceServiceImpl) SnapshotAll(ctx context.Context) map[string]entity.PriceSnapshot {
	chains := registry.Chains()
	snapshots := make([]entity.PriceSnapshot, len(chains))

	g, gctx := errgroup.WithContext(ctx)
	for i, chain := range chains {
		g.Go(func() error {
			snap, err := s.GetPrices(gctx, chain.ID)
			if err != nil {
				return err
			}
			snapshots[i] = snap
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// Only unknown-chain errors reach here, which cannot happen when
		// iterating the registry itself.
		s.logger.Error("Snapshot fan-out failed", zap.Error(err))
	}

	out := make(map[string]entity.PriceSnapshot, len(snapshots))
	for _, snap := range snapshots {
		if snap.ChainID != "" {
			out[snap.ChainID] = snap
		}
	}
	return out
}
