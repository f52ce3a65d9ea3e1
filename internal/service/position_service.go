package service

import (
	"context"
	"errors"
	"strconv"

	"dex_gateway/internal/client"
	"dex_gateway/internal/domain/entity"
	wire "dex_gateway/internal/entity"
	"dex_gateway/internal/pkg/utils"
	"dex_gateway/internal/registry"
	"dex_gateway/pkg/metrics"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	// ErrUnsupportedChain means the chain has neither an NFT position
	// manager integration nor an aggregation source configured here.
	ErrUnsupportedChain = errors.New("positions not available for this chain")
	// ErrInvalidAddress means the wallet address fails the chain's format.
	ErrInvalidAddress = errors.New("invalid wallet address")
)

// genericTokenIcon is the placeholder used when a source omits a token image.
const genericTokenIcon = "/icons/token-generic.svg"

// PositionService assembles normalized position lists for chains without a
// standard NFT position manager, from chain-specific external indexes.
type PositionService interface {
	// GetPositions returns the wallet's positions (or, on simple-LP chains,
	// the full pool list). Upstream failures never surface as errors: the
	// result degrades to an empty list with PositionList.Err set. The only
	// errors are unknown/unsupported chains and malformed addresses.
	GetPositions(ctx context.Context, chainID, walletAddress string) (entity.PositionList, error)
}

// positionSource is one attempt in a chain's fallback chain. Sources are
// tried in order; the first one that yields data wins. Keeping the order as
// data makes the degradation path testable instead of buried in try/catch.
type positionSource struct {
	name  string
	fetch func(ctx context.Context, walletAddress string) ([]entity.Position, error)
}

// positionServiceImpl implements the PositionService interface.
type positionServiceImpl struct {
	subgraph client.BinSubgraphClient
	backend  client.DEXBackendClient
	pools    client.PoolsAPIClient
	logger   *zap.Logger
}

// NewPositionService creates a new instance of positionServiceImpl.
func NewPositionService(
	subgraph client.BinSubgraphClient,
	backend client.DEXBackendClient,
	pools client.PoolsAPIClient,
	logger *zap.Logger,
) PositionService {
	return &positionServiceImpl{
		subgraph: subgraph,
		backend:  backend,
		pools:    pools,
		logger:   logger.Named("PositionService"),
	}
}

// GetPositions implements the PositionService interface.
func (s *positionServiceImpl) GetPositions(ctx context.Context, chainID, walletAddress string) (entity.PositionList, error) {
	chain, err := registry.GetChain(chainID)
	if err != nil {
		return entity.PositionList{}, err
	}
	if chain.EVM && !common.IsHexAddress(walletAddress) {
		return entity.PositionList{}, ErrInvalidAddress
	}

	switch chain.ID {
	case "avalanche":
		// Bin-based: wallet-scoped subgraph first, the DEX's own REST
		// backend second.
		sources := []positionSource{
			{name: "subgraph", fetch: s.fetchBinPositionsFromSubgraph},
			{name: "rest", fetch: s.fetchBinPositionsFromBackend},
		}
		return s.runFallbackChain(ctx, chain, sources, walletAddress), nil
	case "neo":
		// Simple-LP: no wallet-scoped query exists. Return the public pool
		// list and let the caller reconcile LP-token holdings.
		return s.fetchPoolList(ctx, chain), nil
	default:
		return entity.PositionList{}, ErrUnsupportedChain
	}
}

// runFallbackChain tries each source in order and returns the first
// non-empty result. Errors and empty answers both advance the chain; if
// nothing succeeded at all, the result carries a degradation notice instead
// of an error.
func (s *positionServiceImpl) runFallbackChain(ctx context.Context, chain entity.ChainDescriptor, sources []positionSource, walletAddress string) entity.PositionList {
	anySucceeded := false
	for _, src := range sources {
		positions, err := src.fetch(ctx, walletAddress)
		if err != nil {
			s.logger.Warn("Position source failed, trying next",
				zap.String("chain", chain.ID),
				zap.String("source", src.name),
				zap.Error(err))
			metrics.PositionSourceAttemptsTotal.WithLabelValues(chain.ID, src.name, "error").Inc()
			continue
		}
		if len(positions) == 0 {
			metrics.PositionSourceAttemptsTotal.WithLabelValues(chain.ID, src.name, "empty").Inc()
			anySucceeded = true
			continue
		}
		metrics.PositionSourceAttemptsTotal.WithLabelValues(chain.ID, src.name, "ok").Inc()
		return entity.PositionList{Positions: positions, Source: src.name}
	}

	if anySucceeded {
		// At least one source answered; the wallet simply has no positions.
		return entity.PositionList{Positions: []entity.Position{}}
	}
	return entity.PositionList{
		Positions: []entity.Position{},
		Err:       "all position data sources are currently unavailable",
	}
}

func (s *positionServiceImpl) fetchBinPositionsFromSubgraph(ctx context.Context, walletAddress string) ([]entity.Position, error) {
	bins, err := s.subgraph.GetUserBinLiquidities(ctx, walletAddress)
	if err != nil {
		return nil, err
	}
	positions := make([]entity.Position, 0, len(bins))
	for _, bin := range bins {
		positions = append(positions, normalizeSubgraphBin(bin))
	}
	return positions, nil
}

func (s *positionServiceImpl) fetchBinPositionsFromBackend(ctx context.Context, walletAddress string) ([]entity.Position, error) {
	raw, err := s.backend.GetUserPositions(ctx, walletAddress)
	if err != nil {
		return nil, err
	}
	positions := make([]entity.Position, 0, len(raw))
	for _, p := range raw {
		// The REST backend keeps historical entries around; drop anything
		// the wallet no longer holds.
		balance, err := utils.ParseBaseUnits(p.Balance)
		if err != nil || balance.Sign() == 0 {
			continue
		}
		positions = append(positions, normalizeBackendPosition(p))
	}
	return positions, nil
}

func (s *positionServiceImpl) fetchPoolList(ctx context.Context, chain entity.ChainDescriptor) entity.PositionList {
	raw, err := s.pools.GetPools(ctx)
	if err != nil {
		s.logger.Warn("Pools API failed",
			zap.String("chain", chain.ID),
			zap.Error(err))
		metrics.PositionSourceAttemptsTotal.WithLabelValues(chain.ID, "pools", "error").Inc()
		return entity.PositionList{
			Positions: []entity.Position{},
			Err:       "pool list is currently unavailable",
		}
	}
	metrics.PositionSourceAttemptsTotal.WithLabelValues(chain.ID, "pools", "ok").Inc()

	pools := make([]entity.Pool, 0, len(raw))
	for _, p := range raw {
		pools = append(pools, normalizeFlamingoPool(p, chain.DEXName))
	}
	return entity.PositionList{Positions: []entity.Position{}, Pools: pools, Source: "pools"}
}

// normalizeSubgraphBin maps one subgraph bin entry onto the normalized
// position shape. Every optional upstream field gets a typed default so a
// partial or evolving schema degrades data richness instead of crashing.
func normalizeSubgraphBin(bin wire.UserBinLiquidity) entity.Position {
	pos := entity.Position{
		TokenID:     bin.ID,
		Token0:      entity.PositionToken{Icon: genericTokenIcon},
		Token1:      entity.PositionToken{Icon: genericTokenIcon},
		Liquidity:   defaultAmountString(bin.Liquidity),
		TokensOwed0: "0",
		TokensOwed1: "0",
		DEXName:     "Trader Joe",
		ChainModel:  entity.ModelBin,
	}
	if pair := bin.LBPair; pair != nil {
		pos.PairAddress = checksumIfHex(pair.ID)
		pos.BinStep, _ = strconv.Atoi(pair.BinStep)
		if pair.TokenX != nil {
			pos.Token0.Address = checksumIfHex(pair.TokenX.ID)
			pos.Token0.Symbol = pair.TokenX.Symbol
		}
		if pair.TokenY != nil {
			pos.Token1.Address = checksumIfHex(pair.TokenY.ID)
			pos.Token1.Symbol = pair.TokenY.Symbol
		}
	}
	return pos
}

// normalizeBackendPosition maps one REST backend entry onto the normalized
// position shape, with the same defaulting rules as the subgraph path.
func normalizeBackendPosition(p wire.JoeUserPosition) entity.Position {
	pos := entity.Position{
		TokenID:     p.PairAddress,
		Token0:      entity.PositionToken{Icon: genericTokenIcon},
		Token1:      entity.PositionToken{Icon: genericTokenIcon},
		Liquidity:   defaultAmountString(p.Balance),
		TokensOwed0: defaultAmountString(p.FeesX),
		TokensOwed1: defaultAmountString(p.FeesY),
		DEXName:     "Trader Joe",
		ChainModel:  entity.ModelBin,
		BinStep:     p.BinStep,
		PairAddress: checksumIfHex(p.PairAddress),
	}
	if p.TokenX != nil {
		pos.Token0.Address = checksumIfHex(p.TokenX.Address)
		pos.Token0.Symbol = p.TokenX.Symbol
		if p.TokenX.LogoURI != "" {
			pos.Token0.Icon = p.TokenX.LogoURI
		}
	}
	if p.TokenY != nil {
		pos.Token1.Address = checksumIfHex(p.TokenY.Address)
		pos.Token1.Symbol = p.TokenY.Symbol
		if p.TokenY.LogoURI != "" {
			pos.Token1.Icon = p.TokenY.LogoURI
		}
	}
	return pos
}

// normalizeFlamingoPool maps one pools API entry onto the normalized pool
// shape with typed defaults.
func normalizeFlamingoPool(p wire.FlamingoPool, dexName string) entity.Pool {
	pool := entity.Pool{
		Address:  p.Hash,
		Token0:   entity.PositionToken{Icon: genericTokenIcon},
		Token1:   entity.PositionToken{Icon: genericTokenIcon},
		FeeBps:   p.FeeBps,
		TVLUSD:   p.TVLUSD,
		DEXName:  dexName,
		PoolName: p.Name,
	}
	if p.Token0 != nil {
		pool.Token0.Address = p.Token0.Hash
		pool.Token0.Symbol = p.Token0.Symbol
		if p.Token0.Image != "" {
			pool.Token0.Icon = p.Token0.Image
		}
	}
	if p.Token1 != nil {
		pool.Token1.Address = p.Token1.Hash
		pool.Token1.Symbol = p.Token1.Symbol
		if p.Token1.Image != "" {
			pool.Token1.Icon = p.Token1.Image
		}
	}
	return pool
}

// checksumIfHex normalizes an EVM address to its checksummed form, passing
// non-hex values through unchanged so non-EVM sources are unaffected.
func checksumIfHex(address string) string {
	if common.IsHexAddress(address) {
		return common.HexToAddress(address).Hex()
	}
	return address
}

// defaultAmountString keeps integer-string amounts non-empty.
func defaultAmountString(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
