package service

import (
	"context"
	"errors"
	"testing"

	"dex_gateway/internal/domain/entity"
	wire "dex_gateway/internal/entity"
	"dex_gateway/internal/registry"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testPairAddress = "0x1d7a1a79840a66bc44bd87005ed2da798b81b2cf"

const testWallet = "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"

type stubSubgraph struct {
	bins  []wire.UserBinLiquidity
	err   error
	calls int
}

func (s *stubSubgraph) GetUserBinLiquidities(context.Context, string) ([]wire.UserBinLiquidity, error) {
	s.calls++
	return s.bins, s.err
}

type stubBackend struct {
	positions []wire.JoeUserPosition
	err       error
	calls     int
}

func (s *stubBackend) GetUserPositions(context.Context, string) ([]wire.JoeUserPosition, error) {
	s.calls++
	return s.positions, s.err
}

type stubPools struct {
	pools []wire.FlamingoPool
	err   error
}

func (s *stubPools) GetPools(context.Context) ([]wire.FlamingoPool, error) {
	return s.pools, s.err
}

func newPositionService(sub *stubSubgraph, back *stubBackend, pools *stubPools) PositionService {
	if sub == nil {
		sub = &stubSubgraph{}
	}
	if back == nil {
		back = &stubBackend{}
	}
	if pools == nil {
		pools = &stubPools{}
	}
	return NewPositionService(sub, back, pools, zap.NewNop())
}

func TestGetPositionsSubgraphPreferred(t *testing.T) {
	sub := &stubSubgraph{bins: []wire.UserBinLiquidity{{
		ID:        "0xpair-8385000",
		BinID:     "8385000",
		Liquidity: "12345",
		LBPair: &wire.LBPairGraph{
			// Subgraphs emit lowercased addresses; normalization checksums them.
			ID:      testPairAddress,
			BinStep: "20",
			TokenX:  &wire.LBTokenGraph{ID: "0xb31f66aa3c1e785363f0875a1b74e27b85fd66c7", Symbol: "WAVAX"},
			TokenY:  &wire.LBTokenGraph{ID: "0xb97ef9ef8734c71904d8002f8b6bc66dd9c48a6e", Symbol: "USDC"},
		},
	}}}
	back := &stubBackend{}
	svc := newPositionService(sub, back, nil)

	list, err := svc.GetPositions(context.Background(), "avalanche", testWallet)
	require.NoError(t, err)
	assert.Empty(t, list.Err)
	assert.Equal(t, "subgraph", list.Source)
	require.Len(t, list.Positions, 1)
	assert.Zero(t, back.calls, "backend must not be queried when the subgraph answers")

	pos := list.Positions[0]
	assert.Equal(t, common.HexToAddress(testPairAddress).Hex(), pos.PairAddress)
	assert.NotEqual(t, testPairAddress, pos.PairAddress, "pair address must be checksummed")
	assert.Equal(t, 20, pos.BinStep)
	assert.Equal(t, "12345", pos.Liquidity)
	assert.Equal(t, "WAVAX", pos.Token0.Symbol)
	assert.Equal(t, "0xB31f66AA3C1e785363F0875A1B74E27b85FD66c7", pos.Token0.Address)
	assert.Equal(t, "USDC", pos.Token1.Symbol)
	assert.Equal(t, entity.ModelBin, pos.ChainModel)
	// The subgraph carries no token images.
	assert.Equal(t, "/icons/token-generic.svg", pos.Token0.Icon)
	assert.Equal(t, "0", pos.TokensOwed0)
}

func TestGetPositionsFallsBackToBackend(t *testing.T) {
	sub := &stubSubgraph{err: errors.New("subgraph 502")}
	back := &stubBackend{positions: []wire.JoeUserPosition{
		{
			PairAddress: testPairAddress,
			BinStep:     20,
			TokenX:      &wire.JoeRESTToken{Address: "0xb31f66aa3c1e785363f0875a1b74e27b85fd66c7", Symbol: "WAVAX", LogoURI: "https://cdn.example/wavax.png"},
			TokenY:      &wire.JoeRESTToken{Address: "0xb97ef9ef8734c71904d8002f8b6bc66dd9c48a6e", Symbol: "USDC"},
			Balance:     "500",
			FeesX:       "7",
			FeesY:       "",
		},
		// Historical entry with nothing left in it: dropped.
		{PairAddress: "0xdead", Balance: "0"},
		// Garbage balance from upstream: dropped, not fatal.
		{PairAddress: "0xbeef", Balance: "n/a"},
	}}
	svc := newPositionService(sub, back, nil)

	list, err := svc.GetPositions(context.Background(), "avalanche", testWallet)
	require.NoError(t, err)
	assert.Empty(t, list.Err)
	assert.Equal(t, "rest", list.Source)
	require.Len(t, list.Positions, 1)

	pos := list.Positions[0]
	assert.Equal(t, "500", pos.Liquidity)
	assert.Equal(t, "7", pos.TokensOwed0)
	assert.Equal(t, "0", pos.TokensOwed1, "empty fee amount defaults to 0")
	assert.Equal(t, "https://cdn.example/wavax.png", pos.Token0.Icon)
	assert.Equal(t, "/icons/token-generic.svg", pos.Token1.Icon)
	assert.Equal(t, common.HexToAddress(testPairAddress).Hex(), pos.PairAddress)
}

// An empty subgraph answer is a real answer: the chain does not fall through
// to an error state, and an empty backend answer confirms it.
func TestGetPositionsEmptyEverywhereIsNotAFailure(t *testing.T) {
	svc := newPositionService(&stubSubgraph{}, &stubBackend{}, nil)

	list, err := svc.GetPositions(context.Background(), "avalanche", testWallet)
	require.NoError(t, err)
	assert.Empty(t, list.Err)
	assert.NotNil(t, list.Positions)
	assert.Empty(t, list.Positions)
}

// An empty first source still consults the second: it might know positions
// the first missed.
func TestGetPositionsEmptySubgraphStillTriesBackend(t *testing.T) {
	back := &stubBackend{positions: []wire.JoeUserPosition{
		{PairAddress: testPairAddress, Balance: "9"},
	}}
	svc := newPositionService(&stubSubgraph{}, back, nil)

	list, err := svc.GetPositions(context.Background(), "avalanche", testWallet)
	require.NoError(t, err)
	assert.Equal(t, "rest", list.Source)
	assert.Len(t, list.Positions, 1)
}

func TestGetPositionsAllSourcesDown(t *testing.T) {
	svc := newPositionService(
		&stubSubgraph{err: errors.New("subgraph down")},
		&stubBackend{err: errors.New("backend down")},
		nil,
	)

	list, err := svc.GetPositions(context.Background(), "avalanche", testWallet)
	require.NoError(t, err, "total source failure degrades, never errors")
	assert.Equal(t, "all position data sources are currently unavailable", list.Err)
	assert.NotNil(t, list.Positions)
	assert.Empty(t, list.Positions)
}

func TestGetPositionsPoolListChain(t *testing.T) {
	pools := &stubPools{pools: []wire.FlamingoPool{{
		Hash:   "0xf46719e2d16ddb2d0ba3cf1e09b5e4dbc6b5f62b",
		Name:   "FLP-FLM-GAS",
		Token0: &wire.FlamingoToken{Hash: "0xf0151f528127558851b39c2cd8aa47da7418ab28", Symbol: "FLM", Image: "https://cdn.example/flm.png"},
		Token1: &wire.FlamingoToken{Hash: "0xd2a4cff31913016155e38e474a2c06d08be276cf", Symbol: "GAS"},
		TVLUSD: 123456.78,
		FeeBps: 30,
	}}}
	svc := newPositionService(nil, nil, pools)

	// NEO addresses are not hex-validated; any string passes through.
	list, err := svc.GetPositions(context.Background(), "neo", "NUVPACMnKFhpuHjsRjhUvXz1XhqfGZYVtY")
	require.NoError(t, err)
	assert.Empty(t, list.Err)
	assert.Equal(t, "pools", list.Source)
	assert.Empty(t, list.Positions)
	require.Len(t, list.Pools, 1)

	pool := list.Pools[0]
	assert.Equal(t, "FLP-FLM-GAS", pool.PoolName)
	assert.Equal(t, "Flamingo", pool.DEXName)
	assert.Equal(t, "FLM", pool.Token0.Symbol)
	assert.Equal(t, "https://cdn.example/flm.png", pool.Token0.Icon)
	assert.Equal(t, "/icons/token-generic.svg", pool.Token1.Icon)
	assert.InDelta(t, 123456.78, pool.TVLUSD, 1e-9)
}

func TestGetPositionsPoolListDown(t *testing.T) {
	svc := newPositionService(nil, nil, &stubPools{err: errors.New("api down")})

	list, err := svc.GetPositions(context.Background(), "neo", "whatever")
	require.NoError(t, err)
	assert.Equal(t, "pool list is currently unavailable", list.Err)
	assert.Empty(t, list.Positions)
}

func TestGetPositionsUnsupportedChain(t *testing.T) {
	svc := newPositionService(nil, nil, nil)

	// Tick-based chains use the standard NFT position manager on-chain; this
	// aggregator has no source for them.
	_, err := svc.GetPositions(context.Background(), "ethereum", testWallet)
	assert.ErrorIs(t, err, ErrUnsupportedChain)
}

func TestGetPositionsValidation(t *testing.T) {
	svc := newPositionService(nil, nil, nil)
	ctx := context.Background()

	_, err := svc.GetPositions(ctx, "solana", testWallet)
	assert.ErrorIs(t, err, registry.ErrChainNotFound)

	_, err = svc.GetPositions(ctx, "avalanche", "not-an-address")
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = svc.GetPositions(ctx, "avalanche", "")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}
