// Package registry holds the process-wide static tables: supported chains,
// per-chain token registries, the fallback price table and the per-chain
// liquidity configurations. Everything here is read-only after package init.
package registry

import (
	"errors"

	"dex_gateway/internal/domain/entity"
)

// ErrChainNotFound is returned when a chain id is not in the static table.
var ErrChainNotFound = errors.New("chain not found")

// chains is the static table of supported networks. One liquidity model and
// one DEX per chain.
var chains = []entity.ChainDescriptor{
	{
		ID:               "ethereum",
		ChainID:          "1",
		Name:             "Ethereum",
		LiquidityModel:   entity.ModelTick,
		Native:           entity.NativeCurrency{Name: "Ether", Symbol: "ETH", Decimals: 18},
		RPCURL:           "https://eth.llamarpc.com",
		BlockExplorerURL: "https://etherscan.io",
		DEXName:          "Uniswap V3",
		SwapFeeBps:       30,
		EVM:              true,
	},
	{
		ID:               "arbitrum",
		ChainID:          "42161",
		Name:             "Arbitrum One",
		LiquidityModel:   entity.ModelTick,
		Native:           entity.NativeCurrency{Name: "Ether", Symbol: "ETH", Decimals: 18},
		RPCURL:           "https://arb1.arbitrum.io/rpc",
		BlockExplorerURL: "https://arbiscan.io",
		DEXName:          "Uniswap V3",
		SwapFeeBps:       30,
		EVM:              true,
	},
	{
		ID:               "bsc",
		ChainID:          "56",
		Name:             "BNB Smart Chain",
		LiquidityModel:   entity.ModelSimple,
		Native:           entity.NativeCurrency{Name: "BNB", Symbol: "BNB", Decimals: 18},
		RPCURL:           "https://bsc-dataseed.binance.org",
		BlockExplorerURL: "https://bscscan.com",
		DEXName:          "PancakeSwap V2",
		SwapFeeBps:       25,
		EVM:              true,
	},
	{
		ID:               "avalanche",
		ChainID:          "43114",
		Name:             "Avalanche C-Chain",
		LiquidityModel:   entity.ModelBin,
		Native:           entity.NativeCurrency{Name: "Avalanche", Symbol: "AVAX", Decimals: 18},
		RPCURL:           "https://api.avax.network/ext/bc/C/rpc",
		BlockExplorerURL: "https://snowtrace.io",
		DEXName:          "Trader Joe",
		SwapFeeBps:       30,
		EVM:              true,
	},
	{
		ID:               "tron",
		ChainID:          "tron-mainnet",
		Name:             "TRON",
		LiquidityModel:   entity.ModelSimple,
		Native:           entity.NativeCurrency{Name: "TRON", Symbol: "TRX", Decimals: 6},
		RPCURL:           "https://api.trongrid.io",
		BlockExplorerURL: "https://tronscan.org",
		DEXName:          "SunSwap V2",
		SwapFeeBps:       30,
	},
	{
		ID:               "neo",
		ChainID:          "neo-n3",
		Name:             "Neo N3",
		LiquidityModel:   entity.ModelSimple,
		Native:           entity.NativeCurrency{Name: "NEO", Symbol: "NEO", Decimals: 0},
		RPCURL:           "https://mainnet1.neo.coz.io:443",
		BlockExplorerURL: "https://explorer.onegate.space",
		DEXName:          "Flamingo",
		SwapFeeBps:       30,
	},
}

var (
	chainsByID      = make(map[string]entity.ChainDescriptor, len(chains))
	chainsByChainID = make(map[string]entity.ChainDescriptor, len(chains))
)

func init() {
	for _, c := range chains {
		chainsByID[c.ID] = c
		chainsByChainID[c.ChainID] = c
	}
}

// Chains returns a copy of the chain table in declaration order.
func Chains() []entity.ChainDescriptor {
	out := make([]entity.ChainDescriptor, len(chains))
	copy(out, chains)
	return out
}

// GetChain looks a chain up by its internal id ("ethereum") or, failing
// that, by its canonical chain id ("1", "neo-n3").
func GetChain(id string) (entity.ChainDescriptor, error) {
	if c, ok := chainsByID[id]; ok {
		return c, nil
	}
	if c, ok := chainsByChainID[id]; ok {
		return c, nil
	}
	return entity.ChainDescriptor{}, ErrChainNotFound
}
