package registry

import (
	"errors"

	"dex_gateway/internal/domain/entity"
)

// ErrTokenNotFound is returned when a symbol is absent from a chain's
// registry. It is a client error, not a retryable failure.
var ErrTokenNotFound = errors.New("token not found in chain registry")

// tokensByChain holds one registry per chain id. Symbols are unique within a
// chain only; "USDT" on ethereum and "USDT" on bsc are different tokens with
// different addresses and decimals.
var tokensByChain = map[string]map[string]entity.TokenDescriptor{
	"ethereum": {
		"ETH":  {Symbol: "ETH", Address: "0x0000000000000000000000000000000000000000", Decimals: 18, FeedID: "ethereum"},
		"WETH": {Symbol: "WETH", Address: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", Decimals: 18, FeedID: "ethereum"},
		"USDC": {Symbol: "USDC", Address: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", Decimals: 6, FeedID: "usd-coin"},
		"USDT": {Symbol: "USDT", Address: "0xdAC17F958D2ee523a2206206994597C13D831ec7", Decimals: 6, FeedID: "tether"},
		"DAI":  {Symbol: "DAI", Address: "0x6B175474E89094C44Da98b954EedeAC495271d0F", Decimals: 18, FeedID: "dai"},
		"WBTC": {Symbol: "WBTC", Address: "0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599", Decimals: 8, FeedID: "wrapped-bitcoin"},
	},
	"arbitrum": {
		"ETH":  {Symbol: "ETH", Address: "0x0000000000000000000000000000000000000000", Decimals: 18, FeedID: "ethereum"},
		"WETH": {Symbol: "WETH", Address: "0x82aF49447D8a07e3bd95BD0d56f35241523fBab1", Decimals: 18, FeedID: "ethereum"},
		"USDC": {Symbol: "USDC", Address: "0xaf88d065e77c8cC2239327C5EDb3A432268e5831", Decimals: 6, FeedID: "usd-coin"},
		"USDT": {Symbol: "USDT", Address: "0xFd086bC7CD5C481DCC9C85ebE478A1C0b69FCbb9", Decimals: 6, FeedID: "tether"},
		"ARB":  {Symbol: "ARB", Address: "0x912CE59144191C1204E64559FE8253a0e49E6548", Decimals: 18, FeedID: "arbitrum"},
	},
	"bsc": {
		"BNB":  {Symbol: "BNB", Address: "0x0000000000000000000000000000000000000000", Decimals: 18, FeedID: "binancecoin"},
		"WBNB": {Symbol: "WBNB", Address: "0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c", Decimals: 18, FeedID: "binancecoin"},
		// USDT on BSC is an 18-decimals token, unlike its 6-decimals
		// deployments elsewhere. The decimals here must track the contract.
		"USDT": {Symbol: "USDT", Address: "0x55d398326f99059fF775485246999027B3197955", Decimals: 18, FeedID: "tether"},
		"BUSD": {Symbol: "BUSD", Address: "0xe9e7CEA3DedcA5984780Bafc599bD69ADd087D56", Decimals: 18, FeedID: "binance-usd"},
		"CAKE": {Symbol: "CAKE", Address: "0x0E09FaBB73Bd3Ade0a17ECC321fD13a19e81cE82", Decimals: 18, FeedID: "pancakeswap-token"},
	},
	"avalanche": {
		"AVAX":  {Symbol: "AVAX", Address: "0x0000000000000000000000000000000000000000", Decimals: 18, FeedID: "avalanche-2"},
		"WAVAX": {Symbol: "WAVAX", Address: "0xB31f66AA3C1e785363F0875A1B74E27b85FD66c7", Decimals: 18, FeedID: "avalanche-2"},
		"USDC":  {Symbol: "USDC", Address: "0xB97EF9Ef8734C71904D8002F8b6Bc66Dd9c48a6E", Decimals: 6, FeedID: "usd-coin"},
		"USDT":  {Symbol: "USDT", Address: "0x9702230A8Ea53601f5cD2dc00fDBc13d4dF4A8c7", Decimals: 6, FeedID: "tether"},
		"JOE":   {Symbol: "JOE", Address: "0x6e84a6216eA6dACC71eE8E6b0a5B7322EEbC0fDd", Decimals: 18, FeedID: "joetoken"},
	},
	"tron": {
		"TRX":  {Symbol: "TRX", Address: "T9yD14Nj9j7xAB4dbGeiX9h8unkKHxuWwb", Decimals: 6, FeedID: "tron"},
		"WTRX": {Symbol: "WTRX", Address: "TNUC9Qb1rRpS5CbWLmNMxXBjyFoydXjWFR", Decimals: 6, FeedID: "tron"},
		"USDT": {Symbol: "USDT", Address: "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t", Decimals: 6, FeedID: "tether"},
		"USDC": {Symbol: "USDC", Address: "TEkxiTehnzSmSe2XqrBj4w32RUN966rdz8", Decimals: 6, FeedID: "usd-coin"},
		"SUN":  {Symbol: "SUN", Address: "TSSMHYeV2uE9qYH95DqyoCuNCzEL1NvU3S", Decimals: 18, FeedID: "sun-token"},
	},
	"neo": {
		"NEO":   {Symbol: "NEO", Address: "0xef4073a0f2b305a38ec4050e4d3d28bc40ea63f5", Decimals: 0, FeedID: "neo"},
		"bNEO":  {Symbol: "bNEO", Address: "0x48c40d4666f93408be1bef038b6722404d9a4c2a", Decimals: 8, FeedID: "neo"},
		"GAS":   {Symbol: "GAS", Address: "0xd2a4cff31913016155e38e474a2c06d08be276cf", Decimals: 8, FeedID: "gas"},
		"FLM":   {Symbol: "FLM", Address: "0xf0151f528127558851b39c2cd8aa47da7418ab28", Decimals: 8, FeedID: "flamingo-finance"},
		"fUSDT": {Symbol: "fUSDT", Address: "0xcd48b160c1bbc9d74997b803b9a7ad50a4bef020", Decimals: 6, FeedID: "tether"},
	},
}

// GetToken returns the descriptor for a symbol on a chain. The chain id may
// be the internal id or the canonical chain id, same as GetChain.
func GetToken(chainID, symbol string) (entity.TokenDescriptor, error) {
	chain, err := GetChain(chainID)
	if err != nil {
		return entity.TokenDescriptor{}, err
	}
	tok, ok := tokensByChain[chain.ID][symbol]
	if !ok {
		return entity.TokenDescriptor{}, ErrTokenNotFound
	}
	return tok, nil
}

// GetAllTokens returns a copy of a chain's full symbol→descriptor registry.
func GetAllTokens(chainID string) (map[string]entity.TokenDescriptor, error) {
	chain, err := GetChain(chainID)
	if err != nil {
		return nil, err
	}
	src := tokensByChain[chain.ID]
	out := make(map[string]entity.TokenDescriptor, len(src))
	for sym, tok := range src {
		out[sym] = tok
	}
	return out, nil
}
