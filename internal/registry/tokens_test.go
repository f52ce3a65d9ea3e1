package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTokenDecimalsFixture pins the decimals of every supported token to the
// documented on-chain value. Decimals drive all base-unit math: a wrong
// entry corrupts quote amounts silently, so this table is deliberately
// exhaustive for the odd cases.
func TestTokenDecimalsFixture(t *testing.T) {
	cases := []struct {
		chain    string
		symbol   string
		decimals uint8
	}{
		{"ethereum", "ETH", 18},
		{"ethereum", "USDC", 6},
		{"ethereum", "USDT", 6},
		{"ethereum", "WBTC", 8},
		{"ethereum", "DAI", 18},
		{"bsc", "BNB", 18},
		// BSC's USDT is 18 decimals, unlike the 6-decimals deployments on
		// other chains.
		{"bsc", "USDT", 18},
		{"bsc", "BUSD", 18},
		{"avalanche", "AVAX", 18},
		{"avalanche", "USDC", 6},
		{"tron", "TRX", 6},
		{"tron", "USDT", 6},
		// NEO's native token is indivisible.
		{"neo", "NEO", 0},
		{"neo", "GAS", 8},
		{"neo", "fUSDT", 6},
	}
	for _, tc := range cases {
		tok, err := GetToken(tc.chain, tc.symbol)
		require.NoError(t, err, "%s/%s", tc.chain, tc.symbol)
		assert.Equal(t, tc.decimals, tok.Decimals, "%s/%s", tc.chain, tc.symbol)
	}
}

func TestGetTokenUnknownSymbol(t *testing.T) {
	_, err := GetToken("ethereum", "DOGE")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestGetTokenUnknownChain(t *testing.T) {
	_, err := GetToken("solana", "USDC")
	assert.ErrorIs(t, err, ErrChainNotFound)
}

// Symbols are only unique per chain: the same ticker is a different token
// with a different address (and possibly decimals) elsewhere.
func TestSymbolsDifferAcrossChains(t *testing.T) {
	ethUSDT, err := GetToken("ethereum", "USDT")
	require.NoError(t, err)
	bscUSDT, err := GetToken("bsc", "USDT")
	require.NoError(t, err)

	assert.NotEqual(t, ethUSDT.Address, bscUSDT.Address)
	assert.NotEqual(t, ethUSDT.Decimals, bscUSDT.Decimals)
}

// The wrapped native and the native token intentionally share one feed id;
// the price service dedups them into a single batched lookup.
func TestNativeAndWrappedShareFeedID(t *testing.T) {
	bnb, err := GetToken("bsc", "BNB")
	require.NoError(t, err)
	wbnb, err := GetToken("bsc", "WBNB")
	require.NoError(t, err)
	assert.Equal(t, bnb.FeedID, wbnb.FeedID)
}

func TestGetAllTokensReturnsCopy(t *testing.T) {
	tokens, err := GetAllTokens("ethereum")
	require.NoError(t, err)
	require.Contains(t, tokens, "USDC")

	tokens["USDC"] = tokens["USDT"]
	fresh, err := GetAllTokens("ethereum")
	require.NoError(t, err)
	assert.Equal(t, uint8(6), fresh["USDC"].Decimals)
	assert.Equal(t, "USDC", fresh["USDC"].Symbol)
}

func TestGetAllTokensAcceptsChainID(t *testing.T) {
	byID, err := GetAllTokens("avalanche")
	require.NoError(t, err)
	byChainID, err := GetAllTokens("43114")
	require.NoError(t, err)
	assert.Equal(t, byID, byChainID)
}
