// Package entity holds the wire shapes of the external APIs this service
// consumes. These mirror upstream JSON and are normalized into domain
// entities by the service layer; fields upstream omits stay zero-valued.
package entity

// BinPositionsGraphResponse is the envelope of the Liquidity Book subgraph
// query for a wallet's bin liquidity.
type BinPositionsGraphResponse struct {
	Data   *BinPositionsGraphData `json:"data"`
	Errors []GraphError           `json:"errors"`
}

// GraphError is a single GraphQL-level error.
type GraphError struct {
	Message string `json:"message"`
}

// BinPositionsGraphData carries the wallet's liquidity-token balances.
type BinPositionsGraphData struct {
	UserBinLiquidities []UserBinLiquidity `json:"userBinLiquidities"`
}

// UserBinLiquidity is one bin the wallet holds liquidity in.
type UserBinLiquidity struct {
	ID        string       `json:"id"`
	BinID     string       `json:"binId"`
	Liquidity string       `json:"liquidity"`
	LBPair    *LBPairGraph `json:"lbPair"`
}

// LBPairGraph describes the pair a bin belongs to.
type LBPairGraph struct {
	ID      string        `json:"id"`
	BinStep string        `json:"binStep"`
	TokenX  *LBTokenGraph `json:"tokenX"`
	TokenY  *LBTokenGraph `json:"tokenY"`
}

// LBTokenGraph is a token as the subgraph renders it.
type LBTokenGraph struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
}

// JoeUserPosition is one entry of the DEX backend's REST positions response,
// the fallback source when the subgraph is unavailable.
type JoeUserPosition struct {
	PairAddress string        `json:"pairAddress"`
	BinStep     int           `json:"binStep"`
	TokenX      *JoeRESTToken `json:"tokenX"`
	TokenY      *JoeRESTToken `json:"tokenY"`
	// Balance is the wallet's liquidity-token balance as an integer string.
	// Zero-balance entries are historical and get filtered out.
	Balance string `json:"balance"`
	FeesX   string `json:"pendingFeesX"`
	FeesY   string `json:"pendingFeesY"`
}

// JoeRESTToken is a token as the REST backend renders it.
type JoeRESTToken struct {
	Address string `json:"address"`
	Symbol  string `json:"symbol"`
	LogoURI string `json:"logoURI"`
}
