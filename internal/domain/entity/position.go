package entity

// PositionToken is one side of a position's pair. Aggregated sources often
// omit fields; normalization fills the typed defaults instead of failing.
type PositionToken struct {
	Address string `json:"address"`
	Symbol  string `json:"symbol"`
	Icon    string `json:"icon"`
}

// Position is a normalized liquidity position. For chains with an NFT
// position manager it maps 1:1 to on-chain reads; for aggregator chains it is
// synthesized from third-party API shapes with missing fields defaulted.
type Position struct {
	TokenID string        `json:"tokenId"`
	Token0  PositionToken `json:"token0"`
	Token1  PositionToken `json:"token1"`
	// FeeBps is the pool fee in basis points, 0 when the source omits it.
	FeeBps    int   `json:"fee"`
	TickLower int32 `json:"tickLower"`
	TickUpper int32 `json:"tickUpper"`
	// Liquidity and TokensOwed are integer strings in base units.
	Liquidity   string         `json:"liquidity"`
	TokensOwed0 string         `json:"tokensOwed0"`
	TokensOwed1 string         `json:"tokensOwed1"`
	InRange     bool           `json:"inRange"`
	DEXName     string         `json:"dexName"`
	ChainModel  LiquidityModel `json:"chainType"`

	// Bin-based extras, zero-valued elsewhere.
	BinStep     int    `json:"binStep,omitempty"`
	PairAddress string `json:"pairAddress,omitempty"`
}

// Pool is an available pool on chains whose DEX exposes no wallet-scoped
// position query (simple-LP). The caller reconciles pools against the
// wallet's LP-token holdings itself.
type Pool struct {
	Address  string        `json:"address"`
	Token0   PositionToken `json:"token0"`
	Token1   PositionToken `json:"token1"`
	FeeBps   int           `json:"fee"`
	TVLUSD   float64       `json:"tvlUsd"`
	DEXName  string        `json:"dexName"`
	PoolName string        `json:"poolName"`
}

// PositionList is the aggregator's best-effort answer. Err carries a
// human-readable degradation notice when every source failed; aggregation
// itself never raises to the caller.
type PositionList struct {
	Positions []Position `json:"positions"`
	Pools     []Pool     `json:"pools,omitempty"`
	// Source names the data source that answered, e.g. "subgraph" or "rest".
	Source string `json:"source,omitempty"`
	Err    string `json:"error,omitempty"`
}
