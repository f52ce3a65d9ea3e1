package entity

// LiquidityModel classifies how a chain's DEX organizes liquidity.
type LiquidityModel string

// Supported liquidity models. Every chain maps to exactly one of these.
const (
	// ModelTick is the Uniswap-V3-style concentrated liquidity model where
	// price ranges are expressed as discrete ticks and fee tiers select spacing.
	ModelTick LiquidityModel = "tick-based"
	// ModelBin is the Trader-Joe-style Liquidity Book model where liquidity
	// is allocated into fixed-width price bins around the active bin.
	ModelBin LiquidityModel = "bin-based"
	// ModelSimple is the classic constant-product pool requiring equal-value
	// deposits with no range selection.
	ModelSimple LiquidityModel = "simple-lp"
)

// NativeCurrency describes a chain's gas/native asset.
type NativeCurrency struct {
	Name     string `json:"name" yaml:"name"`
	Symbol   string `json:"symbol" yaml:"symbol"`
	Decimals uint8  `json:"decimals" yaml:"decimals"`
}

// ChainDescriptor holds the configuration for a supported blockchain network.
// Descriptors are defined at process start and never mutated afterwards.
// This structure is defined at the domain level to be used across application
// and infrastructure layers.
type ChainDescriptor struct {
	// ID is the internal identifier used in request routing (e.g. "ethereum").
	ID string `json:"id" yaml:"id"`
	// ChainID is the canonical chain identifier. EVM chains use the numeric
	// id rendered as a decimal string; non-EVM chains (TRON, NEO) use their
	// own string identifiers.
	ChainID          string         `json:"chainId" yaml:"chainId"`
	Name             string         `json:"name" yaml:"name"`
	LiquidityModel   LiquidityModel `json:"liquidityModel" yaml:"liquidityModel"`
	Native           NativeCurrency `json:"nativeCurrency" yaml:"nativeCurrency"`
	RPCURL           string         `json:"rpcUrl" yaml:"rpcUrl"`
	BlockExplorerURL string         `json:"blockExplorerUrl,omitempty" yaml:"blockExplorerUrl,omitempty"`
	// DEXName identifies the single DEX this front-end integrates on the chain.
	DEXName string `json:"dexName" yaml:"dexName"`
	// SwapFeeBps is the DEX's swap fee in basis points (30 = 0.30%).
	SwapFeeBps int `json:"swapFeeBps" yaml:"swapFeeBps"`
	// EVM marks chains whose addresses are 0x-prefixed hex and can be
	// validated/checksummed with go-ethereum's common package.
	EVM bool `json:"evm" yaml:"evm"`
}
