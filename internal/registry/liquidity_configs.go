package registry

import "dex_gateway/internal/domain/entity"

// defaultTickConfig is the Uniswap-V3-style form configuration. It doubles
// as the fallback for unrecognized chains: the front-end always gets a
// renderable config back, never an error.
var defaultTickConfig = entity.NewTickLiquidityConfig(entity.TickConfig{
	FeeTiersBps:         []int{1, 5, 30, 100},
	TickSpacing:         map[int]int{1: 1, 5: 10, 30: 60, 100: 200},
	DefaultRangePercent: 10,
	RangeOptions:        []float64{5, 10, 20, 50, 100},
})

var liquidityConfigs = map[string]entity.LiquidityConfig{
	"ethereum": defaultTickConfig,
	"arbitrum": defaultTickConfig,
	"avalanche": entity.NewBinLiquidityConfig(entity.BinConfig{
		BinSteps:        []int{1, 2, 5, 10, 15, 20, 25, 50, 100},
		DefaultBinRange: 20,
		RangeWidths:     []int{10, 20, 30, 50},
		Shapes: []entity.DistributionShape{
			entity.ShapeUniform,
			entity.ShapeCurve,
			entity.ShapeBidAsk,
		},
	}),
	"bsc": entity.NewSimpleLiquidityConfig(entity.SimpleConfig{
		Description: "Constant-product pool. Deposits are split 50/50 by value across the pair; no price range or fee tier to choose.",
	}),
	"tron": entity.NewSimpleLiquidityConfig(entity.SimpleConfig{
		Description: "Constant-product pool. Deposits are split 50/50 by value across the pair; no price range or fee tier to choose.",
	}),
	"neo": entity.NewSimpleLiquidityConfig(entity.SimpleConfig{
		Description: "Flamingo pools take equal-value deposits of both assets and mint LP tokens; there are no range or shape inputs.",
	}),
}

// GetLiquidityConfig returns the input-form configuration for a chain.
// Unrecognized chains fall back to the tick-based default by contract.
func GetLiquidityConfig(chainID string) entity.LiquidityConfig {
	chain, err := GetChain(chainID)
	if err != nil {
		return defaultTickConfig
	}
	if cfg, ok := liquidityConfigs[chain.ID]; ok {
		return cfg
	}
	return defaultTickConfig
}
