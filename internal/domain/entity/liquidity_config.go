package entity

// DistributionShape selects how bin-based deposits are spread across bins.
type DistributionShape string

const (
	ShapeUniform DistributionShape = "uniform"
	ShapeCurve   DistributionShape = "curve"
	ShapeBidAsk  DistributionShape = "bid-ask"
)

// TickConfig parameterizes the input form for tick-based (V3-style) pools.
type TickConfig struct {
	// FeeTiersBps are the selectable fee tiers in basis points.
	FeeTiersBps []int `json:"feeTiers"`
	// TickSpacing maps a fee tier (bps) to its tick spacing.
	TickSpacing map[int]int `json:"tickSpacing"`
	// DefaultRangePercent is the pre-selected price range width around spot.
	DefaultRangePercent float64 `json:"defaultRangePercent"`
	// RangeOptions are the selectable range widths in percent.
	RangeOptions []float64 `json:"rangeOptions"`
}

// BinConfig parameterizes the input form for bin-based (Liquidity Book) pools.
type BinConfig struct {
	// BinSteps are the selectable bin steps in basis points.
	BinSteps []int `json:"binSteps"`
	// DefaultBinRange is the pre-selected number of bins on each side of the
	// active bin.
	DefaultBinRange int `json:"defaultBinRange"`
	// RangeWidths are the selectable bin counts per side.
	RangeWidths []int `json:"rangeWidths"`
	// Shapes are the distribution shapes the DEX supports.
	Shapes []DistributionShape `json:"shapes"`
}

// SimpleConfig describes simple-LP pools, which take no numeric range inputs.
type SimpleConfig struct {
	Description string `json:"description"`
}

// LiquidityConfig is a tagged union over the three pool parameterizations.
// Exactly one payload matching Model is non-nil; the constructors below are
// the only way registry code builds one, which keeps that invariant.
// Switching chains fully replaces the config, never merges.
type LiquidityConfig struct {
	Model  LiquidityModel `json:"model"`
	Tick   *TickConfig    `json:"tick,omitempty"`
	Bin    *BinConfig     `json:"bin,omitempty"`
	Simple *SimpleConfig  `json:"simple,omitempty"`
}

// NewTickLiquidityConfig builds the tick-based variant.
func NewTickLiquidityConfig(cfg TickConfig) LiquidityConfig {
	return LiquidityConfig{Model: ModelTick, Tick: &cfg}
}

// NewBinLiquidityConfig builds the bin-based variant.
func NewBinLiquidityConfig(cfg BinConfig) LiquidityConfig {
	return LiquidityConfig{Model: ModelBin, Bin: &cfg}
}

// NewSimpleLiquidityConfig builds the simple-LP variant.
func NewSimpleLiquidityConfig(cfg SimpleConfig) LiquidityConfig {
	return LiquidityConfig{Model: ModelSimple, Simple: &cfg}
}
