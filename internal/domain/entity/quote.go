package entity

// QuoteRequest asks for a swap estimate on one chain. AmountIn is an integer
// string in the input token's base units.
type QuoteRequest struct {
	TokenIn  string `json:"tokenIn"`
	TokenOut string `json:"tokenOut"`
	AmountIn string `json:"amountIn"`
}

// QuoteResult is a normalized quote. AmountOut is an integer string in the
// output token's base units, floored, never rounded. Quotes are stateless and
// produced fresh per call.
type QuoteResult struct {
	AmountOut string `json:"amountOut"`
	// FeeBps is the DEX swap fee applied, in basis points.
	FeeBps int `json:"fee"`
	// Route labels the venue the estimate is for, e.g. "Uniswap V3".
	Route       string `json:"route"`
	DecimalsOut uint8  `json:"decimalsOut"`
	// PriceSource tags the provenance of the prices backing the estimate:
	// "feed" when both legs came from the live feed, "default" when at least
	// one leg fell back to the static table.
	PriceSource PriceOrigin `json:"source"`
}
