package entity

// PriceOrigin tags where a resolved USD price came from.
type PriceOrigin string

const (
	// PriceOriginFeed means the live price feed returned the value.
	PriceOriginFeed PriceOrigin = "feed"
	// PriceOriginDefault means the static fallback table supplied the value.
	PriceOriginDefault PriceOrigin = "default"
	// PriceOriginNone means neither the feed nor the fallback table knew the
	// token; the price is 0 and quoting against it must fail.
	PriceOriginNone PriceOrigin = "none"
)

// TokenPrice is a single resolved USD price with its provenance.
type TokenPrice struct {
	USD    float64     `json:"usd"`
	Origin PriceOrigin `json:"origin"`
}

// PriceSnapshot maps token symbol to its resolved USD price for one chain.
// Snapshots are fetched fresh per request; there is no cross-request caching.
type PriceSnapshot struct {
	ChainID string                `json:"chainId"`
	Prices  map[string]TokenPrice `json:"prices"`
}

// USDPrice returns the resolved USD price for a symbol, 0 when unknown.
func (s PriceSnapshot) USDPrice(symbol string) float64 {
	return s.Prices[symbol].USD
}
