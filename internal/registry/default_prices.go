package registry

// defaultPrices is the static USD fallback table, keyed by price feed id.
// It is consulted when the live feed is unreachable or omits an id. Feed ids
// without an entry resolve to price 0, which makes quoting against them fail
// rather than silently returning a bogus amount. Note that "joetoken" and
// "pancakeswap-token" deliberately have no default.
var defaultPrices = map[string]float64{
	"ethereum":         3000,
	"binancecoin":      600,
	"avalanche-2":      35,
	"arbitrum":         1.1,
	"tron":             0.12,
	"sun-token":        0.02,
	"neo":              15,
	"gas":              5,
	"flamingo-finance": 0.05,
	"usd-coin":         1,
	"tether":           1,
	"dai":              1,
	"binance-usd":      1,
	"wrapped-bitcoin":  65000,
}

// DefaultPrice returns the static fallback USD price for a feed id.
func DefaultPrice(feedID string) (float64, bool) {
	p, ok := defaultPrices[feedID]
	return p, ok
}
