package entity

// FlamingoPool is one pool of the public pools API. Flamingo exposes no
// wallet-scoped position query, so the full pool list is returned and the
// caller reconciles it against LP-token holdings.
type FlamingoPool struct {
	Hash   string         `json:"hash"`
	Name   string         `json:"name"`
	Token0 *FlamingoToken `json:"token0"`
	Token1 *FlamingoToken `json:"token1"`
	TVLUSD float64        `json:"tvlUsd"`
	FeeBps int            `json:"feeBps"`
}

// FlamingoToken is a token as the pools API renders it.
type FlamingoToken struct {
	Hash   string `json:"hash"`
	Symbol string `json:"symbol"`
	Image  string `json:"image"`
}
