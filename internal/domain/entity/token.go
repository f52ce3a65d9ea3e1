package entity

// TokenDescriptor holds the details of a token tracked on a specific chain.
// Decimals is the scaling exponent converting an integer base-unit amount to
// a human amount: human = integer / 10^decimals. It must match the on-chain
// token's actual decimals or amount math corrupts silently.
type TokenDescriptor struct {
	Symbol  string `json:"symbol"`
	Address string `json:"address"`
	// Decimals is in [0, 18]. NEO's native token legitimately has 0.
	Decimals uint8 `json:"decimals"`
	// FeedID is the external price feed's identifier for this token.
	// Several symbols may share one feed id (e.g. a wrapped native and the
	// native token). Empty means the token has no external price source.
	FeedID string `json:"feedId,omitempty"`
}
