package restapi

import (
	"errors"
	"net/http"

	"dex_gateway/internal/domain/entity"
	"dex_gateway/internal/registry"
	"dex_gateway/internal/service"

	"github.com/gin-gonic/gin"
)

// MarketRequest is the body of the per-chain market endpoint. Action selects
// the operation: "prices" returns the chain's snapshot, "quote" estimates a
// swap and requires the three quote fields.
type MarketRequest struct {
	Action   string `json:"action"`
	TokenIn  string `json:"tokenIn"`
	TokenOut string `json:"tokenOut"`
	AmountIn string `json:"amountIn"`
}

// TokenSummary is the per-symbol metadata returned alongside prices.
type TokenSummary struct {
	Address  string `json:"address"`
	Decimals uint8  `json:"decimals"`
}

// PricesResponse is the "prices" action's payload.
type PricesResponse struct {
	Prices map[string]float64      `json:"prices"`
	Tokens map[string]TokenSummary `json:"tokens"`
}

// MarketHandler handles HTTP requests for prices and quotes.
type MarketHandler struct {
	prices service.PriceService
	quotes service.QuoteService
}

// NewMarketHandler creates a new instance of MarketHandler.
func NewMarketHandler(prices service.PriceService, quotes service.QuoteService) *MarketHandler {
	return &MarketHandler{prices: prices, quotes: quotes}
}

// PostMarketHandler handles POST /api/v1/chains/:chain/market.
func (h *MarketHandler) PostMarketHandler(c *gin.Context) {
	chainID := c.Param("chain")

	var req MarketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed JSON request body"})
		return
	}

	switch req.Action {
	case "prices":
		h.handlePrices(c, chainID)
	case "quote":
		h.handleQuote(c, chainID, req)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "action must be \"prices\" or \"quote\""})
	}
}

func (h *MarketHandler) handlePrices(c *gin.Context, chainID string) {
	snapshot, err := h.prices.GetPrices(c.Request.Context(), chainID)
	if err != nil {
		respondError(c, err)
		return
	}
	tokens, err := registry.GetAllTokens(chainID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := PricesResponse{
		Prices: make(map[string]float64, len(snapshot.Prices)),
		Tokens: make(map[string]TokenSummary, len(tokens)),
	}
	for sym, price := range snapshot.Prices {
		resp.Prices[sym] = price.USD
	}
	for sym, tok := range tokens {
		resp.Tokens[sym] = TokenSummary{Address: tok.Address, Decimals: tok.Decimals}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MarketHandler) handleQuote(c *gin.Context, chainID string, req MarketRequest) {
	if req.TokenIn == "" || req.TokenOut == "" || req.AmountIn == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tokenIn, tokenOut and amountIn are required"})
		return
	}

	result, err := h.quotes.ComputeQuote(c.Request.Context(), chainID, entity.QuoteRequest{
		TokenIn:  req.TokenIn,
		TokenOut: req.TokenOut,
		AmountIn: req.AmountIn,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// respondError maps service sentinels onto the HTTP error taxonomy: client
// errors are 400s, an unpriceable quote is a 502 (the failure is upstream
// data, not the request).
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPriceUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.Is(err, registry.ErrChainNotFound),
		errors.Is(err, registry.ErrTokenNotFound),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidAddress),
		errors.Is(err, service.ErrUnsupportedChain):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
