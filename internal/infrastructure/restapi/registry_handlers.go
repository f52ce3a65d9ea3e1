package restapi

import (
	"net/http"

	"dex_gateway/internal/registry"

	"github.com/gin-gonic/gin"
)

// RegistryHandler serves the static chain and token tables the front-end
// needs to populate its selectors.
type RegistryHandler struct{}

// NewRegistryHandler creates a new instance of RegistryHandler.
func NewRegistryHandler() *RegistryHandler {
	return &RegistryHandler{}
}

// ListChainsHandler handles GET /api/v1/chains.
func (h *RegistryHandler) ListChainsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"chains": registry.Chains()})
}

// ListTokensHandler handles GET /api/v1/chains/:chain/tokens.
func (h *RegistryHandler) ListTokensHandler(c *gin.Context) {
	tokens, err := registry.GetAllTokens(c.Param("chain"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tokens": tokens})
}

// GetLiquidityConfigHandler handles GET /api/v1/chains/:chain/liquidity-config.
// Unrecognized chains get the tick-based default config by contract, so this
// endpoint never errors.
func (h *RegistryHandler) GetLiquidityConfigHandler(c *gin.Context) {
	c.JSON(http.StatusOK, registry.GetLiquidityConfig(c.Param("chain")))
}
