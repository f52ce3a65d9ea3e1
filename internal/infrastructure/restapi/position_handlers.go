package restapi

import (
	"net/http"

	"dex_gateway/internal/service"

	"github.com/gin-gonic/gin"
)

// PositionsRequest is the body of the position aggregation endpoint.
type PositionsRequest struct {
	Chain   string `json:"chain"`
	Address string `json:"address"`
}

// PositionHandler handles HTTP requests for aggregated positions.
type PositionHandler struct {
	positions service.PositionService
}

// NewPositionHandler creates a new instance of PositionHandler.
func NewPositionHandler(positions service.PositionService) *PositionHandler {
	return &PositionHandler{positions: positions}
}

// PostPositionsHandler handles POST /api/v1/positions. Unsupported chains
// and malformed addresses are client errors; source degradation is not — it
// comes back as a 200 with an empty list and the error field set, so the
// front-end can show an empty state with a retry action.
func (h *PositionHandler) PostPositionsHandler(c *gin.Context) {
	var req PositionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed JSON request body"})
		return
	}
	if req.Chain == "" || req.Address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "chain and address are required"})
		return
	}

	list, err := h.positions.GetPositions(c.Request.Context(), req.Chain, req.Address)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
