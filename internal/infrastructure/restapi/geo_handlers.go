package restapi

import (
	"net"
	"net/http"
	"strings"

	"dex_gateway/internal/client"
	"dex_gateway/internal/domain/entity"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GeoHandler resolves the caller's IP to a coarse location.
type GeoHandler struct {
	geo    client.GeoIPClient
	logger *zap.Logger
}

// NewGeoHandler creates a new instance of GeoHandler.
func NewGeoHandler(geo client.GeoIPClient, logger *zap.Logger) *GeoHandler {
	return &GeoHandler{geo: geo, logger: logger.Named("GeoHandler")}
}

// GetGeoHandler handles GET /api/v1/geo. Takes no body; the caller IP comes
// from X-Forwarded-For, then X-Real-IP, then the connection's remote
// address. Loopback and unresolvable addresses return all-null fields
// rather than an error.
func (h *GeoHandler) GetGeoHandler(c *gin.Context) {
	ip := callerIP(c)
	if ip == "" {
		c.JSON(http.StatusOK, entity.GeoLocation{})
		return
	}

	location := entity.GeoLocation{IP: &ip}
	resolved, err := h.geo.Lookup(c.Request.Context(), ip)
	if err != nil || resolved.Status != "success" {
		// Lookup failures only degrade the response; the IP itself is
		// still worth returning.
		h.logger.Warn("Geo lookup degraded", zap.String("ip", ip), zap.Error(err))
		c.JSON(http.StatusOK, location)
		return
	}

	if resolved.Country != "" {
		location.Country = &resolved.Country
	}
	if resolved.City != "" {
		location.City = &resolved.City
	}
	if resolved.RegionName != "" {
		location.Region = &resolved.RegionName
	}
	c.JSON(http.StatusOK, location)
}

// callerIP extracts the original client IP, returning "" for loopback or
// unparseable values.
func callerIP(c *gin.Context) string {
	candidate := ""
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		// First entry is the originating client; the rest are proxies.
		candidate = strings.TrimSpace(strings.Split(fwd, ",")[0])
	} else if real := c.GetHeader("X-Real-IP"); real != "" {
		candidate = strings.TrimSpace(real)
	} else if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		candidate = host
	}

	parsed := net.ParseIP(candidate)
	if parsed == nil || parsed.IsLoopback() || parsed.IsUnspecified() {
		return ""
	}
	return candidate
}
