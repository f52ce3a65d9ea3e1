package restapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter wires the gin engine: CORS-open with pre-flight short-circuit,
// zap request logging, panic recovery into structured {error} responses, and
// all API routes.
func SetupRouter(
	market *MarketHandler,
	positions *PositionHandler,
	geo *GeoHandler,
	reg *RegistryHandler,
	logger *zap.Logger,
) *gin.Engine {
	router := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.Use(ZapLoggerMiddleware(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/chains", reg.ListChainsHandler)
		v1.GET("/chains/:chain/tokens", reg.ListTokensHandler)
		v1.GET("/chains/:chain/liquidity-config", reg.GetLiquidityConfigHandler)
		v1.POST("/chains/:chain/market", market.PostMarketHandler)
		v1.POST("/positions", positions.PostPositionsHandler)
		v1.GET("/geo", geo.GetGeoHandler)
	}

	router.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
