package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dex_gateway/internal/entity"

	"github.com/patrickmn/go-cache"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// GeoIPClient resolves an IP address to a coarse location.
type GeoIPClient interface {
	Lookup(ctx context.Context, ip string) (entity.GeoLookupResponse, error)
}

// geoIPClientImpl talks to an ip-api.com-compatible lookup endpoint and
// memoizes answers; locations are stable enough that re-resolving the same
// caller IP on every request is wasted upstream quota.
type geoIPClientImpl struct {
	client  *fasthttp.Client
	baseURL string
	timeout time.Duration
	cache   *cache.Cache
	logger  *zap.Logger
}

// NewGeoIPClient creates a new instance of geoIPClientImpl.
func NewGeoIPClient(baseURL string, timeout time.Duration, cacheTTL time.Duration, logger *zap.Logger) GeoIPClient {
	return &geoIPClientImpl{
		client:  &fasthttp.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		cache:   cache.New(cacheTTL, 10*time.Minute),
		logger:  logger.Named("GeoIPClient"),
	}
}

// Lookup implements the GeoIPClient interface.
func (c *geoIPClientImpl) Lookup(ctx context.Context, ip string) (entity.GeoLookupResponse, error) {
	if cached, found := c.cache.Get(ip); found {
		return cached.(entity.GeoLookupResponse), nil
	}

	requestURL := fmt.Sprintf("%s/%s?fields=status,message,country,regionName,city,query", c.baseURL, ip)

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if deadline, ok := ctx.Deadline(); ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return entity.GeoLookupResponse{}, fmt.Errorf("failed to execute request to %s: %w", requestURL, err)
		}
	} else {
		if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
			return entity.GeoLookupResponse{}, fmt.Errorf("failed to execute request to %s with default timeout: %w", requestURL, err)
		}
	}

	rawBody := resp.Body()
	if resp.StatusCode() != fasthttp.StatusOK {
		c.logger.Warn("Geo lookup request failed",
			zap.String("ip", ip),
			zap.Int("statusCode", resp.StatusCode()))
		return entity.GeoLookupResponse{}, fmt.Errorf("geo lookup for %s failed with status %d", ip, resp.StatusCode())
	}

	var decoded entity.GeoLookupResponse
	if err := json.Unmarshal(rawBody, &decoded); err != nil {
		return entity.GeoLookupResponse{}, fmt.Errorf("failed to unmarshal geo lookup response: %w", err)
	}

	c.cache.Set(ip, decoded, cache.DefaultExpiration)
	return decoded, nil
}
