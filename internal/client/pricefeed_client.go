package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PriceFeedClient defines the interface for the external USD price feed.
type PriceFeedClient interface {
	// GetUSDPrices fetches USD prices for a batch of feed ids in a single
	// request. The returned map may omit ids the feed does not know.
	GetUSDPrices(ctx context.Context, feedIDs []string) (map[string]float64, error)
}

// priceFeedClientImpl talks to a CoinGecko-compatible /simple/price endpoint.
type priceFeedClientImpl struct {
	client  *fasthttp.Client
	baseURL string
	timeout time.Duration
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewPriceFeedClient creates a new instance of priceFeedClientImpl.
func NewPriceFeedClient(baseURL string, timeout time.Duration, rps float64, burst int, logger *zap.Logger) PriceFeedClient {
	return &priceFeedClientImpl{
		client:  &fasthttp.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:  logger.Named("PriceFeedClient"),
	}
}

// GetUSDPrices implements the PriceFeedClient interface.
func (c *priceFeedClientImpl) GetUSDPrices(ctx context.Context, feedIDs []string) (map[string]float64, error) {
	if len(feedIDs) == 0 {
		return nil, fmt.Errorf("feedIDs cannot be empty")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait aborted: %w", err)
	}

	requestURL := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd",
		c.baseURL, url.QueryEscape(strings.Join(feedIDs, ",")))

	c.logger.Debug("Requesting batched USD prices", zap.String("url", requestURL), zap.Int("idCount", len(feedIDs)))

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if deadline, ok := ctx.Deadline(); ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			c.logger.Error("Failed to execute price feed request", zap.String("url", requestURL), zap.Error(err))
			return nil, fmt.Errorf("failed to execute request to %s: %w", requestURL, err)
		}
	} else {
		if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
			c.logger.Error("Failed to execute price feed request (with default timeout)", zap.String("url", requestURL), zap.Error(err))
			return nil, fmt.Errorf("failed to execute request to %s with default timeout: %w", requestURL, err)
		}
	}

	rawBody := resp.Body()
	if resp.StatusCode() != fasthttp.StatusOK {
		c.logger.Error("Price feed request failed",
			zap.String("url", requestURL),
			zap.Int("statusCode", resp.StatusCode()),
			zap.ByteString("responseBody", rawBody))
		return nil, fmt.Errorf("price feed request to %s failed with status %d", requestURL, resp.StatusCode())
	}

	// Response shape: {"<feed id>": {"usd": <price>}, ...}
	var decoded map[string]map[string]float64
	if err := json.Unmarshal(rawBody, &decoded); err != nil {
		c.logger.Error("Failed to unmarshal price feed response",
			zap.String("url", requestURL),
			zap.ByteString("responseBody", rawBody),
			zap.Error(err))
		return nil, fmt.Errorf("failed to unmarshal price feed response from %s: %w", requestURL, err)
	}

	prices := make(map[string]float64, len(decoded))
	for id, currencies := range decoded {
		if usd, ok := currencies["usd"]; ok {
			prices[id] = usd
		}
	}

	c.logger.Debug("Fetched batched USD prices",
		zap.Int("requested", len(feedIDs)),
		zap.Int("resolved", len(prices)))
	return prices, nil
}
