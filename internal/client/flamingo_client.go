package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dex_gateway/internal/entity"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// PoolsAPIClient serves the public pool list of a simple-LP DEX. There is no
// wallet-scoped query on these chains; the caller reconciles the list
// against the wallet's LP-token holdings itself.
type PoolsAPIClient interface {
	GetPools(ctx context.Context) ([]entity.FlamingoPool, error)
}

type poolsAPIClientImpl struct {
	client  *fasthttp.Client
	baseURL string
	timeout time.Duration
	logger  *zap.Logger
}

// NewPoolsAPIClient creates a new instance of poolsAPIClientImpl.
func NewPoolsAPIClient(baseURL string, timeout time.Duration, logger *zap.Logger) PoolsAPIClient {
	return &poolsAPIClientImpl{
		client:  &fasthttp.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		logger:  logger.Named("PoolsAPIClient"),
	}
}

// GetPools implements the PoolsAPIClient interface.
func (c *poolsAPIClientImpl) GetPools(ctx context.Context) ([]entity.FlamingoPool, error) {
	requestURL := fmt.Sprintf("%s/pools", c.baseURL)

	c.logger.Debug("Requesting pool list", zap.String("url", requestURL))

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if deadline, ok := ctx.Deadline(); ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("failed to execute request to %s: %w", requestURL, err)
		}
	} else {
		if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
			return nil, fmt.Errorf("failed to execute request to %s with default timeout: %w", requestURL, err)
		}
	}

	rawBody := resp.Body()
	if resp.StatusCode() != fasthttp.StatusOK {
		c.logger.Error("Pools API request failed",
			zap.String("url", requestURL),
			zap.Int("statusCode", resp.StatusCode()),
			zap.ByteString("responseBody", rawBody))
		return nil, fmt.Errorf("pools API request to %s failed with status %d", requestURL, resp.StatusCode())
	}

	var pools []entity.FlamingoPool
	if err := json.Unmarshal(rawBody, &pools); err != nil {
		c.logger.Error("Failed to unmarshal pools API response", zap.ByteString("responseBody", rawBody), zap.Error(err))
		return nil, fmt.Errorf("failed to unmarshal pools API response from %s: %w", requestURL, err)
	}
	return pools, nil
}
