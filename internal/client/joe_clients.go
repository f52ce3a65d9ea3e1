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

// binPositionsQuery asks the Liquidity Book subgraph for a wallet's
// liquidity-token balances, newest pairs first.
const binPositionsQuery = `query userBins($user: String!) {
  userBinLiquidities(where: {user: $user, liquidity_gt: "0"}, first: 1000) {
    id
    binId
    liquidity
    lbPair {
      id
      binStep
      tokenX { id symbol }
      tokenY { id symbol }
    }
  }
}`

// BinSubgraphClient queries the bin-based DEX's GraphQL subgraph for a
// wallet's liquidity.
type BinSubgraphClient interface {
	GetUserBinLiquidities(ctx context.Context, walletAddress string) ([]entity.UserBinLiquidity, error)
}

// DEXBackendClient is the bin-based DEX's own REST backend, used as the
// fallback when the subgraph has no data or errors.
type DEXBackendClient interface {
	GetUserPositions(ctx context.Context, walletAddress string) ([]entity.JoeUserPosition, error)
}

type binSubgraphClientImpl struct {
	client      *fasthttp.Client
	subgraphURL string
	timeout     time.Duration
	logger      *zap.Logger
}

// NewBinSubgraphClient creates a new instance of binSubgraphClientImpl.
func NewBinSubgraphClient(subgraphURL string, timeout time.Duration, logger *zap.Logger) BinSubgraphClient {
	return &binSubgraphClientImpl{
		client:      &fasthttp.Client{},
		subgraphURL: subgraphURL,
		timeout:     timeout,
		logger:      logger.Named("BinSubgraphClient"),
	}
}

// GetUserBinLiquidities implements the BinSubgraphClient interface.
func (c *binSubgraphClientImpl) GetUserBinLiquidities(ctx context.Context, walletAddress string) ([]entity.UserBinLiquidity, error) {
	body, err := json.Marshal(map[string]interface{}{
		"query": binPositionsQuery,
		"variables": map[string]string{
			"user": strings.ToLower(walletAddress),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal subgraph query: %w", err)
	}

	c.logger.Debug("Querying bin liquidity subgraph",
		zap.String("url", c.subgraphURL),
		zap.String("wallet", walletAddress))

	rawBody, err := c.post(ctx, c.subgraphURL, body)
	if err != nil {
		return nil, err
	}

	var decoded entity.BinPositionsGraphResponse
	if err := json.Unmarshal(rawBody, &decoded); err != nil {
		c.logger.Error("Failed to unmarshal subgraph response", zap.ByteString("responseBody", rawBody), zap.Error(err))
		return nil, fmt.Errorf("failed to unmarshal subgraph response: %w", err)
	}
	if len(decoded.Errors) > 0 {
		c.logger.Warn("Subgraph returned GraphQL errors", zap.String("firstError", decoded.Errors[0].Message))
		return nil, fmt.Errorf("subgraph query failed: %s", decoded.Errors[0].Message)
	}
	if decoded.Data == nil {
		return nil, fmt.Errorf("subgraph returned no data")
	}
	return decoded.Data.UserBinLiquidities, nil
}

func (c *binSubgraphClientImpl) post(ctx context.Context, requestURL string, body []byte) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body)

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

	if resp.StatusCode() != fasthttp.StatusOK {
		c.logger.Error("Subgraph request failed",
			zap.String("url", requestURL),
			zap.Int("statusCode", resp.StatusCode()),
			zap.ByteString("responseBody", resp.Body()))
		return nil, fmt.Errorf("subgraph request to %s failed with status %d", requestURL, resp.StatusCode())
	}

	// Body is reused after release; copy it out.
	out := make([]byte, len(resp.Body()))
	copy(out, resp.Body())
	return out, nil
}

type dexBackendClientImpl struct {
	client  *fasthttp.Client
	baseURL string
	timeout time.Duration
	logger  *zap.Logger
}

// NewDEXBackendClient creates a new instance of dexBackendClientImpl.
func NewDEXBackendClient(baseURL string, timeout time.Duration, logger *zap.Logger) DEXBackendClient {
	return &dexBackendClientImpl{
		client:  &fasthttp.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		logger:  logger.Named("DEXBackendClient"),
	}
}

// GetUserPositions implements the DEXBackendClient interface.
func (c *dexBackendClientImpl) GetUserPositions(ctx context.Context, walletAddress string) ([]entity.JoeUserPosition, error) {
	requestURL := fmt.Sprintf("%s/v1/user/%s/positions", c.baseURL, strings.ToLower(walletAddress))

	c.logger.Debug("Requesting user positions from DEX backend", zap.String("url", requestURL))

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
		c.logger.Error("DEX backend request failed",
			zap.String("url", requestURL),
			zap.Int("statusCode", resp.StatusCode()),
			zap.ByteString("responseBody", rawBody))
		return nil, fmt.Errorf("DEX backend request to %s failed with status %d", requestURL, resp.StatusCode())
	}

	var positions []entity.JoeUserPosition
	if err := json.Unmarshal(rawBody, &positions); err != nil {
		c.logger.Error("Failed to unmarshal DEX backend response", zap.ByteString("responseBody", rawBody), zap.Error(err))
		return nil, fmt.Errorf("failed to unmarshal DEX backend response from %s: %w", requestURL, err)
	}
	return positions, nil
}
