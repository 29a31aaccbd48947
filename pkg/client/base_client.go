package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// maxBodySize caps how much of a provider response is read.
const maxBodySize = 8 << 20

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// BaseClient performs single GET requests. It never retries. When a
// breaker threshold is configured, consecutive transport failures and 5xx
// responses open the breaker and later calls fail fast with ErrCircuitOpen.
type BaseClient struct {
	name           string
	client         HTTPClient
	logger         *zap.Logger
	circuitBreaker *gobreaker.CircuitBreaker
}

type ClientConfig struct {
	Timeout        time.Duration
	Threshold      int
	BreakerTimeout time.Duration
	// HTTPClient overrides the default *http.Client built from Timeout.
	HTTPClient HTTPClient
}

// Response is a completed provider response with its body fully read.
type Response struct {
	StatusCode int
	Body       []byte
}

func NewBaseClient(name string, config ClientConfig, logger *zap.Logger) *BaseClient {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: config.Timeout,
		}
	}

	c := &BaseClient{
		name:   name,
		client: httpClient,
		logger: logger,
	}

	if config.Threshold > 0 {
		threshold := uint32(config.Threshold)
		c.circuitBreaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Interval:    0,
			Timeout:     config.BreakerTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= threshold
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				logger.Info("Circuit breaker state changed",
					zap.String("client", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()))
			},
		})
	}

	return c
}

// Get issues one GET. Any non-2xx status is returned as *UpstreamError.
func (c *BaseClient) Get(ctx context.Context, url string) (*Response, error) {
	if c.circuitBreaker == nil {
		return c.checkStatus(c.do(ctx, url))
	}

	result, err := c.circuitBreaker.Execute(func() (interface{}, error) {
		return c.do(ctx, url)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		c.logger.Warn("Request rejected by circuit breaker",
			zap.String("client", c.name),
			zap.String("url", url))
		return nil, fmt.Errorf("%w: %w", ErrCircuitOpen, err)
	}
	if err != nil {
		return nil, err
	}
	return c.checkStatus(result.(*Response), nil)
}

// do performs the request. Only transport failures and 5xx responses are
// reported as errors here so that the breaker does not count client errors.
func (c *BaseClient) do(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request failed: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("HTTP request failed",
			zap.String("url", url),
			zap.Error(err))
		return nil, fmt.Errorf("request %s: %w", c.name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", c.name, err)
	}

	c.logger.Debug("Request completed",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Int("body_size", len(body)))

	if resp.StatusCode >= 500 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

func (c *BaseClient) checkStatus(resp *Response, err error) (*Response, error) {
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}
	return resp, nil
}
