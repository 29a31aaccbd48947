package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/bobby-s-dev/wttr-mcp/internal/models"
	"go.uber.org/zap"
)

const (
	DefaultWttrURL    = "https://wttr.in"
	DefaultWttrFormat = "j1"
)

// WttrClient fetches j1 documents from wttr.in.
type WttrClient struct {
	*BaseClient
	baseURL string
	format  string
}

func NewWttrClient(baseURL, format string, config ClientConfig, logger *zap.Logger) *WttrClient {
	if baseURL == "" {
		baseURL = DefaultWttrURL
	}
	if format == "" {
		format = DefaultWttrFormat
	}
	return &WttrClient{
		BaseClient: NewBaseClient("wttr", config, logger),
		baseURL:    strings.TrimRight(baseURL, "/"),
		format:     format,
	}
}

// URL builds the request URL for location. The location is path-escaped
// and otherwise passed through untouched, empty included.
func (c *WttrClient) URL(location string) string {
	return fmt.Sprintf("%s/%s?format=%s", c.baseURL, url.PathEscape(location), url.QueryEscape(c.format))
}

// GetWeather fetches and decodes the weather for location. Errors are an
// *UpstreamError for non-2xx responses, ErrDecode for bodies that are not a
// JSON object, or a *models.FieldError when the document is incomplete.
func (c *WttrClient) GetWeather(ctx context.Context, location string) (*models.WeatherResponse, error) {
	resp, err := c.Get(ctx, c.URL(location))
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := json.Unmarshal(resp.Body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	weather, err := models.DecodeWeatherResponse(doc)
	if err != nil {
		return nil, fmt.Errorf("map weather response: %w", err)
	}
	return &weather, nil
}
