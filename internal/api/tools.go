package api

import (
	"context"
	"net/http"
	"time"

	"github.com/bobby-s-dev/wttr-mcp/internal/models"
	"github.com/bobby-s-dev/wttr-mcp/internal/services"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

const (
	ServerName    = "MCP Server"
	ServerVersion = "1.0.0"
)

type AddInput struct {
	A int `json:"a" jsonschema:"The first number."`
	B int `json:"b" jsonschema:"The second number."`
}

type SubtractInput struct {
	A int `json:"a" jsonschema:"The number to subtract from."`
	B int `json:"b" jsonschema:"The number to subtract."`
}

type WeatherInput struct {
	Location string `json:"location" jsonschema:"The location to get the weather for. e.g. London or New York."`
}

// IntResult wraps an integer tool result; structured tool output must be an
// object.
type IntResult struct {
	Result int `json:"result"`
}

type ToolRecorder interface {
	RecordToolCall(tool string, err error)
}

type tools struct {
	calculator *services.Calculator
	weather    *services.WeatherService
	recorder   ToolRecorder
}

// NewMCPServer registers add, subtract and get_weather. recorder may be nil.
func NewMCPServer(calculator *services.Calculator, weather *services.WeatherService, recorder ToolRecorder, logger *zap.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: ServerName, Version: ServerVersion}, nil)
	server.AddReceivingMiddleware(loggingMiddleware(logger))

	t := &tools{calculator: calculator, weather: weather, recorder: recorder}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add",
		Description: "Use this to add two numbers together. Returns the sum of the two numbers.",
	}, t.add)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "subtract",
		Description: "Use this to subtract two numbers. Returns the difference of the two numbers.",
	}, t.subtract)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_weather",
		Description: "Use this to get the weather for a given location. Returns current conditions, the nearest area and a multi-day forecast.",
	}, t.getWeather)

	return server
}

// NewMCPHandler serves server over the streamable HTTP transport. Responses
// are plain JSON rather than SSE streams.
func NewMCPHandler(server *mcp.Server, stateless bool) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{
		Stateless:    stateless,
		JSONResponse: true,
	})
}

func (t *tools) add(ctx context.Context, req *mcp.CallToolRequest, in AddInput) (*mcp.CallToolResult, IntResult, error) {
	out := IntResult{Result: t.calculator.Add(in.A, in.B)}
	t.record("add", nil)
	return nil, out, nil
}

func (t *tools) subtract(ctx context.Context, req *mcp.CallToolRequest, in SubtractInput) (*mcp.CallToolResult, IntResult, error) {
	out := IntResult{Result: t.calculator.Subtract(in.A, in.B)}
	t.record("subtract", nil)
	return nil, out, nil
}

func (t *tools) getWeather(ctx context.Context, req *mcp.CallToolRequest, in WeatherInput) (*mcp.CallToolResult, models.WeatherResponse, error) {
	weather, err := t.weather.GetWeather(ctx, in.Location)
	t.record("get_weather", err)
	if err != nil {
		return nil, models.WeatherResponse{}, err
	}
	return nil, *weather, nil
}

func (t *tools) record(tool string, err error) {
	if t.recorder != nil {
		t.recorder.RecordToolCall(tool, err)
	}
}

func loggingMiddleware(logger *zap.Logger) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			logger.Debug("Processing "+method, zap.String("source", "client"))
			start := time.Now()

			result, err := next(ctx, method, req)
			if err != nil {
				logger.Warn("Failed "+method,
					zap.Duration("duration", time.Since(start)),
					zap.Error(err))
				return result, err
			}

			logger.Debug("Completed "+method, zap.Duration("duration", time.Since(start)))
			return result, nil
		}
	}
}
