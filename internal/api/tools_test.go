package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/bobby-s-dev/wttr-mcp/internal/metrics"
	"github.com/bobby-s-dev/wttr-mcp/internal/models"
	"github.com/bobby-s-dev/wttr-mcp/internal/services"
	"github.com/bobby-s-dev/wttr-mcp/pkg/client"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestServer builds the MCP server against a fake weather provider.
func newTestServer(t *testing.T, provider http.HandlerFunc) (*mcp.Server, *metrics.Recorder) {
	t.Helper()
	logger := zap.NewNop()

	baseURL := "http://wttr.invalid"
	if provider != nil {
		srv := httptest.NewServer(provider)
		t.Cleanup(srv.Close)
		baseURL = srv.URL
	}

	recorder := metrics.NewRecorder()
	wttr := client.NewWttrClient(baseURL, "", client.ClientConfig{Timeout: 5 * time.Second}, logger)
	weather := services.NewWeatherService(wttr, recorder, logger)
	return NewMCPServer(services.NewCalculator(logger), weather, recorder, logger), recorder
}

func connect(t *testing.T, server *mcp.Server) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ss, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	c := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	cs, err := c.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

func structured[T any](t *testing.T, res *mcp.CallToolResult) T {
	t.Helper()
	require.False(t, res.IsError, "tool returned an error: %v", res.Content)
	data, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

// toolError returns the error text of a failed call, whichever channel the
// SDK used to report it.
func toolError(t *testing.T, res *mcp.CallToolResult, err error) string {
	t.Helper()
	if err != nil {
		return err.Error()
	}
	require.True(t, res.IsError, "expected a tool error")
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "unexpected content %T", res.Content[0])
	return text.Text
}

func toolCalls(t *testing.T, recorder *metrics.Recorder, tool, outcome string) float64 {
	t.Helper()
	families, err := recorder.Registry().Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != "mcp_tool_calls_total" {
			continue
		}
		for _, m := range family.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["tool"] == tool && labels["outcome"] == outcome {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestTools_Add(t *testing.T) {
	server, recorder := newTestServer(t, nil)
	cs := connect(t, server)

	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "add",
		Arguments: map[string]any{"a": 3, "b": 5},
	})
	require.NoError(t, err)
	assert.Equal(t, 8, structured[IntResult](t, res).Result)
	assert.Equal(t, 1.0, toolCalls(t, recorder, "add", metrics.OutcomeOK))
}

func TestTools_Subtract(t *testing.T) {
	server, _ := newTestServer(t, nil)
	cs := connect(t, server)

	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "subtract",
		Arguments: map[string]any{"a": 5, "b": 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, structured[IntResult](t, res).Result)

	res, err = cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "subtract",
		Arguments: map[string]any{"a": -5, "b": 0},
	})
	require.NoError(t, err)
	assert.Equal(t, -5, structured[IntResult](t, res).Result)
}

func TestTools_List(t *testing.T) {
	server, _ := newTestServer(t, nil)
	cs := connect(t, server)

	res, err := cs.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)

	params := map[string][]string{}
	for _, tool := range res.Tools {
		data, err := json.Marshal(tool.InputSchema)
		require.NoError(t, err)
		var schema struct {
			Properties map[string]json.RawMessage `json:"properties"`
		}
		require.NoError(t, json.Unmarshal(data, &schema))
		for name := range schema.Properties {
			params[tool.Name] = append(params[tool.Name], name)
		}
	}

	assert.ElementsMatch(t, []string{"a", "b"}, params["add"])
	assert.ElementsMatch(t, []string{"a", "b"}, params["subtract"])
	assert.ElementsMatch(t, []string{"location"}, params["get_weather"])
	assert.Len(t, params, 3)
}

func TestTools_GetWeather(t *testing.T) {
	fixture, err := os.ReadFile("../models/testdata/london.json")
	require.NoError(t, err)

	var requested string
	server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		requested = r.URL.RequestURI()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(fixture)
	})
	cs := connect(t, server)

	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_weather",
		Arguments: map[string]any{"location": "London"},
	})
	require.NoError(t, err)

	weather := structured[models.WeatherResponse](t, res)
	assert.Equal(t, "/London?format=j1", requested)
	require.Len(t, weather.CurrentCondition, 1)
	assert.Equal(t, "23", weather.CurrentCondition[0].TempC)
	assert.Equal(t, "London", weather.NearestArea[0].AreaName[0].Value)
	require.Len(t, weather.Weather, 2)
	assert.Len(t, weather.Weather[0].Hourly, 2)
}

func TestTools_GetWeatherUpstreamError(t *testing.T) {
	server, recorder := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Unknown location; please try ~51.5,-0.1", http.StatusNotFound)
	})
	cs := connect(t, server)

	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_weather",
		Arguments: map[string]any{"location": "Nowhere"},
	})

	msg := toolError(t, res, err)
	assert.Contains(t, msg, "404")
	assert.Contains(t, msg, "Unknown location")
	assert.Equal(t, 1.0, toolCalls(t, recorder, "get_weather", metrics.OutcomeError))
	assert.Equal(t, 0.0, toolCalls(t, recorder, "get_weather", metrics.OutcomeOK))
}

func TestTools_GetWeatherMappingError(t *testing.T) {
	server, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"current_condition": [{"temp_C": "23"}], "nearest_area": [], "request": [], "weather": []}`))
	})
	cs := connect(t, server)

	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_weather",
		Arguments: map[string]any{"location": "London"},
	})

	msg := toolError(t, res, err)
	assert.Contains(t, msg, "missing field")
	assert.Contains(t, msg, "current_condition[0].FeelsLikeC")
}
