package metrics

import (
	"errors"
	"time"

	"github.com/bobby-s-dev/wttr-mcp/internal/models"
	"github.com/bobby-s-dev/wttr-mcp/pkg/client"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Fetch outcomes reported on weather_fetch_total.
const (
	OutcomeOK             = "ok"
	OutcomeError          = "error"
	OutcomeUpstreamError  = "upstream_error"
	OutcomeDecodeError    = "decode_error"
	OutcomeMappingError   = "mapping_error"
	OutcomeBreakerOpen    = "breaker_open"
	OutcomeTransportError = "transport_error"
)

// Recorder owns a private registry so tests and multiple servers in one
// process do not collide on the default one.
type Recorder struct {
	registry *prometheus.Registry

	toolCalls     *prometheus.CounterVec
	fetches       *prometheus.CounterVec
	fetchDuration prometheus.Histogram
}

func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Recorder{
		registry: registry,
		toolCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mcp_tool_calls_total",
			Help: "Total MCP tool calls by tool and outcome.",
		}, []string{"tool", "outcome"}),
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "weather_fetch_total",
			Help: "Total weather provider fetches by outcome.",
		}, []string{"outcome"}),
		fetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "weather_fetch_duration_seconds",
			Help:    "Duration of weather provider fetches, decode included.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	registry.MustRegister(r.toolCalls)
	registry.MustRegister(r.fetches)
	registry.MustRegister(r.fetchDuration)

	return r
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) RecordToolCall(tool string, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	r.toolCalls.WithLabelValues(tool, outcome).Inc()
}

func (r *Recorder) RecordFetch(duration time.Duration, err error) {
	r.fetches.WithLabelValues(FetchOutcome(err)).Inc()
	r.fetchDuration.Observe(duration.Seconds())
}

// FetchOutcome classifies a WttrClient error.
func FetchOutcome(err error) string {
	var upstream *client.UpstreamError
	var field *models.FieldError
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, client.ErrCircuitOpen):
		return OutcomeBreakerOpen
	case errors.As(err, &upstream):
		return OutcomeUpstreamError
	case errors.Is(err, client.ErrDecode):
		return OutcomeDecodeError
	case errors.As(err, &field):
		return OutcomeMappingError
	default:
		return OutcomeTransportError
	}
}
