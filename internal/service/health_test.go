package service

import (
	"context"
	"errors"
	"testing"

	"gateway/config"
	cErr "gateway/internal/pkg/error"
	"gateway/internal/telemetry"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHealthReportUnconfiguredNeverProbes(t *testing.T) {
	a, svc := newCountingAdapter("")
	conf := &config.Configuration{App: config.App{Version: "1.0.0"}}
	h := NewHealthService(conf, a, &telemetry.Metric{}, zap.NewNop())

	_, err := h.Probe(context.Background())
	require.ErrorIs(t, err, ErrProbeSkipped)

	report := h.Report()
	require.Equal(t, "healthy", report.Status)
	require.False(t, report.UpstreamConfigured)
	require.False(t, report.AuthConfigured)
	require.Equal(t, "unavailable", report.OpenAIClient)
	require.Equal(t, "not configured", report.Authentication)
	require.Nil(t, report.UpstreamReachable)
	require.Equal(t, "1.0.0", report.ServiceVersion)
	require.Equal(t, int32(0), svc.calls.Load())
}

func TestHealthProbeCachesResult(t *testing.T) {
	a, svc := newCountingAdapter("sk-live")
	conf := &config.Configuration{
		App:    config.App{Name: "gateway"},
		Auth:   config.Auth{AccessKey: "k"},
		OpenAI: config.OpenAI{APIKey: "sk-live"},
	}
	conf.Telemetry.Metric.Enabled = true
	metric := telemetry.NewMetricWithRegisterer(conf, prometheus.NewRegistry())
	h := NewHealthService(conf, a, metric, zap.NewNop())

	require.Nil(t, h.Report().UpstreamReachable)

	res, err := h.Probe(context.Background())
	require.NoError(t, err)
	require.True(t, res.Reachable)
	require.Equal(t, 1.0, testutil.ToFloat64(metric.UpstreamReachable))

	report := h.Report()
	require.NotNil(t, report.UpstreamReachable)
	require.True(t, *report.UpstreamReachable)
	require.NotNil(t, report.LastProbeAt)
	require.Equal(t, "configured", report.Authentication)

	// Report 只讀快取
	_ = h.Report()
	require.Equal(t, int32(1), svc.calls.Load())
}

type failingAdapter struct{ Adapter }

func (failingAdapter) Configured() bool { return true }

func (failingAdapter) HealthProbe(context.Context) error {
	return cErr.UpstreamTimeout("upstream request timed out")
}

func TestHealthProbeFailure(t *testing.T) {
	conf := &config.Configuration{OpenAI: config.OpenAI{APIKey: "sk-live"}}
	h := NewHealthService(conf, failingAdapter{}, &telemetry.Metric{}, zap.NewNop())

	res, err := h.Probe(context.Background())
	require.Error(t, err)
	var e *cErr.Error
	require.True(t, errors.As(err, &e))
	require.False(t, res.Reachable)
	require.Equal(t, cErr.KindUpstreamError, res.Kind)
	require.False(t, *h.Report().UpstreamReachable)
}
