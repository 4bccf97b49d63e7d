package telemetry

import (
	"testing"

	"gateway/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewMetric_Disabled(t *testing.T) {
	m := NewMetricWithRegisterer(&config.Configuration{}, prometheus.NewRegistry())

	require.Nil(t, m.HttpRequestsTotal)
	require.Nil(t, m.UpstreamRequestsTotal)
	require.Nil(t, m.AuthDeniedTotal)
}

func TestNewMetric_Enabled(t *testing.T) {
	conf := &config.Configuration{App: config.App{Name: "gateway"}}
	conf.Telemetry.Metric.Enabled = true
	reg := prometheus.NewRegistry()

	m := NewMetricWithRegisterer(conf, reg)
	m.UpstreamRequestsTotal.WithLabelValues("chat_completion", "ok").Inc()
	m.AuthDeniedTotal.WithLabelValues("mismatch").Add(2)
	m.UpstreamReachable.Set(1)

	require.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequestsTotal.WithLabelValues("chat_completion", "ok")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.AuthDeniedTotal.WithLabelValues("mismatch")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamReachable))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	require.Contains(t, names, "gateway_upstream_requests_total")
	require.Contains(t, names, "gateway_auth_denied_total")
}
