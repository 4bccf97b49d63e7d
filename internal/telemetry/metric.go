package telemetry

import (
	"gateway/config"
	"gateway/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric struct；未啟用時所有欄位為 nil，呼叫端需自行判斷
type Metric struct {
	HttpRequestsTotal       *prometheus.CounterVec
	HttpRequestDuration     *prometheus.HistogramVec
	ProxySuccessTotal       *prometheus.CounterVec
	ProxyFailTotal          *prometheus.CounterVec
	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration *prometheus.HistogramVec
	AuthDeniedTotal         *prometheus.CounterVec
	UpstreamReachable       prometheus.Gauge
	config                  *config.Configuration
}

// NewMetric 建立所有指標（註冊到 prometheus 預設 registry）
func NewMetric(config *config.Configuration) *Metric {
	return NewMetricWithRegisterer(config, prometheus.DefaultRegisterer)
}

func NewMetricWithRegisterer(config *config.Configuration, registerer prometheus.Registerer) *Metric {
	if config == nil || !config.Telemetry.Metric.Enabled {
		return &Metric{}
	}
	buckets := prometheus.DefBuckets
	if len(config.Telemetry.Metric.Buckets) > 0 {
		buckets = config.Telemetry.Metric.Buckets
	}
	factory := promauto.With(registerer)
	prefix := metricPrefix(config)
	return &Metric{
		config: config,
		HttpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricHttpRequestsTotal),
				Help: "Total received API requests",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		HttpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + string(core.MetricHttpRequestDuration),
				Help:    "End to end request duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelEndpoint),
		),
		ProxySuccessTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricProxySuccessTotal),
				Help: "Successful responses count",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		ProxyFailTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricProxyFailTotal),
				Help: "Failed responses count by error kind",
			},
			labelNames(core.MetricLabelReason),
		),
		UpstreamRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricUpstreamRequestsTotal),
				Help: "Calls made to the upstream API by operation and outcome",
			},
			labelNames(core.MetricLabelOperation, core.MetricLabelOutcome),
		),
		UpstreamRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + string(core.MetricUpstreamRequestDuration),
				Help:    "Upstream API call duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelOperation),
		),
		AuthDeniedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricAuthDeniedTotal),
				Help: "Protected calls denied by the auth gate",
			},
			labelNames(core.MetricLabelReason),
		),
		UpstreamReachable: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: prefix + string(core.MetricUpstreamReachable),
				Help: "1 when the last upstream health probe succeeded",
			},
		),
	}
}

func metricPrefix(config *config.Configuration) string {
	if config.App.Name == "" {
		return ""
	}
	return config.App.Name + "_"
}

// labelNames helper: LabelName slice 轉成 []string
func labelNames(labels ...core.MetricLabelName) []string {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}
	return strs
}
