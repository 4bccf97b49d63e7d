package cron

import (
	"context"
	"sync/atomic"
	"testing"

	"gateway/config"
	"gateway/internal/service"
	"gateway/internal/telemetry"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type probeAdapter struct {
	service.Adapter
	configured bool
	probes     atomic.Int32
}

func (a *probeAdapter) Configured() bool { return a.configured }

func (a *probeAdapter) HealthProbe(context.Context) error {
	a.probes.Add(1)
	return nil
}

func newProbeJob(apiKey string, adapter service.Adapter) (*ProbeJob, *service.HealthService) {
	conf := &config.Configuration{OpenAI: config.OpenAI{APIKey: apiKey, ProbeTimeoutSeconds: 1}}
	health := service.NewHealthService(conf, adapter, &telemetry.Metric{}, zap.NewNop())
	return NewProbeJob(zap.NewNop(), conf, health), health
}

func TestProbeJobCachesResult(t *testing.T) {
	adapter := &probeAdapter{configured: true}
	job, health := newProbeJob("sk-live", adapter)

	job.Run()

	require.Equal(t, int32(1), adapter.probes.Load())
	last := health.LastProbe()
	require.NotNil(t, last)
	require.True(t, last.Reachable)
}

func TestProbeJobSkipsWithoutCredential(t *testing.T) {
	adapter := &probeAdapter{configured: false}
	job, health := newProbeJob("", adapter)

	job.Run()

	require.Equal(t, int32(0), adapter.probes.Load())
	require.Nil(t, health.LastProbe())
}
