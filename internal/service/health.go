package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"gateway/config"
	cErr "gateway/internal/pkg/error"
	"gateway/internal/telemetry"

	"go.uber.org/zap"
)

// ErrProbeSkipped 未設定上游憑證時不執行 probe
var ErrProbeSkipped = errors.New("health probe skipped: upstream credential not configured")

type ProbeResult struct {
	Reachable bool
	CheckedAt time.Time
	Kind      cErr.Kind
}

// HealthReport GET /health
type HealthReport struct {
	Status             string     `json:"status" example:"healthy"`
	Message            string     `json:"message" example:"Service is operational. OpenAI: available, Auth: configured"`
	OpenAIClient       string     `json:"openai_client" example:"available"`
	Authentication     string     `json:"authentication" example:"configured"`
	UpstreamConfigured bool       `json:"upstream_configured" example:"true"`
	AuthConfigured     bool       `json:"auth_configured" example:"true"`
	UpstreamReachable  *bool      `json:"upstream_reachable"`
	LastProbeAt        *time.Time `json:"last_probe_at"`
	ServiceVersion     string     `json:"service_version" example:"1.0.0"`
}

type HealthService struct {
	live  atomic.Bool
	ready atomic.Bool
	last  atomic.Pointer[ProbeResult]

	conf    *config.Configuration
	adapter Adapter
	metric  *telemetry.Metric
	logger  *zap.Logger
}

func NewHealthService(
	conf *config.Configuration,
	adapter Adapter,
	metric *telemetry.Metric,
	logger *zap.Logger,
) *HealthService {
	s := &HealthService{conf: conf, adapter: adapter, metric: metric, logger: logger}
	s.live.Store(true)
	s.ready.Store(false) // 啟動完成後再打開
	return s
}

func (s *HealthService) SetReady(v bool) {
	s.ready.Store(v)
}

func (s *HealthService) IsLive() bool {
	return s.live.Load()
}

func (s *HealthService) IsReady() bool {
	return s.ready.Load()
}

// Probe 由排程呼叫；結果快取給 /health 使用，/health 本身不打上游
func (s *HealthService) Probe(ctx context.Context) (*ProbeResult, error) {
	if !s.adapter.Configured() {
		return nil, ErrProbeSkipped
	}

	err := s.adapter.HealthProbe(ctx)
	res := &ProbeResult{Reachable: err == nil, CheckedAt: time.Now().UTC()}
	if err != nil {
		res.Kind = cErr.From(err).Kind()
		s.logger.Warn("upstream health probe failed", zap.String("kind", string(res.Kind)), zap.Error(err))
	}
	s.last.Store(res)

	if s.metric != nil && s.metric.UpstreamReachable != nil {
		if res.Reachable {
			s.metric.UpstreamReachable.Set(1)
		} else {
			s.metric.UpstreamReachable.Set(0)
		}
	}
	return res, err
}

func (s *HealthService) LastProbe() *ProbeResult {
	return s.last.Load()
}

func (s *HealthService) Report() *HealthReport {
	upstreamConfigured := s.conf.UpstreamConfigured()
	authConfigured := s.conf.AuthConfigured()

	report := &HealthReport{
		Status:             "healthy",
		OpenAIClient:       "unavailable",
		Authentication:     "not configured",
		UpstreamConfigured: upstreamConfigured,
		AuthConfigured:     authConfigured,
		ServiceVersion:     s.conf.App.Version,
	}
	if upstreamConfigured {
		report.OpenAIClient = "available"
		if last := s.LastProbe(); last != nil {
			reachable, at := last.Reachable, last.CheckedAt
			report.UpstreamReachable = &reachable
			report.LastProbeAt = &at
		}
	}
	if authConfigured {
		report.Authentication = "configured"
	}
	report.Message = fmt.Sprintf("Service is operational. OpenAI: %s, Auth: %s", report.OpenAIClient, report.Authentication)
	return report
}
