package cron

import (
	"context"
	"errors"
	"time"

	"gateway/config"
	"gateway/internal/service"

	"go.uber.org/zap"
)

// ProbeJob 定期檢查上游是否可連線，結果快取在 HealthService
type ProbeJob struct {
	logger        *zap.Logger
	conf          *config.Configuration
	healthService *service.HealthService
}

func NewProbeJob(logger *zap.Logger, conf *config.Configuration, healthService *service.HealthService) *ProbeJob {
	return &ProbeJob{logger: logger, conf: conf, healthService: healthService}
}

// Run implements cron.Job.
func (j *ProbeJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.conf.OpenAI.ProbeTimeout()+time.Second)
	defer cancel()

	res, err := j.healthService.Probe(ctx)
	if errors.Is(err, service.ErrProbeSkipped) {
		return
	}
	if res != nil {
		j.logger.Debug("upstream health probe finished",
			zap.Bool("reachable", res.Reachable),
			zap.Time("checked_at", res.CheckedAt),
		)
	}
}
