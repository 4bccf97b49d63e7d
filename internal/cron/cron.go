package cron

import (
	"context"

	"gateway/config"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron, NewProbeJob)

type Cron struct {
	logger   *zap.Logger
	conf     *config.Configuration
	server   *cron.Cron
	probeJob *ProbeJob
}

// NewCron .
func NewCron(logger *zap.Logger, conf *config.Configuration, probeJob *ProbeJob) *Cron {
	server := cron.New(
		cron.WithSeconds(),
		cron.WithChain(
			cron.Recover(cron.DefaultLogger),
			cron.SkipIfStillRunning(cron.DefaultLogger),
		),
	)

	return &Cron{
		logger:   logger,
		conf:     conf,
		server:   server,
		probeJob: probeJob,
	}
}

// Run 未設定上游憑證時不排 probe（/health 會回報 upstream_configured=false）
func (c *Cron) Run() error {
	if c.conf.UpstreamConfigured() {
		spec := c.conf.OpenAI.ProbeCron
		if spec == "" {
			spec = config.DefaultProbeCron
		}
		if _, err := c.server.AddJob(spec, c.probeJob); err != nil {
			return err
		}
		c.logger.Info("upstream health probe scheduled", zap.String("spec", spec))
		// 啟動時先跑一次，讓 /health 盡早有結果
		go c.probeJob.Run()
	} else {
		c.logger.Warn("upstream health probe disabled: OPENAI_API_KEY not configured")
	}

	c.server.Start()
	return nil
}

func (c *Cron) Stop(ctx context.Context) error {
	stopped := c.server.Stop()
	select {
	case <-stopped.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
