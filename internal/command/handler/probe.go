package command

import (
	"context"
	"errors"
	"time"

	"gateway/config"
	"gateway/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errConfigIncomplete = errors.New("configuration incomplete")

type ProbeHandler struct {
	logger        *zap.Logger
	conf          *config.Configuration
	healthService *service.HealthService
}

func NewProbeHandler(logger *zap.Logger, conf *config.Configuration, healthService *service.HealthService) *ProbeHandler {
	return &ProbeHandler{logger: logger, conf: conf, healthService: healthService}
}

// Probe 對上游做一次 health probe；失敗時回傳錯誤讓程式以非 0 結束
func (handler *ProbeHandler) Probe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), handler.conf.OpenAI.ProbeTimeout()+time.Second)
	defer cancel()

	res, err := handler.healthService.Probe(ctx)
	if err != nil {
		handler.logger.Error("upstream health probe failed", zap.Error(err))
		return err
	}
	cmd.Printf("upstream reachable (checked at %s)\n", res.CheckedAt.Format(time.RFC3339))
	return nil
}
