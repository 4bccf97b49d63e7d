package proxy

import (
	"context"

	"gateway/internal/core"
	"gateway/internal/database/fluentd/model"
	"gateway/internal/database/fluentd/repository"
	"gateway/internal/service/upstream"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// usageRecorder 每次成功的上游呼叫寫一筆 usage log
type usageRecorder struct {
	logRepository *repository.LogRepository
	logger        *zap.Logger
}

func (r usageRecorder) record(ctx context.Context, c *gin.Context, op core.UpstreamOperation, modelName string, usage *upstream.Usage) {
	log := model.UsageLog{
		RequestID: c.GetString(core.ContextRequestIDKey),
		Provider:  string(core.ProviderOpenAI),
		Operation: string(op),
		Model:     modelName,
		Endpoint:  c.FullPath(),
	}
	if usage != nil {
		log.TokensPrompt = usage.PromptTokens
		log.TokensCompletion = usage.CompletionTokens
		log.TokensTotal = usage.TotalTokens
	}
	if err := r.logRepository.LogUsage(ctx, log); err != nil {
		r.logger.Warn("fluentd usage log failed", zap.String("operation", string(op)), zap.Error(err))
	}
}
