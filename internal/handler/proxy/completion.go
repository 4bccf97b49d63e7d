package proxy

import (
	"gateway/internal/core"
	"gateway/internal/database/fluentd/repository"
	cErr "gateway/internal/pkg/error"
	"gateway/internal/pkg/request"
	"gateway/internal/pkg/response"
	"gateway/internal/service"
	"gateway/internal/service/completion"
	"gateway/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type CompletionHandler struct {
	trace   *telemetry.Trace
	adapter service.Adapter
	usage   usageRecorder
}

func NewCompletionHandler(
	trace *telemetry.Trace,
	adapter service.Adapter,
	logger *zap.Logger,
	logRepository *repository.LogRepository,
) *CompletionHandler {
	return &CompletionHandler{
		trace:   trace,
		adapter: adapter,
		usage:   usageRecorder{logRepository: logRepository, logger: logger},
	}
}

// Completion 文字補全
// @Summary 文字補全
// @Description 轉送至 OpenAI Completions
// @Tags Proxy
// @Accept json
// @Produce json
// @Param payload body completion.Request true "補全請求內容"
// @Security BearerAuth
// @Success 200 {object} completion.Reply
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Missing credential"
// @Failure 403 {object} response.ErrorResponse "Auth denied"
// @Failure 502 {object} response.ErrorResponse "Upstream rejected or failed"
// @Failure 503 {object} response.ErrorResponse "Upstream not configured"
// @Router /completion [post]
func (handler *CompletionHandler) Completion(c *gin.Context) {
	ctx, span, end := handler.trace.WithSpan(c)
	payload, ok := request.Payload[completion.Request](c)
	if !ok {
		err := cErr.InvalidInput("request body is required")
		end(err)
		response.AbortWithError(c, err)
		return
	}
	span.SetAttributes(attribute.String("ai.model", payload.Model))

	reply, err := handler.adapter.TextCompletion(ctx, payload)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	end(nil)

	handler.usage.record(ctx, c, core.OperationTextCompletion, payload.Model, reply.Usage)
	response.Success(c, reply)
}
