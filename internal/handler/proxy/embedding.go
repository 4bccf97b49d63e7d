package proxy

import (
	"gateway/internal/core"
	"gateway/internal/database/fluentd/repository"
	cErr "gateway/internal/pkg/error"
	"gateway/internal/pkg/request"
	"gateway/internal/pkg/response"
	"gateway/internal/service"
	"gateway/internal/service/embedding"
	"gateway/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type EmbeddingHandler struct {
	trace   *telemetry.Trace
	adapter service.Adapter
	usage   usageRecorder
}

func NewEmbeddingHandler(
	trace *telemetry.Trace,
	adapter service.Adapter,
	logger *zap.Logger,
	logRepository *repository.LogRepository,
) *EmbeddingHandler {
	return &EmbeddingHandler{
		trace:   trace,
		adapter: adapter,
		usage:   usageRecorder{logRepository: logRepository, logger: logger},
	}
}

// Create 產生文字向量
// @Summary 產生向量
// @Description 轉送至 OpenAI Embeddings，向量原樣回傳並附上維度
// @Tags Proxy
// @Accept json
// @Produce json
// @Param payload body embedding.Request true "向量請求內容"
// @Security BearerAuth
// @Success 200 {object} embedding.Reply
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Missing credential"
// @Failure 403 {object} response.ErrorResponse "Auth denied"
// @Failure 502 {object} response.ErrorResponse "Upstream rejected or failed"
// @Failure 503 {object} response.ErrorResponse "Upstream not configured"
// @Router /embeddings [post]
func (handler *EmbeddingHandler) Create(c *gin.Context) {
	ctx, span, end := handler.trace.WithSpan(c)
	payload, ok := request.Payload[embedding.Request](c)
	if !ok {
		err := cErr.InvalidInput("request body is required")
		end(err)
		response.AbortWithError(c, err)
		return
	}
	span.SetAttributes(attribute.String("ai.model", payload.Model))

	reply, err := handler.adapter.CreateEmbedding(ctx, payload)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	span.SetAttributes(attribute.Int("embedding.dimensions", reply.Dimensions))
	end(nil)

	handler.usage.record(ctx, c, core.OperationCreateEmbedding, payload.Model, reply.Usage)
	response.Success(c, reply)
}
