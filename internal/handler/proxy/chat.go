package proxy

import (
	"gateway/internal/core"
	"gateway/internal/database/fluentd/repository"
	cErr "gateway/internal/pkg/error"
	"gateway/internal/pkg/request"
	"gateway/internal/pkg/response"
	"gateway/internal/service"
	"gateway/internal/service/chat"
	"gateway/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type ChatHandler struct {
	trace   *telemetry.Trace
	adapter service.Adapter
	usage   usageRecorder
}

func NewChatHandler(
	trace *telemetry.Trace,
	adapter service.Adapter,
	logger *zap.Logger,
	logRepository *repository.LogRepository,
) *ChatHandler {
	return &ChatHandler{
		trace:   trace,
		adapter: adapter,
		usage:   usageRecorder{logRepository: logRepository, logger: logger},
	}
}

// Chat 處理聊天生成請求
// @Summary 聊天生成
// @Description 轉送至 OpenAI Chat Completions，回傳第一個 choice 的內容
// @Tags Proxy
// @Accept json
// @Produce json
// @Param payload body chat.Request true "聊天生成請求內容"
// @Security BearerAuth
// @Success 200 {object} chat.Reply
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Missing credential"
// @Failure 403 {object} response.ErrorResponse "Auth denied"
// @Failure 502 {object} response.ErrorResponse "Upstream rejected or failed"
// @Failure 503 {object} response.ErrorResponse "Upstream not configured"
// @Router /chat [post]
func (handler *ChatHandler) Chat(c *gin.Context) {
	ctx, span, end := handler.trace.WithSpan(c)
	payload, ok := request.Payload[chat.Request](c)
	if !ok {
		err := cErr.InvalidInput("request body is required")
		end(err)
		response.AbortWithError(c, err)
		return
	}
	span.SetAttributes(
		attribute.String("ai.model", payload.Model),
		attribute.Int("chat.messages", len(payload.Messages)),
	)

	reply, err := handler.adapter.ChatCompletion(ctx, payload)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	end(nil)

	handler.usage.record(ctx, c, core.OperationChatCompletion, payload.Model, reply.Usage)
	response.Success(c, reply)
}
