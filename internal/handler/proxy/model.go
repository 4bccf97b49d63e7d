package proxy

import (
	"gateway/internal/pkg/response"
	"gateway/internal/service"
	"gateway/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

type ModelsHandler struct {
	trace   *telemetry.Trace
	adapter service.Adapter
}

func NewModelsHandler(trace *telemetry.Trace, adapter service.Adapter) *ModelsHandler {
	return &ModelsHandler{trace: trace, adapter: adapter}
}

// ListModels 列出可用模型
// @Summary 模型列表
// @Description 列出上游可用的模型
// @Tags Proxy
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Reply
// @Failure 401 {object} response.ErrorResponse "Missing credential"
// @Failure 403 {object} response.ErrorResponse "Auth denied"
// @Failure 502 {object} response.ErrorResponse "Upstream rejected or failed"
// @Failure 503 {object} response.ErrorResponse "Upstream not configured"
// @Router /models [get]
func (handler *ModelsHandler) ListModels(c *gin.Context) {
	ctx, span, end := handler.trace.WithSpan(c)

	reply, err := handler.adapter.ListModels(ctx)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	span.SetAttributes(attribute.Int("models.count", reply.Count))
	end(nil)

	response.Success(c, reply)
}
