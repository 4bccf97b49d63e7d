package proxy

import (
	"gateway/internal/core"
	"gateway/internal/database/fluentd/repository"
	cErr "gateway/internal/pkg/error"
	"gateway/internal/pkg/request"
	"gateway/internal/pkg/response"
	"gateway/internal/service"
	"gateway/internal/service/images"
	"gateway/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type ImageHandler struct {
	trace   *telemetry.Trace
	adapter service.Adapter
	usage   usageRecorder
}

func NewImageHandler(
	trace *telemetry.Trace,
	adapter service.Adapter,
	logger *zap.Logger,
	logRepository *repository.LogRepository,
) *ImageHandler {
	return &ImageHandler{
		trace:   trace,
		adapter: adapter,
		usage:   usageRecorder{logRepository: logRepository, logger: logger},
	}
}

// Generate 生成圖片
// @Summary 生成圖片
// @Description 以 dall-e-3 生成一張圖片
// @Tags Proxy
// @Accept json
// @Produce json
// @Param payload body images.Request true "圖片生成請求內容"
// @Security BearerAuth
// @Success 200 {object} images.Reply
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Missing credential"
// @Failure 403 {object} response.ErrorResponse "Auth denied"
// @Failure 502 {object} response.ErrorResponse "Upstream rejected or failed"
// @Failure 503 {object} response.ErrorResponse "Upstream not configured"
// @Router /images/generate [post]
func (handler *ImageHandler) Generate(c *gin.Context) {
	ctx, span, end := handler.trace.WithSpan(c)
	payload, ok := request.Payload[images.Request](c)
	if !ok {
		err := cErr.InvalidInput("request body is required")
		end(err)
		response.AbortWithError(c, err)
		return
	}
	span.SetAttributes(
		attribute.String("image.size", string(payload.Size)),
		attribute.String("image.quality", string(payload.Quality)),
	)

	reply, err := handler.adapter.GenerateImage(ctx, payload)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	end(nil)

	handler.usage.record(ctx, c, core.OperationGenerateImage, images.Model, nil)
	response.Success(c, reply)
}
