package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"gateway/config"
	"gateway/internal/core"
	"gateway/internal/database/fluentd/model"
	"gateway/internal/database/fluentd/repository"
	cErr "gateway/internal/pkg/error"
	"gateway/internal/pkg/response"
	"gateway/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Response struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	metric            *telemetry.Metric
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewResponse(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Response {
	return &Response{
		logger:            logger,
		trace:             trace,
		metric:            metric,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

// FormatHandler 將 handler 以 response.Success 放入的 payload 直接輸出為 JSON
func (middleware *Response) FormatHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoint := c.FullPath()
		if isUntraced(endpoint) {
			c.Next()
			return
		}

		requestTime := time.Now()
		if startTime, exists := c.Get(core.ContextRequestStartKey); exists {
			if t, ok := startTime.(time.Time); ok {
				requestTime = t
			}
		} else {
			c.Set(core.ContextRequestStartKey, requestTime)
		}

		// 執行下游
		c.Next()

		// 若已經有錯誤交由 Recovery 處理，或已經寫出回應，就不要再動了
		if len(c.Errors) > 0 || c.Writer.Written() {
			return
		}

		// 以「下游結束後」的狀態碼為準
		statusCode := c.Writer.Status()

		// 若 status >= 400：轉為應用錯誤交給 Recovery 統一輸出（例如 404 無此路由）
		if statusCode >= http.StatusBadRequest {
			response.AbortWithError(c, cErr.MapHttpStatusToError(statusCode, http.StatusText(statusCode)))
			return
		}

		data, exists := c.Get(response.DataKey)
		if !exists {
			// 沒有 payload 也沒有寫出：例如 CORS preflight
			return
		}

		// ---- 成功回應路徑 ----
		ctx, span, end := middleware.trace.WithSpan(middleware.trace.GetTraceContext(c), string(core.SpanResponseMiddleware))
		defer end(nil)

		jsonBytes, err := json.Marshal(data)
		if err != nil {
			// Marshal 失敗視為 500，交給 Recovery 處理
			response.AbortWithError(c, cErr.InternalServer("marshal response failed").Wrap(err))
			return
		}

		duration := time.Since(requestTime)
		traceID := span.SpanContext().TraceID()
		spanID := span.SpanContext().SpanID()
		requestID := c.GetString(core.ContextRequestIDKey)

		// Trace Meta
		middleware.trace.ApplyTraceAttributes(span, core.TraceResponseMeta{
			Path:       c.Request.URL.Path,
			Method:     c.Request.Method,
			Status:     statusCode,
			DurationMs: float64(duration.Milliseconds()),
			Data:       toSafePreview(redactJSON(jsonBytes), 2000),
		})

		// Log
		middleware.logger.Info("[Response] Request Success",
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Int("status", statusCode),
			zap.Duration("duration", duration),
			zap.String("requestId", requestID),
			zap.String("spanId", fmt.Sprintf("%x", spanID[:])),
			zap.String("traceId", fmt.Sprintf("%x", traceID[:])),
		)

		// fluentd 不記錄成功回應的 body（可能含 token 或向量）
		if err := middleware.fluentdRepository.LogResponse(ctx, model.ResponseLog{
			RequestID:  requestID,
			Path:       c.Request.URL.Path,
			Code:       cErr.SUCCESS,
			StatusCode: statusCode,
			DurationMs: duration.Milliseconds(),
			ResponseTS: time.Now().UTC().Format(core.FluentdTimeLayout),
		}); err != nil {
			middleware.logger.Warn("fluentd response log failed", zap.Error(err))
		}

		// Metrics
		if middleware.metric.ProxySuccessTotal != nil {
			middleware.metric.ProxySuccessTotal.
				WithLabelValues(endpoint, strconv.Itoa(statusCode)).
				Inc()
		}

		// 輸出 JSON
		c.Data(statusCode, "application/json; charset=utf-8", jsonBytes)
	}
}
