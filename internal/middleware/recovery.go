package middleware

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"
	"unicode/utf8"

	"gateway/config"
	"gateway/internal/core"
	"gateway/internal/database/fluentd/model"
	"gateway/internal/database/fluentd/repository"
	cErr "gateway/internal/pkg/error"
	res "gateway/internal/pkg/response"
	"gateway/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	HeaderRequestID  = "X-Request-ID"
	HeaderAppVersion = "X-App-Version"
)

type Recovery struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	metric            *telemetry.Metric
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewRecovery(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Recovery {
	return &Recovery{
		logger:            logger,
		trace:             trace,
		metric:            metric,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

// ErrorHandler 統一輸出 {"error":{kind,message,code,request_id}}；panic 一律回 500 且不外露細節
func (middleware *Recovery) ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestTime := time.Now()
		if startTime, exists := c.Get(core.ContextRequestStartKey); exists {
			if t, ok := startTime.(time.Time); ok {
				requestTime = t
			}
		}
		id, err := uuid.NewV7()
		if err != nil {
			id = uuid.New()
		}
		requestID := id.String()
		c.Set(core.ContextRequestIDKey, requestID)
		c.Header(HeaderRequestID, requestID)
		c.Header(HeaderAppVersion, middleware.config.App.Version)

		// ---- panic recover 必須在 c.Next() 之前註冊 ----
		defer func() {
			if rec := recover(); rec != nil {
				duration := time.Since(requestTime)

				ctx, span, end := middleware.trace.WithSpan(middleware.trace.GetTraceContext(c), string(core.SpanRecoveryMiddleware))
				traceID := span.SpanContext().TraceID()
				spanID := span.SpanContext().SpanID()

				meta := core.TracePanicMeta{
					Path:       c.Request.URL.Path,
					Method:     c.Request.Method,
					ClientIP:   c.ClientIP(),
					UserAgent:  c.Request.UserAgent(),
					DurationMs: float64(duration.Milliseconds()),
					Message:    toSafeString(fmt.Sprint(rec)),
					Stack:      toSafeStack(debug.Stack()),
					Status:     http.StatusInternalServerError,
				}
				middleware.trace.ApplyTraceAttributes(span, meta)

				middleware.logger.Error("[PANIC] Recovered",
					zap.String("path", meta.Path),
					zap.String("method", meta.Method),
					zap.String("client_ip", meta.ClientIP),
					zap.String("user_agent", meta.UserAgent),
					zap.Duration("duration", duration),
					zap.String("panic", meta.Message),
					zap.String("stacktrace", meta.Stack),
					zap.String("requestId", requestID),
					zap.String("spanId", fmt.Sprintf("%x", spanID[:])),
					zap.String("traceId", fmt.Sprintf("%x", traceID[:])),
				)

				appErr := cErr.InternalServer("internal server error")
				end(appErr)
				// 尚未回寫才輸出
				if !c.Writer.Written() {
					res.FailByErr(c, requestID, appErr)
				}
				middleware.record(ctx, c, requestID, appErr, meta.Message, duration)
				c.Abort()
			}
		}()

		// 執行下游
		c.Next()

		// ---- 統一處理非 panic 的 gin errors（若尚未回寫）----
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		duration := time.Since(requestTime)
		ctx, span, end := middleware.trace.WithSpan(middleware.trace.GetTraceContext(c), string(core.SpanRecoveryMiddleware))
		traceID := span.SpanContext().TraceID()
		spanID := span.SpanContext().SpanID()

		// 找第一個 *cErr.Error；其餘未知錯誤一律視為 internal
		appErr := cErr.From(c.Errors[0].Err)
		for _, e := range c.Errors {
			if v, ok := e.Err.(*cErr.Error); ok {
				appErr = v
				break
			}
		}

		middleware.trace.ApplyTraceAttributes(span, core.TraceErrorMeta{
			Code:       appErr.ErrorCode(),
			Kind:       string(appErr.Kind()),
			Message:    appErr.Message(),
			Status:     appErr.HttpCode(),
			DurationMs: float64(duration.Milliseconds()),
		})
		fields := []zap.Field{
			zap.Int("code", appErr.ErrorCode()),
			zap.String("kind", string(appErr.Kind())),
			zap.Int("status", appErr.HttpCode()),
			zap.String("path", c.Request.URL.Path),
			zap.Duration("duration", duration),
			zap.String("requestId", requestID),
			zap.String("spanId", fmt.Sprintf("%x", spanID[:])),
			zap.String("traceId", fmt.Sprintf("%x", traceID[:])),
		}
		if cause := appErr.Unwrap(); cause != nil {
			fields = append(fields, zap.NamedError("cause", cause))
		}
		if appErr.HttpCode() >= http.StatusInternalServerError {
			middleware.logger.Warn(appErr.Error(), fields...)
		} else {
			middleware.logger.Info(appErr.Error(), fields...)
		}
		end(appErr)

		res.FailByErr(c, requestID, appErr)
		middleware.record(ctx, c, requestID, appErr, appErr.Error(), duration)
		c.Abort()
	}
}

// record 失敗回應的 fluentd 紀錄與 metric
func (middleware *Recovery) record(ctx context.Context, c *gin.Context, requestID string, appErr *cErr.Error, detail string, duration time.Duration) {
	if err := middleware.fluentdRepository.LogResponse(ctx, model.ResponseLog{
		RequestID:  requestID,
		Path:       c.Request.URL.Path,
		Code:       appErr.ErrorCode(),
		Kind:       string(appErr.Kind()),
		StatusCode: appErr.HttpCode(),
		Error:      toSafeString(detail),
		DurationMs: duration.Milliseconds(),
		ResponseTS: time.Now().UTC().Format(core.FluentdTimeLayout),
	}); err != nil {
		middleware.logger.Warn("fluentd response log failed", zap.Error(err))
	}
	if middleware.metric.ProxyFailTotal != nil {
		middleware.metric.ProxyFailTotal.WithLabelValues(string(appErr.Kind())).Inc()
	}
}

// ---- helpers ----

func toSafeString(s string) string {
	const max = 8000
	if utf8.ValidString(s) {
		if len(s) > max {
			return s[:max] + "…"
		}
		return s
	}
	b := []byte(s)
	if len(b) > max {
		b = b[:max]
	}
	return "b64:" + base64.StdEncoding.EncodeToString(b)
}

func toSafeStack(b []byte) string {
	const max = 16000
	if utf8.Valid(b) {
		if len(b) > max {
			return string(b[:max]) + "…"
		}
		return string(b)
	}
	if len(b) > max {
		b = b[:max]
	}
	return "b64:" + base64.StdEncoding.EncodeToString(b)
}
