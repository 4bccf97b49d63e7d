package middleware

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"strings"
	"time"
	"unicode/utf8"

	"gateway/config"
	"gateway/internal/core"
	"gateway/internal/database/fluentd/model"
	"gateway/internal/database/fluentd/repository"
	"gateway/internal/telemetry"
	"gateway/utils/secret"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 只記錄遮罩後的值
var sensitiveHeaders = map[string]struct{}{
	"authorization": {},
	"x-api-key":     {},
	"cookie":        {},
}

var sensitiveBodyKeys = []string{"access_key", "token"}

type Logger struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewLogger(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Logger {
	return &Logger{
		logger:            logger,
		trace:             trace,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

// LoggerHandler 記錄每個請求的詳細資訊（避免讀取二進位 body；文字 body 做安全截斷與 UTF-8 處理）
func (m *Logger) LoggerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoint := c.FullPath()
		if isUntraced(endpoint) || c.Request.Method == "OPTIONS" {
			c.Next()
			return
		}

		ctx, span, end := m.trace.WithSpan(m.trace.GetTraceContext(c), string(core.SpanLoggerMiddleware))

		requestTime := time.Now().UTC()
		if startTime, exists := c.Get(core.ContextRequestStartKey); exists {
			if t, ok := startTime.(time.Time); ok {
				requestTime = t
			}
		}

		// ===== 判斷 content-type，二進位不讀 body =====
		mediaType, _, _ := mime.ParseMediaType(c.GetHeader("Content-Type"))
		var bodyRaw string
		if isBinaryContent(mediaType) {
			bodyRaw = fmt.Sprintf("(binary %s, %d bytes)", mediaType, c.Request.ContentLength)
		} else if c.Request.Body != nil && c.Request.ContentLength != 0 {
			// 讀完整 body 後回填，確保下游仍可讀取
			data, _ := io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(data))
			// JSON 綁定不看 Content-Type，所有文字 body 都要遮罩
			bodyRaw = toSafePreview(redactJSON(data), 2000)
		}

		method := c.Request.Method
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		traceID := span.SpanContext().TraceID()
		spanID := span.SpanContext().SpanID()

		// headers → map[string]string（lowercase key）
		headerMap := make(map[string]string, len(c.Request.Header))
		for k, v := range c.Request.Header {
			lk := strings.ToLower(k)
			value := strings.Join(v, ",")
			if _, ok := sensitiveHeaders[lk]; ok {
				value = secret.Mask(value)
			}
			headerMap[lk] = value
		}

		m.trace.ApplyTraceAttributes(span, core.LoggerRequestMeta{
			Method:     method,
			Path:       path,
			FullPath:   endpoint,
			Query:      query,
			Body:       bodyRaw,
			Scheme:     c.Request.URL.Scheme,
			Host:       c.Request.Host,
			UserAgent:  c.Request.UserAgent(),
			ContentLen: c.Request.ContentLength,
			Proto:      c.Request.Proto,
			ClientIP:   c.ClientIP(),
			Headers:    headerMap,
		})

		logFields := []zap.Field{
			zap.String("method", method),
			zap.String("path", path),
			zap.Any("headers", headerMap),
		}
		if query != "" {
			logFields = append(logFields, zap.String("query", query))
		}
		if bodyRaw != "" {
			logFields = append(logFields, zap.String("body", bodyRaw))
		}
		logFields = append(logFields,
			zap.String("spanId", fmt.Sprintf("%x", spanID[:])),
			zap.String("traceId", fmt.Sprintf("%x", traceID[:])),
		)
		m.logger.Info("[Request] logging middleware message", logFields...)

		// Fluentd
		if err := m.fluentdRepository.LogRequest(ctx, model.RequestLog{
			RequestID: fmt.Sprintf("%x", traceID[:]),
			Method:    method,
			Path:      path,
			RequestTS: requestTime.Format(core.FluentdTimeLayout),
			Body:      bodyRaw,
			IPHash:    secret.Fingerprint(c.ClientIP(), m.config.App.Name),
			UserAgent: c.Request.UserAgent(),
		}); err != nil {
			m.logger.Warn("fluentd request log failed", zap.Error(err))
		}
		end(nil)
		c.Next()
	}
}

// redactJSON 將敏感欄位改為遮罩值；非 JSON object 原樣回傳
func redactJSON(data []byte) []byte {
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		return data
	}
	changed := false
	for _, k := range sensitiveBodyKeys {
		if v, ok := body[k].(string); ok {
			body[k] = secret.Mask(v)
			changed = true
		}
	}
	if !changed {
		return data
	}
	out, err := json.Marshal(body)
	if err != nil {
		return data
	}
	return out
}

// 僅對文字內容做安全預覽：UTF-8 直接截斷；非 UTF-8 以 Base64 表示
func toSafePreview(b []byte, max int) string {
	if len(b) == 0 {
		return ""
	}
	if utf8.Valid(b) {
		if len(b) > max {
			return string(b[:max]) + "…"
		}
		return string(b)
	}
	// 非 UTF-8 -> base64（先截斷，避免輸出過大）
	if len(b) > max {
		b = b[:max]
	}
	return "b64:" + base64.StdEncoding.EncodeToString(b)
}

// 是否為二進位內容（不讀 body）
func isBinaryContent(mediaType string) bool {
	return strings.HasPrefix(mediaType, "multipart/") ||
		strings.HasPrefix(mediaType, "image/") ||
		strings.HasPrefix(mediaType, "audio/") ||
		strings.HasPrefix(mediaType, "video/") ||
		mediaType == "application/octet-stream"
}
