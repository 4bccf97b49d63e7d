package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"gateway/config"
	"gateway/internal/core"
	cErr "gateway/internal/pkg/error"
	"gateway/internal/telemetry"

	"go.uber.org/zap"
)

// 上游回應最大讀取量
const maxResponseBytes = 32 << 20

const (
	OutcomeOK          = "ok"
	OutcomeRejected    = "rejected"
	OutcomeError       = "error"
	OutcomeTimeout     = "timeout"
	OutcomeUnreachable = "unreachable"
	OutcomeMalformed   = "malformed"
	OutcomeNoKey       = "no_credential"
)

// Usage OpenAI 回傳的 token 用量（chat / completion / embedding 共用）
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens"`
}

// Call 描述一次上游呼叫
type Call struct {
	Operation core.UpstreamOperation
	Method    string
	Endpoint  core.OpenAIEndpoint
	APIKey    string
	Body      any
	// 0 代表使用設定檔的預設逾時
	Timeout time.Duration
}

type Client struct {
	httpClient *http.Client
	trace      *telemetry.Trace
	metric     *telemetry.Metric
	logger     *zap.Logger
	baseURL    string
	timeout    time.Duration
}

func NewClient(
	conf *config.Configuration,
	httpClient *http.Client,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	logger *zap.Logger,
) *Client {
	baseURL := strings.TrimRight(conf.OpenAI.BaseURL, "/")
	if baseURL == "" {
		baseURL = config.DefaultOpenAIBaseURL
	}
	return &Client{
		httpClient: httpClient,
		trace:      trace,
		metric:     metric,
		logger:     logger,
		baseURL:    baseURL,
		timeout:    conf.OpenAI.Timeout(),
	}
}

// Do 送出單次請求（不重試），並將結果解碼到 out。
// 失敗分類：
//   - 未提供憑證：ServiceUnavailable（不發出任何連線）
//   - 逾時：UpstreamTimeout
//   - 連線失敗：UpstreamUnreachable
//   - 上游 4xx：UpstreamRejected
//   - 上游 5xx / 其他非 2xx：UpstreamError
//   - 回應解碼失敗：UpstreamResponseError
func (c *Client) Do(ctx context.Context, call Call, out any) (returnedErr error) {
	url := c.baseURL + "/v1" + string(call.Endpoint)
	ctx, span, end := c.trace.WithSpan(ctx, string(core.SpanUpstreamCall)+"."+string(call.Operation))
	defer func() { end(returnedErr) }()

	meta := core.TraceUpstreamMeta{
		Operation: string(call.Operation),
		Provider:  string(core.ProviderOpenAI),
		URL:       url,
		Method:    call.Method,
	}
	start := time.Now()
	defer func() {
		meta.DurationMs = float64(time.Since(start).Milliseconds())
		c.trace.ApplyTraceAttributes(span, meta)
		c.observe(call.Operation, meta.Outcome, time.Since(start))
	}()

	if call.APIKey == "" {
		meta.Outcome = OutcomeNoKey
		return cErr.ServiceUnavailable("OpenAI client not available. Please configure OPENAI_API_KEY.")
	}

	timeout := call.Timeout
	if timeout <= 0 {
		timeout = c.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// 1) 序列化 payload
	var body io.Reader
	if call.Body != nil {
		payload, err := json.Marshal(call.Body)
		if err != nil {
			meta.Outcome = OutcomeError
			return cErr.InternalServer("marshal upstream payload failed").Wrap(err)
		}
		body = bytes.NewReader(payload)
	}

	// 2) 建請
	httpReq, err := http.NewRequestWithContext(ctx, call.Method, url, body)
	if err != nil {
		meta.Outcome = OutcomeError
		return cErr.InternalServer("create http request failed").Wrap(err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+call.APIKey)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Accept-Encoding", AcceptEncoding)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	// 3) 請求（單次，不重試）
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return c.transportError(call.Operation, &meta, err)
	}
	defer resp.Body.Close()

	meta.StatusCode = resp.StatusCode
	meta.Encoding = resp.Header.Get("Content-Encoding")

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return c.transportError(call.Operation, &meta, err)
	}
	decoded, err := Decompress(raw, resp.Header)
	if err != nil {
		meta.Outcome = OutcomeMalformed
		return cErr.UpstreamResponseError("malformed upstream response").Wrap(err)
	}

	// 4) 狀態碼
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.statusError(call.Operation, &meta, resp.StatusCode, decoded)
	}

	// 5) 解析
	if out == nil {
		meta.Outcome = OutcomeOK
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(decoded))
	dec.UseNumber() // 精度安全
	if err := dec.Decode(out); err != nil {
		meta.Outcome = OutcomeMalformed
		c.logger.Warn("decode upstream response failed",
			zap.String("operation", string(call.Operation)),
			zap.String("body", trimBody(decoded)),
			zap.Error(err),
		)
		return cErr.UpstreamResponseError("malformed upstream response").Wrap(err)
	}
	meta.Outcome = OutcomeOK
	return nil
}

func (c *Client) transportError(op core.UpstreamOperation, meta *core.TraceUpstreamMeta, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		meta.Outcome = OutcomeTimeout
		c.logger.Warn("upstream call timed out", zap.String("operation", string(op)), zap.Error(err))
		return cErr.UpstreamTimeout("upstream request timed out").Wrap(err)
	}
	if errors.Is(err, context.Canceled) {
		meta.Outcome = OutcomeError
		return cErr.UpstreamError("upstream request cancelled").Wrap(err)
	}
	meta.Outcome = OutcomeUnreachable
	c.logger.Warn("upstream unreachable", zap.String("operation", string(op)), zap.Error(err))
	return cErr.UpstreamUnreachable("upstream service unreachable").Wrap(err)
}

func (c *Client) statusError(op core.UpstreamOperation, meta *core.TraceUpstreamMeta, status int, body []byte) error {
	apiErr := parseAPIError(body)
	meta.ErrorType = apiErr.Type
	cause := fmt.Errorf("openai non-2xx: %d %s", status, trimBody(body))

	// 原始細節只進 log，不回給 client
	c.logger.Warn("upstream returned error",
		zap.String("operation", string(op)),
		zap.Int("status", status),
		zap.String("error_type", apiErr.Type),
		zap.String("error_code", apiErr.Code),
		zap.String("error_message", trimBody([]byte(apiErr.Message))),
	)

	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		meta.Outcome = OutcomeRejected
		return cErr.UpstreamRejected(sanitizedMessage("upstream rejected the request", status, apiErr)).Wrap(cause)
	}
	meta.Outcome = OutcomeError
	return cErr.UpstreamError(sanitizedMessage("upstream service error", status, apiErr)).Wrap(cause)
}

func (c *Client) observe(op core.UpstreamOperation, outcome string, d time.Duration) {
	if c.metric == nil || c.metric.UpstreamRequestsTotal == nil || c.metric.UpstreamRequestDuration == nil {
		return
	}
	c.metric.UpstreamRequestsTotal.WithLabelValues(string(op), outcome).Inc()
	c.metric.UpstreamRequestDuration.WithLabelValues(string(op)).Observe(d.Seconds())
}

func trimBody(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > 1000 {
		return s[:1000] + "..."
	}
	return s
}
