package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
// 專案全域建議都寫這裡，方便集中管理
type TraceSpanName string

const (
	SpanLoggerMiddleware   TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware     TraceSpanName = "cors_middleware"
	SpanResponseMiddleware TraceSpanName = "response_middleware"
	SpanAuthMiddleware     TraceSpanName = "auth_middleware"
	SpanUpstreamCall       TraceSpanName = "upstream_call"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal       MetricName = "requests_total"
	MetricHttpRequestDuration     MetricName = "request_duration_seconds"
	MetricProxySuccessTotal       MetricName = "proxy_success_total"
	MetricProxyFailTotal          MetricName = "proxy_fail_total"
	MetricUpstreamRequestsTotal   MetricName = "upstream_requests_total"
	MetricUpstreamRequestDuration MetricName = "upstream_request_duration_seconds"
	MetricAuthDeniedTotal         MetricName = "auth_denied_total"
	MetricUpstreamReachable       MetricName = "upstream_reachable"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint  MetricLabelName = "endpoint"
	MetricLabelStatus    MetricLabelName = "status"
	MetricLabelReason    MetricLabelName = "reason"
	MetricLabelOperation MetricLabelName = "operation"
	MetricLabelOutcome   MetricLabelName = "outcome"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Body       string            `trace:"request.body"`
	Scheme     string            `trace:"http.scheme"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"response.latency_ms"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"error.message"`
	Stack      string  `trace:"error.stack"`
}

type TraceErrorMeta struct {
	Code       int     `trace:"error.code"`
	Kind       string  `trace:"error.kind"`
	Message    string  `trace:"error.message"`
	Status     int     `trace:"http.status_code"`
	DurationMs float64 `trace:"response.latency_ms"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	DurationMs float64 `trace:"response.latency_ms"`
	Data       string  `trace:"response.data_preview"`
}

type TraceHttpServerMeta struct {
	// request side
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"http.request.path"`
	UrlScheme         string `trace:"http.request.url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanTraceID       string `trace:"span.trace_id"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
}

type TraceAuthMiddlewareMeta struct {
	Where      string `trace:"auth.where"`
	ClientIP   string `trace:"net.peer.ip,omitempty"`
	Credential string `trace:"auth.credential_masked,omitempty"`
	Status     string `trace:"auth.status,omitempty"`
}

type TraceUpstreamMeta struct {
	Operation  string  `trace:"ai.operation"`
	Provider   string  `trace:"ai.provider"`
	URL        string  `trace:"http.url"`
	Method     string  `trace:"http.method"`
	StatusCode int     `trace:"http.status_code"`
	Encoding   string  `trace:"http.response.content_encoding"`
	ErrorType  string  `trace:"ai.error.type"`
	Outcome    string  `trace:"ai.outcome"`
	DurationMs float64 `trace:"ai.latency_ms"`
}

