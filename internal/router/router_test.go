package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"gateway/config"
	"gateway/internal/database/client"
	"gateway/internal/database/fluentd/repository"
	"gateway/internal/handler"
	"gateway/internal/handler/proxy"
	"gateway/internal/middleware"
	"gateway/internal/pkg/response"
	"gateway/internal/service"
	"gateway/internal/service/auth"
	"gateway/internal/service/chat"
	"gateway/internal/service/completion"
	"gateway/internal/service/embedding"
	"gateway/internal/service/images"
	"gateway/internal/service/models"
	"gateway/internal/service/upstream"
	"gateway/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeOpenAI struct {
	srv    *httptest.Server
	calls  atomic.Int32
	status int
}

func newFakeOpenAI(t *testing.T) *fakeOpenAI {
	t.Helper()
	f := &fakeOpenAI{status: http.StatusOK}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if f.status != http.StatusOK {
			w.WriteHeader(f.status)
			_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached for sk-live-abc","type":"requests","code":"rate_limit_exceeded"}}`))
			return
		}
		switch r.URL.Path {
		case "/v1/chat/completions":
			_, _ = w.Write([]byte(`{"id":"chatcmpl-1","object":"chat.completion","model":"gpt-3.5-turbo","choices":[{"index":0,"message":{"role":"assistant","content":"hi there"},"finish_reason":"stop"}],"usage":{"prompt_tokens":3,"completion_tokens":2,"total_tokens":5}}`))
		case "/v1/completions":
			_, _ = w.Write([]byte(`{"id":"cmpl-1","choices":[{"text":"once upon a time","index":0}],"usage":{"prompt_tokens":2,"completion_tokens":4,"total_tokens":6}}`))
		case "/v1/images/generations":
			_, _ = w.Write([]byte(`{"created":1,"data":[{"url":"https://img.example.com/1.png","revised_prompt":"a red fox"}]}`))
		case "/v1/embeddings":
			_, _ = w.Write([]byte(`{"object":"list","data":[{"object":"embedding","embedding":[0.1,0.2,0.3,0.4,0.5],"index":0}],"model":"text-embedding-ada-002","usage":{"prompt_tokens":4,"total_tokens":4}}`))
		case "/v1/models":
			_, _ = w.Write([]byte(`{"object":"list","data":[{"id":"gpt-4o","object":"model","created":1,"owned_by":"system"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(f.srv.Close)
	return f
}

type testApp struct {
	engine   *gin.Engine
	upstream *fakeOpenAI
	health   *service.HealthService
}

func newTestApp(t *testing.T, accessKey, apiKey string, mutate ...func(*config.Configuration)) *testApp {
	t.Helper()
	return newTestAppWithLogger(t, zap.NewNop(), accessKey, apiKey, mutate...)
}

func newTestAppWithLogger(t *testing.T, logger *zap.Logger, accessKey, apiKey string, mutate ...func(*config.Configuration)) *testApp {
	t.Helper()
	fake := newFakeOpenAI(t)
	conf := &config.Configuration{
		App:    config.App{Env: "test", Name: "gateway", Version: "1.0.0"},
		Auth:   config.Auth{AccessKey: accessKey},
		OpenAI: config.OpenAI{APIKey: apiKey, BaseURL: fake.srv.URL, TimeoutSeconds: 5, ProbeTimeoutSeconds: 2},
	}
	conf.Telemetry.Metric.Enabled = true
	for _, m := range mutate {
		m(conf)
	}

	trace := &telemetry.Trace{}
	metric := telemetry.NewMetricWithRegisterer(conf, prometheus.NewRegistry())
	fluent, cleanup, err := client.NewFluentdClient(logger, conf)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	logRepository := repository.NewLogRepository(conf, fluent)

	up := upstream.NewClient(conf, &http.Client{}, trace, metric, logger)
	adapter := service.NewOpenAIAdapter(conf,
		chat.NewOpenAIService(up),
		completion.NewOpenAIService(up),
		images.NewOpenAIService(up),
		embedding.NewOpenAIService(up),
		models.NewOpenAIService(up),
	)
	authService := auth.NewAuthService(auth.NewAccessKeyGate(conf), metric, logger)
	health := service.NewHealthService(conf, adapter, metric, logger)

	engine := NewRouter(conf,
		middleware.NewTraceEntry(trace, metric, conf),
		middleware.NewRecovery(logger, trace, metric, conf, logRepository),
		middleware.NewCors(trace),
		middleware.NewLogger(logger, trace, conf, logRepository),
		middleware.NewResponse(logger, trace, metric, conf, logRepository),
		NewProxyRouter(
			proxy.NewChatHandler(trace, adapter, logger, logRepository),
			proxy.NewCompletionHandler(trace, adapter, logger, logRepository),
			proxy.NewImageHandler(trace, adapter, logger, logRepository),
			proxy.NewEmbeddingHandler(trace, adapter, logger, logRepository),
			proxy.NewModelsHandler(trace, adapter),
			middleware.NewAuth(trace, authService),
		),
		NewAuthRouter(handler.NewAuthHandler(trace, authService)),
		NewHealthRouter(handler.NewHealthHandler(health, conf)),
	)
	return &testApp{engine: engine, upstream: fake, health: health}
}

func (a *testApp) do(method, target, bearer string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var env response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env.Error
}

var chatBody = map[string]any{
	"model":    "gpt-3.5-turbo",
	"messages": []map[string]string{{"role": "user", "content": "hello"}},
}

func TestHealthWithoutUpstreamKey(t *testing.T) {
	app := newTestApp(t, "secret123", "")

	w := app.do(http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var report service.HealthReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	require.False(t, report.UpstreamConfigured)
	require.True(t, report.AuthConfigured)
	require.Equal(t, "unavailable", report.OpenAIClient)
	require.Nil(t, report.UpstreamReachable)
	require.Equal(t, int32(0), app.upstream.calls.Load())
}

func TestHealthNeverCallsUpstream(t *testing.T) {
	app := newTestApp(t, "", "sk-test")

	w := app.do(http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"upstream_configured":true`)
	require.Contains(t, w.Body.String(), `"auth_configured":false`)
	require.Equal(t, int32(0), app.upstream.calls.Load())
	require.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
}

func TestAuthIssuesAccessKeyAsToken(t *testing.T) {
	app := newTestApp(t, "secret123", "sk-test")

	w := app.do(http.MethodPost, "/auth", "", map[string]string{"access_key": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	var reply auth.LoginReply
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	require.True(t, reply.Authenticated)
	require.Equal(t, "secret123", reply.Token)

	w = app.do(http.MethodPost, "/auth", "", map[string]string{"access_key": "wrong"})
	require.Contains(t, []int{http.StatusUnauthorized, http.StatusForbidden}, w.Code)
	body := decodeError(t, w)
	require.Equal(t, "auth_denied", string(body.Kind))
	require.NotContains(t, w.Body.String(), "secret123")

	w = app.do(http.MethodPost, "/auth", "", map[string]string{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, int32(0), app.upstream.calls.Load())
}

func TestAuthWithoutAccessKeyConfigured(t *testing.T) {
	app := newTestApp(t, "", "sk-test")

	w := app.do(http.MethodPost, "/auth", "", map[string]string{"access_key": "anything"})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = app.do(http.MethodPost, "/chat", "anything", chatBody)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, int32(0), app.upstream.calls.Load())
}

func TestProtectedRoutesRejectBeforeUpstream(t *testing.T) {
	app := newTestApp(t, "secret123", "sk-test")

	cases := []struct {
		name   string
		method string
		target string
		body   any
	}{
		{"chat", http.MethodPost, "/chat", chatBody},
		{"completion", http.MethodPost, "/completion", map[string]any{"prompt": "tell a story"}},
		{"image", http.MethodPost, "/images/generate", map[string]any{"prompt": "a fox", "size": "1024x1024", "quality": "standard"}},
		{"embedding", http.MethodPost, "/embeddings", map[string]any{"model": "text-embedding-ada-002", "input": "hello"}},
		{"models", http.MethodGet, "/models", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := app.do(tc.method, tc.target, "", tc.body)
			require.Equal(t, http.StatusUnauthorized, w.Code)
			require.Equal(t, "auth_denied", string(decodeError(t, w).Kind))

			w = app.do(tc.method, tc.target, "nope", tc.body)
			require.Equal(t, http.StatusForbidden, w.Code)
		})
	}
	require.Equal(t, int32(0), app.upstream.calls.Load())
}

func TestUnconfiguredUpstreamReturns503(t *testing.T) {
	app := newTestApp(t, "secret123", "")

	w := app.do(http.MethodPost, "/chat", "secret123", chatBody)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := decodeError(t, w)
	require.Equal(t, "service_unavailable", string(body.Kind))
	require.Contains(t, body.Message, "OPENAI_API_KEY")

	w = app.do(http.MethodGet, "/models", "secret123", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Equal(t, int32(0), app.upstream.calls.Load())
}

func TestValidationRunsBeforeAuth(t *testing.T) {
	app := newTestApp(t, "secret123", "sk-test")

	empty := map[string]any{"model": "gpt-3.5-turbo", "messages": []any{}}
	w := app.do(http.MethodPost, "/chat", "", empty)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "invalid_input", string(decodeError(t, w).Kind))

	w = app.do(http.MethodPost, "/chat", "secret123", empty)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "messages must not be empty", decodeError(t, w).Message)

	hot := map[string]any{"model": "gpt-3.5-turbo", "messages": chatBody["messages"], "temperature": 5}
	w = app.do(http.MethodPost, "/chat", "secret123", hot)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "temperature must be between 0 and 2", decodeError(t, w).Message)

	w = app.do(http.MethodPost, "/images/generate", "secret123", map[string]any{"prompt": "a fox", "size": "512x512", "quality": "standard"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(http.MethodPost, "/images/generate", "secret123", map[string]any{"prompt": "a fox", "size": "1024x1024", "quality": "standard", "n": 2})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "n must be 1", decodeError(t, w).Message)

	w = app.do(http.MethodPost, "/completion", "secret123", map[string]any{"prompt": "   "})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "prompt must not be empty", decodeError(t, w).Message)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.engine.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	require.Equal(t, int32(0), app.upstream.calls.Load())
}

func TestChatSuccess(t *testing.T) {
	app := newTestApp(t, "secret123", "sk-test")

	w := app.do(http.MethodPost, "/chat", "secret123", chatBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var reply chat.Reply
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	require.Equal(t, "hi there", reply.Message)
	require.Equal(t, "gpt-3.5-turbo", reply.Model)
	require.NotNil(t, reply.Usage)
	require.Equal(t, 5, reply.Usage.TotalTokens)
	require.Equal(t, int32(1), app.upstream.calls.Load())
}

func TestCompletionImageAndModels(t *testing.T) {
	app := newTestApp(t, "secret123", "sk-test")

	w := app.do(http.MethodPost, "/completion", "secret123", map[string]any{"prompt": "tell a story"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Contains(t, w.Body.String(), "once upon a time")

	w = app.do(http.MethodPost, "/images/generate", "secret123", map[string]any{"prompt": "a fox", "size": "1024x1024", "quality": "hd"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var img images.Reply
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &img))
	require.Equal(t, "https://img.example.com/1.png", img.URL)
	require.Equal(t, images.ImageQualityHD, img.Quality)

	w = app.do(http.MethodGet, "/models", "secret123", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var list models.Reply
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, 1, list.Count)
	require.Equal(t, "gpt-4o", list.Models[0].ID)

	require.Equal(t, int32(3), app.upstream.calls.Load())
}

func TestEmbeddingDimensionsMatchVector(t *testing.T) {
	app := newTestApp(t, "secret123", "sk-test")

	w := app.do(http.MethodPost, "/embeddings", "secret123", map[string]any{"model": "text-embedding-ada-002", "input": "hello"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var reply embedding.Reply
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	require.Len(t, reply.Embeddings, 1)
	require.Equal(t, len(reply.Embeddings[0]), reply.Dimensions)
	require.Equal(t, 5, reply.Dimensions)
}

func TestUpstreamRateLimitIsNotRetried(t *testing.T) {
	app := newTestApp(t, "secret123", "sk-test")
	app.upstream.status = http.StatusTooManyRequests

	w := app.do(http.MethodPost, "/chat", "secret123", chatBody)
	require.NotEqual(t, http.StatusOK, w.Code)
	body := decodeError(t, w)
	require.Equal(t, "upstream_rejected", string(body.Kind))
	require.NotContains(t, body.Message, "sk-live-abc")
	require.Equal(t, int32(1), app.upstream.calls.Load())
}

func TestUpstreamServerErrorIsNotRetried(t *testing.T) {
	app := newTestApp(t, "secret123", "sk-test")
	app.upstream.status = http.StatusInternalServerError

	w := app.do(http.MethodPost, "/embeddings", "secret123", map[string]any{"model": "text-embedding-ada-002", "input": "hello"})
	require.Equal(t, http.StatusBadGateway, w.Code)
	require.Equal(t, "upstream_error", string(decodeError(t, w).Kind))
	require.Equal(t, int32(1), app.upstream.calls.Load())
}

func TestUnknownRouteUsesErrorEnvelope(t *testing.T) {
	app := newTestApp(t, "secret123", "sk-test")

	w := app.do(http.MethodGet, "/nope", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "not_found", string(decodeError(t, w).Kind))
}

func TestStaticIndex(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>gateway</html>"), 0o644))
	app := newTestApp(t, "secret123", "sk-test", func(c *config.Configuration) { c.App.StaticDir = dir })

	w := app.do(http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "gateway")

	missing := newTestApp(t, "secret123", "sk-test", func(c *config.Configuration) { c.App.StaticDir = t.TempDir() })
	w = missing.do(http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "not_found", string(decodeError(t, w).Kind))
}

func TestReadiness(t *testing.T) {
	app := newTestApp(t, "secret123", "sk-test")

	w := app.do(http.MethodGet, "/health/readiness", "", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	app.health.SetReady(true)
	w = app.do(http.MethodGet, "/health/readiness", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestPanicBecomesGenericInternalError(t *testing.T) {
	app := newTestApp(t, "secret123", "sk-test")
	app.engine.GET("/boom", func(c *gin.Context) {
		panic("secret detail from db driver")
	})

	w := app.do(http.MethodGet, "/boom", "", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeError(t, w)
	require.Equal(t, "internal_error", string(body.Kind))
	require.Equal(t, "internal server error", body.Message)
	require.NotEmpty(t, body.RequestID)
	require.NotContains(t, w.Body.String(), "secret detail")
}

func TestAccessKeyNeverLoggedVerbatim(t *testing.T) {
	const accessKey = "super-secret-access-key-123"
	core, logs := observer.New(zap.DebugLevel)
	app := newTestAppWithLogger(t, zap.New(core), accessKey, "sk-test")

	for _, contentType := range []string{"", "text/plain", "application/json"} {
		req := httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(`{"access_key":"`+accessKey+`"}`))
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		w := httptest.NewRecorder()
		app.engine.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, contentType)
	}

	requests := logs.FilterMessage("[Request] logging middleware message").All()
	require.Len(t, requests, 3)
	for _, entry := range requests {
		body, ok := entry.ContextMap()["body"].(string)
		require.True(t, ok)
		require.Contains(t, body, "access_key")
		require.NotContains(t, body, accessKey)
	}
	for _, entry := range logs.All() {
		for _, v := range entry.ContextMap() {
			require.NotContains(t, fmt.Sprint(v), accessKey, entry.Message)
		}
	}
}
