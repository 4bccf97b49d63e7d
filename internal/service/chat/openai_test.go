package chat_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gateway/config"
	"gateway/internal/service/chat"
	"gateway/internal/service/upstream"
	"gateway/internal/telemetry"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCompleteNormalizesFirstChoice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		var body chat.Payload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "gpt-4", body.Model)
		require.Len(t, body.Messages, 1)
		require.NotNil(t, body.Temperature)
		require.Equal(t, 0.2, *body.Temperature)
		require.NotNil(t, body.MaxTokens)
		require.Equal(t, 50, *body.MaxTokens)

		_, _ = w.Write([]byte(`{
			"id":"chatcmpl-1","object":"chat.completion","model":"gpt-4-0613",
			"choices":[{"index":0,"message":{"role":"assistant","content":"Hi there"},"finish_reason":"stop"}],
			"usage":{"prompt_tokens":5,"completion_tokens":2,"total_tokens":7}
		}`))
	}))
	defer srv.Close()

	conf := &config.Configuration{OpenAI: config.OpenAI{BaseURL: srv.URL}}
	client := upstream.NewClient(conf, srv.Client(), &telemetry.Trace{}, &telemetry.Metric{}, zap.NewNop())
	svc := chat.NewOpenAIService(client)

	temp, maxTokens := 0.2, 50
	reply, err := svc.Complete(context.Background(), &chat.Request{
		Model:       "gpt-4",
		Messages:    []chat.Message{{Role: "user", Content: "Hello"}},
		Temperature: &temp,
		MaxTokens:   &maxTokens,
	}, "sk-test")
	require.NoError(t, err)
	require.Equal(t, "Hi there", reply.Message)
	require.Equal(t, "gpt-4", reply.Model)
	require.Equal(t, "chatcmpl-1", reply.ID)
	require.Equal(t, 7, reply.Usage.TotalTokens)
}

func TestRequestDefaults(t *testing.T) {
	var req chat.Request
	req.SetDefaults()
	require.Equal(t, chat.DefaultModel, req.Model)
	require.Equal(t, chat.DefaultTemperature, *req.Temperature)
	require.Equal(t, chat.DefaultMaxTokens, *req.MaxTokens)
}
