package embedding_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gateway/config"
	"gateway/internal/service/embedding"
	"gateway/internal/service/upstream"
	"gateway/internal/telemetry"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T, h http.HandlerFunc) embedding.Service {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	conf := &config.Configuration{OpenAI: config.OpenAI{BaseURL: srv.URL}}
	client := upstream.NewClient(conf, srv.Client(), &telemetry.Trace{}, &telemetry.Metric{}, zap.NewNop())
	return embedding.NewOpenAIService(client)
}

func TestCreateReportsDimensions(t *testing.T) {
	for _, dims := range []int{3, 8, 1536} {
		vec := make([]float64, dims)
		for i := range vec {
			vec[i] = float64(i) / 10
		}
		svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
			var body embedding.Payload
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "hello", body.Input)
			_ = json.NewEncoder(w).Encode(embedding.Result{
				Object: "list",
				Data:   []embedding.Data{{Object: "embedding", Embedding: vec}},
				Usage:  upstream.Usage{PromptTokens: 1, TotalTokens: 1},
			})
		})

		reply, err := svc.Create(context.Background(), &embedding.Request{Model: "text-embedding-ada-002", Input: "hello"}, "sk-test")
		require.NoError(t, err)
		require.Len(t, reply.Embeddings, 1)
		require.Equal(t, len(reply.Embeddings[0]), reply.Dimensions)
		require.Equal(t, dims, reply.Dimensions)
		require.Equal(t, vec, reply.Embeddings[0])
		require.Equal(t, "text-embedding-ada-002", reply.Model)
	}
}

func TestCreateRejectsEmptyData(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"object":"list","data":[]}`))
	})
	_, err := svc.Create(context.Background(), &embedding.Request{Model: "text-embedding-ada-002", Input: "x"}, "sk-test")
	require.Error(t, err)
}

func TestDimensions(t *testing.T) {
	d, err := embedding.Dimensions([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, 2, d)

	_, err = embedding.Dimensions([][]float64{{1, 2}, {3}})
	require.Error(t, err)

	_, err = embedding.Dimensions(nil)
	require.Error(t, err)
}
