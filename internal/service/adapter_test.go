package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"gateway/config"
	cErr "gateway/internal/pkg/error"
	"gateway/internal/service/chat"
	"gateway/internal/service/completion"
	"gateway/internal/service/embedding"
	"gateway/internal/service/images"
	"gateway/internal/service/models"

	"github.com/stretchr/testify/require"
)

type countingServices struct {
	calls       atomic.Int32
	lastTimeout time.Duration
}

func (s *countingServices) Complete(ctx context.Context, req *chat.Request, apiKey string) (*chat.Reply, error) {
	s.calls.Add(1)
	return &chat.Reply{Message: "ok:" + apiKey}, nil
}

type countingCompletion struct{ *countingServices }

func (s countingCompletion) Complete(ctx context.Context, req *completion.Request, apiKey string) (*completion.Reply, error) {
	s.calls.Add(1)
	return &completion.Reply{Text: "ok"}, nil
}

func (s *countingServices) Generate(ctx context.Context, req *images.Request, apiKey string) (*images.Reply, error) {
	s.calls.Add(1)
	return &images.Reply{URL: "https://example.com/a.png"}, nil
}

func (s *countingServices) Create(ctx context.Context, req *embedding.Request, apiKey string) (*embedding.Reply, error) {
	s.calls.Add(1)
	return &embedding.Reply{Dimensions: 3}, nil
}

func (s *countingServices) List(ctx context.Context, apiKey string, timeout time.Duration) (*models.Reply, error) {
	s.calls.Add(1)
	s.lastTimeout = timeout
	return &models.Reply{}, nil
}

func newCountingAdapter(apiKey string) (*OpenAIAdapter, *countingServices) {
	conf := &config.Configuration{OpenAI: config.OpenAI{APIKey: apiKey, ProbeTimeoutSeconds: 3}}
	svc := &countingServices{}
	return NewOpenAIAdapter(conf, svc, countingCompletion{svc}, svc, svc, svc), svc
}

func TestOpenAIAdapterUnconfiguredFailsFast(t *testing.T) {
	a, svc := newCountingAdapter("")
	ctx := context.Background()

	calls := []func() error{
		func() error { _, err := a.ChatCompletion(ctx, &chat.Request{}); return err },
		func() error { _, err := a.TextCompletion(ctx, &completion.Request{}); return err },
		func() error { _, err := a.GenerateImage(ctx, &images.Request{}); return err },
		func() error { _, err := a.CreateEmbedding(ctx, &embedding.Request{}); return err },
		func() error { _, err := a.ListModels(ctx); return err },
		func() error { return a.HealthProbe(ctx) },
	}
	for _, call := range calls {
		var e *cErr.Error
		require.True(t, errors.As(call(), &e))
		require.Equal(t, cErr.KindServiceUnavailable, e.Kind())
		require.Equal(t, 503, e.HttpCode())
	}
	require.Equal(t, int32(0), svc.calls.Load())
	require.False(t, a.Configured())
}

func TestOpenAIAdapterForwardsCredential(t *testing.T) {
	a, svc := newCountingAdapter("sk-live")

	reply, err := a.ChatCompletion(context.Background(), &chat.Request{})
	require.NoError(t, err)
	require.Equal(t, "ok:sk-live", reply.Message)

	require.NoError(t, a.HealthProbe(context.Background()))
	require.Equal(t, 3*time.Second, svc.lastTimeout)

	_, err = a.ListModels(context.Background())
	require.NoError(t, err)
	require.Equal(t, time.Duration(0), svc.lastTimeout)
	require.Equal(t, int32(3), svc.calls.Load())
}
