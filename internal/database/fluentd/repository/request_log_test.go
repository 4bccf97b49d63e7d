package repository

import (
	"context"
	"sync"
	"testing"

	"gateway/config"
	"gateway/internal/core"
	"gateway/internal/database/fluentd/model"

	"github.com/stretchr/testify/require"
)

type recordingClient struct {
	mu      sync.Mutex
	tags    []string
	records []map[string]any
}

func (r *recordingClient) Post(ctx context.Context, tag string, message any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tags = append(r.tags, tag)
	r.records = append(r.records, message.(map[string]any))
	return nil
}

func (r *recordingClient) Close() error { return nil }

func TestLogRepositoryFillsDefaults(t *testing.T) {
	rec := &recordingClient{}
	repo := NewLogRepository(&config.Configuration{App: config.App{Name: "gateway", Version: "2.1.0"}}, rec)

	require.NoError(t, repo.LogUsage(context.Background(), model.UsageLog{
		RequestID:   "req-1",
		Provider:    "openai",
		Operation:   "chat_completion",
		Endpoint:    "/chat",
		TokensTotal: 12,
	}))
	require.NoError(t, repo.LogResponse(context.Background(), model.ResponseLog{RequestID: "req-1", StatusCode: 502}))

	require.Equal(t, []string{string(core.FluentUsage), string(core.FluentdResponse)}, rec.tags)
	usage := rec.records[0]
	require.Equal(t, "2.1.0", usage["version"])
	require.Equal(t, "gateway", usage["project_name"])
	require.Equal(t, float64(12), usage["tokens_total"])
	require.NotEmpty(t, usage["logged_at"])
	require.Equal(t, float64(502), rec.records[1]["status_code"])
}
