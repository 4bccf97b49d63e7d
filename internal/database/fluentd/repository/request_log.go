package repository

import (
	"context"
	"encoding/json"
	"time"

	"gateway/config"
	"gateway/internal/core"
	"gateway/internal/database/client"
	"gateway/internal/database/fluentd/model"
)

// LogRepository 統一負責發送 Request/Response/Usage Log 到 Fluentd
type LogRepository struct {
	fluentdClient client.Client
	project       string
	version       string
}

func NewLogRepository(config *config.Configuration, client client.Client) *LogRepository {
	version := "1.0.0"
	if config.App.Version != "" {
		version = config.App.Version
	}
	return &LogRepository{fluentdClient: client, project: config.App.Name, version: version}
}

func (repository *LogRepository) LogRequest(ctx context.Context, req model.RequestLog) error {
	if req.LoggedAt == "" {
		req.LoggedAt = now()
	}
	if req.Version == "" {
		req.Version = repository.version
	}
	if req.ProjectName == "" {
		req.ProjectName = repository.project
	}
	return repository.post(ctx, core.FluentdRequest, req)
}

func (repository *LogRepository) LogResponse(ctx context.Context, resp model.ResponseLog) error {
	if resp.LoggedAt == "" {
		resp.LoggedAt = now()
	}
	if resp.Version == "" {
		resp.Version = repository.version
	}
	if resp.ProjectName == "" {
		resp.ProjectName = repository.project
	}
	return repository.post(ctx, core.FluentdResponse, resp)
}

func (repository *LogRepository) LogUsage(ctx context.Context, usage model.UsageLog) error {
	if usage.LoggedAt == "" {
		usage.LoggedAt = now()
	}
	if usage.Version == "" {
		usage.Version = repository.version
	}
	if usage.ProjectName == "" {
		usage.ProjectName = repository.project
	}
	return repository.post(ctx, core.FluentUsage, usage)
}

// fluent 以 msgpack 編碼 map 最穩定，先經 json 轉成 map
func (repository *LogRepository) post(ctx context.Context, tag core.FluentdSubTag, record any) error {
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}
	var fluentdMessage map[string]any
	if err := json.Unmarshal(b, &fluentdMessage); err != nil {
		return err
	}
	return repository.fluentdClient.Post(ctx, string(tag), fluentdMessage)
}

func now() string {
	return time.Now().UTC().Format(core.FluentdTimeLayout)
}
