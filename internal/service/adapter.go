package service

import (
	"context"

	"gateway/config"
	cErr "gateway/internal/pkg/error"
	"gateway/internal/service/chat"
	"gateway/internal/service/completion"
	"gateway/internal/service/embedding"
	"gateway/internal/service/images"
	"gateway/internal/service/models"
)

const upstreamNotConfiguredMessage = "OpenAI client not available. Please configure OPENAI_API_KEY."

// Adapter 上游能力的統一入口；router 只依賴這個介面
type Adapter interface {
	ChatCompletion(ctx context.Context, req *chat.Request) (*chat.Reply, error)
	TextCompletion(ctx context.Context, req *completion.Request) (*completion.Reply, error)
	GenerateImage(ctx context.Context, req *images.Request) (*images.Reply, error)
	CreateEmbedding(ctx context.Context, req *embedding.Request) (*embedding.Reply, error)
	ListModels(ctx context.Context) (*models.Reply, error)
	HealthProbe(ctx context.Context) error
	Configured() bool
}

type OpenAIAdapter struct {
	conf       *config.Configuration
	chat       chat.Service
	completion completion.Service
	images     images.Service
	embedding  embedding.Service
	models     models.Service
}

func NewOpenAIAdapter(
	conf *config.Configuration,
	chatService chat.Service,
	completionService completion.Service,
	imagesService images.Service,
	embeddingService embedding.Service,
	modelsService models.Service,
) *OpenAIAdapter {
	return &OpenAIAdapter{
		conf:       conf,
		chat:       chatService,
		completion: completionService,
		images:     imagesService,
		embedding:  embeddingService,
		models:     modelsService,
	}
}

func (a *OpenAIAdapter) Configured() bool {
	return a.conf.UpstreamConfigured()
}

// apiKey 未設定憑證時直接回 ServiceUnavailable，不發出任何連線
func (a *OpenAIAdapter) apiKey() (string, error) {
	if !a.Configured() {
		return "", cErr.ServiceUnavailable(upstreamNotConfiguredMessage)
	}
	return a.conf.OpenAI.APIKey, nil
}

func (a *OpenAIAdapter) ChatCompletion(ctx context.Context, req *chat.Request) (*chat.Reply, error) {
	key, err := a.apiKey()
	if err != nil {
		return nil, err
	}
	return a.chat.Complete(ctx, req, key)
}

func (a *OpenAIAdapter) TextCompletion(ctx context.Context, req *completion.Request) (*completion.Reply, error) {
	key, err := a.apiKey()
	if err != nil {
		return nil, err
	}
	return a.completion.Complete(ctx, req, key)
}

func (a *OpenAIAdapter) GenerateImage(ctx context.Context, req *images.Request) (*images.Reply, error) {
	key, err := a.apiKey()
	if err != nil {
		return nil, err
	}
	return a.images.Generate(ctx, req, key)
}

func (a *OpenAIAdapter) CreateEmbedding(ctx context.Context, req *embedding.Request) (*embedding.Reply, error) {
	key, err := a.apiKey()
	if err != nil {
		return nil, err
	}
	return a.embedding.Create(ctx, req, key)
}

func (a *OpenAIAdapter) ListModels(ctx context.Context) (*models.Reply, error) {
	key, err := a.apiKey()
	if err != nil {
		return nil, err
	}
	return a.models.List(ctx, key, 0)
}

// HealthProbe 以較短逾時列出 models，只關心是否成功
func (a *OpenAIAdapter) HealthProbe(ctx context.Context) error {
	key, err := a.apiKey()
	if err != nil {
		return err
	}
	_, err = a.models.List(ctx, key, a.conf.OpenAI.ProbeTimeout())
	return err
}
