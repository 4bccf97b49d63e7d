package models

import (
	"context"
	"net/http"
	"time"

	"gateway/internal/core"
	"gateway/internal/service/upstream"
)

type OpenAIService struct {
	client *upstream.Client
}

func NewOpenAIService(client *upstream.Client) Service {
	return &OpenAIService{client: client}
}

func (s *OpenAIService) List(ctx context.Context, apiKey string, timeout time.Duration) (*Reply, error) {
	op := core.OperationListModels
	if timeout > 0 {
		op = core.OperationHealthProbe
	}

	var result ListResponse
	err := s.client.Do(ctx, upstream.Call{
		Operation: op,
		Method:    http.MethodGet,
		Endpoint:  core.OpenAIModelsEndpoint,
		APIKey:    apiKey,
		Timeout:   timeout,
	}, &result)
	if err != nil {
		return nil, err
	}

	list := result.Data
	if list == nil {
		list = []Model{}
	}
	return &Reply{Models: list, Count: len(list)}, nil
}
