package chat

import (
	"context"
	"net/http"

	"gateway/internal/core"
	cErr "gateway/internal/pkg/error"
	"gateway/internal/service/upstream"
)

type OpenAIService struct {
	client *upstream.Client
}

// NewOpenAIService 建立 OpenAIService
func NewOpenAIService(client *upstream.Client) Service {
	return &OpenAIService{client: client}
}

// Complete 呼叫 OpenAI Chat Completions v1，取第一個 choice 的內容
func (s *OpenAIService) Complete(ctx context.Context, req *Request, apiKey string) (*Reply, error) {
	payload := &Payload{
		Model:       req.Model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	var result Result
	err := s.client.Do(ctx, upstream.Call{
		Operation: core.OperationChatCompletion,
		Method:    http.MethodPost,
		Endpoint:  core.OpenAiChatEndpoint,
		APIKey:    apiKey,
		Body:      payload,
	}, &result)
	if err != nil {
		return nil, err
	}
	if len(result.Choices) == 0 {
		return nil, cErr.UpstreamResponseError("upstream returned no choices")
	}

	usage := result.Usage
	return &Reply{
		Message: result.Choices[0].Message.Content,
		Model:   req.Model,
		Usage:   &usage,
		ID:      result.ID,
	}, nil
}
