package completion

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

func NewOpenAIService(client *upstream.Client) Service {
	return &OpenAIService{client: client}
}

// Complete 呼叫 OpenAI legacy Completions v1
func (s *OpenAIService) Complete(ctx context.Context, req *Request, apiKey string) (*Reply, error) {
	var result Result
	err := s.client.Do(ctx, upstream.Call{
		Operation: core.OperationTextCompletion,
		Method:    http.MethodPost,
		Endpoint:  core.OpenAICompletionEndpoint,
		APIKey:    apiKey,
		Body: &Payload{
			Model:       req.Model,
			Prompt:      req.Prompt,
			Temperature: req.Temperature,
			MaxTokens:   req.MaxTokens,
		},
	}, &result)
	if err != nil {
		return nil, err
	}
	if len(result.Choices) == 0 {
		return nil, cErr.UpstreamResponseError("upstream returned no choices")
	}

	usage := result.Usage
	return &Reply{
		Text:  result.Choices[0].Text,
		Model: req.Model,
		Usage: &usage,
		ID:    result.ID,
	}, nil
}
