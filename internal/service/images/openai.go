package images

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

// Generate 呼叫 OpenAI Images v1（n 固定為 1）
func (s *OpenAIService) Generate(ctx context.Context, req *Request, apiKey string) (*Reply, error) {
	var result Result
	err := s.client.Do(ctx, upstream.Call{
		Operation: core.OperationGenerateImage,
		Method:    http.MethodPost,
		Endpoint:  core.OpenAIImageGenerateEndpoint,
		APIKey:    apiKey,
		Body: &Payload{
			Model:   Model,
			Prompt:  req.Prompt,
			N:       Count,
			Size:    req.Size,
			Quality: req.Quality,
		},
	}, &result)
	if err != nil {
		return nil, err
	}
	if len(result.Data) == 0 {
		return nil, cErr.UpstreamResponseError("upstream returned no images")
	}

	data := result.Data[0]
	reply := &Reply{
		URL:     data.URL,
		Prompt:  req.Prompt,
		Size:    req.Size,
		Quality: req.Quality,
	}
	if data.RevisedPrompt != "" {
		rp := data.RevisedPrompt
		reply.RevisedPrompt = &rp
	}
	return reply, nil
}
