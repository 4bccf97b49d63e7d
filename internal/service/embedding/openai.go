package embedding

import (
	"context"
	"fmt"
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

// Create 呼叫 OpenAI Embeddings v1，向量原樣回傳
func (s *OpenAIService) Create(ctx context.Context, req *Request, apiKey string) (*Reply, error) {
	var result Result
	err := s.client.Do(ctx, upstream.Call{
		Operation: core.OperationCreateEmbedding,
		Method:    http.MethodPost,
		Endpoint:  core.OpenAIEmbeddingEndpoint,
		APIKey:    apiKey,
		Body:      &Payload{Model: req.Model, Input: req.Input},
	}, &result)
	if err != nil {
		return nil, err
	}

	vectors := make([][]float64, 0, len(result.Data))
	for _, d := range result.Data {
		vectors = append(vectors, d.Embedding)
	}
	dims, err := Dimensions(vectors)
	if err != nil {
		return nil, cErr.UpstreamResponseError("malformed upstream response").Wrap(err)
	}

	usage := result.Usage
	return &Reply{
		Embeddings: vectors,
		Model:      req.Model,
		Usage:      &usage,
		Dimensions: dims,
	}, nil
}

// Dimensions 回傳向量維度；沒有向量或長度不一致時回傳錯誤
func Dimensions(vectors [][]float64) (int, error) {
	if len(vectors) == 0 {
		return 0, fmt.Errorf("no embedding vectors")
	}
	dims := len(vectors[0])
	if dims == 0 {
		return 0, fmt.Errorf("empty embedding vector")
	}
	for i, v := range vectors[1:] {
		if len(v) != dims {
			return 0, fmt.Errorf("vector %d has %d dimensions, want %d", i+1, len(v), dims)
		}
	}
	return dims, nil
}
