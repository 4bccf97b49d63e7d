package embedding

import (
	"context"

	"gateway/internal/pkg/request"
	"gateway/internal/service/upstream"
)

const DefaultModel = "text-embedding-ada-002"

// Request POST /embeddings
type Request struct {
	Model string `json:"model" binding:"required,modelname" example:"text-embedding-ada-002"`
	Input string `json:"input" binding:"notblank" example:"The food was delicious"`
}

func (r *Request) SetDefaults() {
	r.Model = DefaultModel
}

func (r *Request) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Input.notblank": "input must not be empty",
	}
}

type Payload struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type Result struct {
	Object string         `json:"object"`
	Data   []Data         `json:"data"`
	Model  string         `json:"model"`
	Usage  upstream.Usage `json:"usage"`
}

type Data struct {
	Object    string    `json:"object"`
	Embedding []float64 `json:"embedding"`
	Index     int       `json:"index"`
}

// Reply Dimensions 等於每個向量的長度
type Reply struct {
	Embeddings [][]float64     `json:"embeddings"`
	Model      string          `json:"model" example:"text-embedding-ada-002"`
	Usage      *upstream.Usage `json:"usage"`
	Dimensions int             `json:"dimensions" example:"1536"`
}

type Service interface {
	Create(ctx context.Context, req *Request, apiKey string) (*Reply, error)
}
