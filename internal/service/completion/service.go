package completion

import (
	"context"

	"gateway/internal/pkg/request"
	"gateway/internal/service/upstream"
)

const (
	DefaultModel       = "gpt-3.5-turbo-instruct"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 100
)

// Request POST /completion
type Request struct {
	Model       string   `json:"model" binding:"required,modelname" example:"gpt-3.5-turbo-instruct"`
	Prompt      string   `json:"prompt" binding:"notblank" example:"Once upon a time"`
	Temperature *float64 `json:"temperature" binding:"omitempty,gte=0,lte=2" example:"0.7"`
	MaxTokens   *int     `json:"max_tokens" binding:"omitempty,gt=0" example:"100"`
}

func (r *Request) SetDefaults() {
	r.Model = DefaultModel
	t, m := DefaultTemperature, DefaultMaxTokens
	r.Temperature = &t
	r.MaxTokens = &m
}

func (r *Request) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Prompt.notblank": "prompt must not be empty",
		"Temperature.gte": "temperature must be between 0 and 2",
		"Temperature.lte": "temperature must be between 0 and 2",
		"MaxTokens.gt":    "max_tokens must be a positive integer",
	}
}

type Payload struct {
	Model       string   `json:"model"`
	Prompt      string   `json:"prompt"`
	Temperature *float64 `json:"temperature,omitempty"`
	MaxTokens   *int     `json:"max_tokens,omitempty"`
}

type Result struct {
	ID      string         `json:"id"`
	Object  string         `json:"object"`
	Model   string         `json:"model"`
	Choices []Choice       `json:"choices"`
	Usage   upstream.Usage `json:"usage"`
}

type Choice struct {
	Index        int    `json:"index"`
	Text         string `json:"text"`
	FinishReason string `json:"finish_reason"`
}

type Reply struct {
	Text  string          `json:"text" example:" there was a gateway."`
	Model string          `json:"model" example:"gpt-3.5-turbo-instruct"`
	Usage *upstream.Usage `json:"usage"`
	ID    string          `json:"id" example:"cmpl-123"`
}

type Service interface {
	Complete(ctx context.Context, req *Request, apiKey string) (*Reply, error)
}
