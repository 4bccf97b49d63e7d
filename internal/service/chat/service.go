package chat

import (
	"context"

	"gateway/internal/pkg/request"
	"gateway/internal/service/upstream"
)

const (
	DefaultModel       = "gpt-3.5-turbo"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1000
)

type Message struct {
	Role    string `json:"role" binding:"required" example:"user"`
	Content string `json:"content" binding:"notblank" example:"Hello!"`
}

// Request POST /chat
type Request struct {
	Model       string    `json:"model" binding:"required,modelname" example:"gpt-3.5-turbo"`
	Messages    []Message `json:"messages" binding:"required,min=1,dive"`
	Temperature *float64  `json:"temperature" binding:"omitempty,gte=0,lte=2" example:"0.7"`
	MaxTokens   *int      `json:"max_tokens" binding:"omitempty,gt=0" example:"1000"`
}

func (r *Request) SetDefaults() {
	r.Model = DefaultModel
	t, m := DefaultTemperature, DefaultMaxTokens
	r.Temperature = &t
	r.MaxTokens = &m
}

func (r *Request) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Messages.required": "messages is required",
		"Messages.min":      "messages must not be empty",
		"Role.required":     "message role is required",
		"Content.notblank":  "message content must not be empty",
		"Temperature.gte":   "temperature must be between 0 and 2",
		"Temperature.lte":   "temperature must be between 0 and 2",
		"MaxTokens.gt":      "max_tokens must be a positive integer",
	}
}

// Payload 送往 /v1/chat/completions
type Payload struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature *float64  `json:"temperature,omitempty"`
	MaxTokens   *int      `json:"max_tokens,omitempty"`
}

type Result struct {
	ID      string         `json:"id"`
	Object  string         `json:"object"`
	Model   string         `json:"model"`
	Choices []Choice       `json:"choices"`
	Usage   upstream.Usage `json:"usage"`
}

type Choice struct {
	Index        int             `json:"index"`
	Message      ResponseMessage `json:"message"`
	FinishReason string          `json:"finish_reason"`
}

type ResponseMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Reply 回給 client 的 payload
type Reply struct {
	Message string          `json:"message" example:"Hi! How can I help you today?"`
	Model   string          `json:"model" example:"gpt-3.5-turbo"`
	Usage   *upstream.Usage `json:"usage"`
	ID      string          `json:"id" example:"chatcmpl-123"`
}

type Service interface {
	Complete(ctx context.Context, req *Request, apiKey string) (*Reply, error)
}
