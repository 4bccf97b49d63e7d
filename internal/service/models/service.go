package models

import (
	"context"
	"time"
)

// 單一 Model
type Model struct {
	ID      string `json:"id" example:"gpt-4o"`
	Object  string `json:"object" example:"model"`
	Created int64  `json:"created" example:"1715367049"`
	OwnedBy string `json:"owned_by" example:"system"`
}

// 列表回應
type ListResponse struct {
	Object string  `json:"object"` // "list"
	Data   []Model `json:"data"`
}

type Reply struct {
	Models []Model `json:"models"`
	Count  int     `json:"count" example:"1"`
}

// 服務介面；timeout 為 0 時使用預設逾時
type Service interface {
	List(ctx context.Context, apiKey string, timeout time.Duration) (*Reply, error)
}
