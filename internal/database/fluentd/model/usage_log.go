package model

// UsageLog 每次成功的上游呼叫一筆
type UsageLog struct {
	RequestID        string `json:"request_id"`
	ProjectName      string `json:"project_name,omitempty"`
	Provider         string `json:"provider"`
	Operation        string `json:"operation"`
	Model            string `json:"model,omitempty"`
	Endpoint         string `json:"endpoint"`
	TokensPrompt     int    `json:"tokens_prompt,omitempty"`
	TokensCompletion int    `json:"tokens_completion,omitempty"`
	TokensTotal      int    `json:"tokens_total,omitempty"`
	Version          string `json:"version"`
	LoggedAt         string `json:"logged_at"`
}
