package model

type ResponseLog struct {
	// 對應鍵
	RequestID   string `json:"request_id"`
	ProjectName string `json:"project_name,omitempty"`
	Path        string `json:"path,omitempty"`
	Code        int    `json:"code"`
	Kind        string `json:"kind,omitempty"`
	StatusCode  int    `json:"status_code"`
	Error       string `json:"error,omitempty"`
	DurationMs  int64  `json:"duration_ms"`
	Version     string `json:"version,omitempty"`
	ResponseTS  string `json:"response_ts"`
	LoggedAt    string `json:"logged_at"`
}
