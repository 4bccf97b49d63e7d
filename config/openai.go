package config

import "time"

const (
	DefaultOpenAIBaseURL = "https://api.openai.com"
	DefaultProbeCron     = "@every 60s"
)

type OpenAI struct {
	APIKey              string `mapstructure:"API_KEY" json:"-" yaml:"api_key"`
	BaseURL             string `mapstructure:"BASE_URL" json:"base_url" yaml:"base_url"`
	TimeoutSeconds      int    `mapstructure:"TIMEOUT_SECONDS" json:"timeout_seconds" yaml:"timeout_seconds"`
	ProbeTimeoutSeconds int    `mapstructure:"PROBE_TIMEOUT_SECONDS" json:"probe_timeout_seconds" yaml:"probe_timeout_seconds"`
	// cron 表達式（支援秒欄位與 @every）
	ProbeCron string `mapstructure:"PROBE_CRON" json:"probe_cron" yaml:"probe_cron"`
}

func (o *OpenAI) setDefaults() {
	if o.BaseURL == "" {
		o.BaseURL = DefaultOpenAIBaseURL
	}
	if o.TimeoutSeconds <= 0 {
		o.TimeoutSeconds = 60
	}
	if o.ProbeTimeoutSeconds <= 0 {
		o.ProbeTimeoutSeconds = 5
	}
	if o.ProbeCron == "" {
		o.ProbeCron = DefaultProbeCron
	}
}

func (o OpenAI) Timeout() time.Duration {
	if o.TimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(o.TimeoutSeconds) * time.Second
}

func (o OpenAI) ProbeTimeout() time.Duration {
	if o.ProbeTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(o.ProbeTimeoutSeconds) * time.Second
}
