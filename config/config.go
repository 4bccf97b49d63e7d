package config

type Configuration struct {
	App       App             `mapstructure:"APP" json:"app" yaml:"app"`
	Auth      Auth            `mapstructure:"AUTH" json:"auth" yaml:"auth"`
	OpenAI    OpenAI          `mapstructure:"OPENAI" json:"openai" yaml:"openai"`
	Log       Log             `mapstructure:"LOG" json:"log" yaml:"log"`
	Telemetry TelemetryConfig `mapstructure:"TELEMETRY" yaml:"telemetry"`
	Fluentd   Fluentd         `mapstructure:"FLUENTD" yaml:"fluentd"`
}

// Status 啟動時的設定檢查結果（/health 與 check-config 共用）
type Status struct {
	OpenAIConfigured bool     `json:"openai_configured"`
	AuthConfigured   bool     `json:"auth_configured"`
	Warnings         []string `json:"warnings"`
}

// UpstreamConfigured 是否已設定 OpenAI 憑證
func (c *Configuration) UpstreamConfigured() bool {
	return c != nil && c.OpenAI.APIKey != ""
}

// AuthConfigured 是否已設定存取金鑰；未設定時所有受保護路由一律拒絕
func (c *Configuration) AuthConfigured() bool {
	return c != nil && c.Auth.AccessKey != ""
}

func (c *Configuration) Status() Status {
	status := Status{
		OpenAIConfigured: c.UpstreamConfigured(),
		AuthConfigured:   c.AuthConfigured(),
		Warnings:         []string{},
	}
	if !status.OpenAIConfigured {
		status.Warnings = append(status.Warnings, "OPENAI_API_KEY not set - upstream endpoints will return service_unavailable")
	}
	if !status.AuthConfigured {
		status.Warnings = append(status.Warnings, "ACCESS_KEY not set - all protected endpoints will be denied")
	}
	return status
}

// Normalize 補上預設值，並接受部署平台常見的扁平環境變數名稱
func (c *Configuration) Normalize(lookup func(string) (string, bool)) {
	if lookup != nil {
		if c.OpenAI.APIKey == "" {
			if v, ok := lookup("OPENAI_API_KEY"); ok {
				c.OpenAI.APIKey = v
			}
		}
		if c.Auth.AccessKey == "" {
			if v, ok := lookup("ACCESS_KEY"); ok {
				c.Auth.AccessKey = v
			}
		}
		if c.Log.Level == "" {
			if v, ok := lookup("LOG_LEVEL"); ok {
				c.Log.Level = v
			}
		}
		if c.App.Port == 0 {
			if v, ok := lookup("PORT"); ok {
				c.App.Port = parsePort(v)
			}
		}
	}
	c.App.setDefaults()
	c.OpenAI.setDefaults()
}
