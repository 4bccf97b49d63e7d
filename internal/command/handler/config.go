package command

import (
	"encoding/json"

	"gateway/config"
	"gateway/utils/secret"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type ConfigHandler struct {
	logger *zap.Logger
	conf   *config.Configuration
}

func NewConfigHandler(logger *zap.Logger, conf *config.Configuration) *ConfigHandler {
	return &ConfigHandler{logger: logger, conf: conf}
}

type configReport struct {
	config.Status
	AccessKey      string `json:"access_key"`
	OpenAIKey      string `json:"openai_api_key"`
	OpenAIBaseURL  string `json:"openai_base_url"`
	Port           uint32 `json:"port"`
	Version        string `json:"version"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// Check 輸出設定狀態（密鑰一律遮罩）；有警告時回傳非 0
func (handler *ConfigHandler) Check(cmd *cobra.Command, args []string) error {
	status := handler.conf.Status()
	report := configReport{
		Status:         status,
		AccessKey:      secret.Mask(handler.conf.Auth.AccessKey),
		OpenAIKey:      secret.Mask(handler.conf.OpenAI.APIKey),
		OpenAIBaseURL:  handler.conf.OpenAI.BaseURL,
		Port:           handler.conf.App.Port,
		Version:        handler.conf.App.Version,
		TimeoutSeconds: handler.conf.OpenAI.TimeoutSeconds,
	}
	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(b))
	for _, w := range status.Warnings {
		handler.logger.Warn(w)
	}
	if len(status.Warnings) > 0 {
		return errConfigIncomplete
	}
	return nil
}
