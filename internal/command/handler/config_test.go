package command

import (
	"bytes"
	"testing"

	"gateway/config"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConfigCheckMasksSecrets(t *testing.T) {
	conf := &config.Configuration{
		Auth:   config.Auth{AccessKey: "secret123"},
		OpenAI: config.OpenAI{APIKey: "sk-proj-abcdefghijklmnopqrstuvwxyz"},
	}
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	err := NewConfigHandler(zap.NewNop(), conf).Check(cmd, nil)
	require.NoError(t, err)
	require.NotContains(t, out.String(), "secret123")
	require.NotContains(t, out.String(), "abcdefghijklmnop")
	require.Contains(t, out.String(), `"openai_configured": true`)
}

func TestConfigCheckFailsWhenIncomplete(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	err := NewConfigHandler(zap.NewNop(), &config.Configuration{}).Check(cmd, nil)
	require.ErrorIs(t, err, errConfigIncomplete)
	require.Contains(t, out.String(), `"auth_configured": false`)
}
