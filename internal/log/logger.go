package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gateway/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewLogger(conf *config.Configuration) (*zap.Logger, error) {
	return newLogger(conf, os.Stdout, os.Stderr)
}

// newLogger 低於 warn 寫 stdout，warn 以上寫 stderr（同時受全域門檻控制）
func newLogger(conf *config.Configuration, stdout, stderr io.Writer) (*zap.Logger, error) {
	// 1) 解析最小輸出層級；空字串或無法辨識時使用 info
	lvl := zap.InfoLevel
	if raw := strings.TrimSpace(strings.ToLower(conf.Log.Level)); raw != "" {
		parsed, err := zapcore.ParseLevel(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", conf.Log.Level, err)
		}
		lvl = parsed
	}
	atomic := zap.NewAtomicLevelAt(lvl)

	// 2) Encoder 設定（JSON、ISO8601 時間、caller/level 鍵等）
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.MessageKey = "message"
	encCfg.LevelKey = "level"
	encCfg.TimeKey = "ts"
	encCfg.CallerKey = "caller"
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	encoder := zapcore.NewJSONEncoder(encCfg)

	stdoutLevel := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return atomic.Enabled(l) && l < zapcore.WarnLevel
	})
	stderrLevel := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return atomic.Enabled(l) && l >= zapcore.WarnLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.AddSync(stdout), stdoutLevel),
		zapcore.NewCore(encoder, zapcore.AddSync(stderr), stderrLevel),
	)

	// 3) Options：顯示 caller；stacktrace 只在 Error+ 時出現
	opts := []zap.Option{
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
		zap.Fields(
			zap.String("service", conf.App.Name),
			zap.String("version", conf.App.Version),
		),
	}

	logger := zap.New(core, opts...)
	logger.Info(fmt.Sprintf("zap logger set level: %s", lvl.String()))

	return logger, nil
}
