package client

import (
	"context"
	"time"

	"gateway/config"

	"github.com/fluent/fluent-logger-golang/fluent"
	"go.uber.org/zap"
)

// Client is a minimal interface to allow mocking in tests.
type Client interface {
	Post(ctx context.Context, tag string, message any) error
	Close() error
}

// FluentdClient implements Client using fluent-logger-golang.
type FluentdClient struct {
	client    *fluent.Fluent
	tagPrefix string
}

// NewFluentdClient returns a NoopClient when FLUENTD.HOST is empty.
// The forward client runs in async mode so a missing collector never blocks a request.
func NewFluentdClient(logger *zap.Logger, config *config.Configuration) (Client, func(), error) {
	if config.Fluentd.Host == "" {
		logger.Info("fluentd disabled: FLUENTD.HOST not set")
		return &NoopClient{}, func() {}, nil
	}
	prefix := "gateway"
	if config.Fluentd.TagPrefix != "" {
		prefix = config.Fluentd.TagPrefix
	}
	var timeout time.Duration
	if config.Fluentd.Timeout > 0 {
		timeout = time.Duration(config.Fluentd.Timeout) * time.Millisecond
	}

	f, err := fluent.New(fluent.Config{
		FluentHost: config.Fluentd.Host,
		FluentPort: config.Fluentd.Port,
		Timeout:    timeout,
		TagPrefix:  prefix,
		Async:      true,
		AsyncResultCallback: func(data []byte, err error) {
			if err != nil {
				logger.Warn("fluentd async post failed", zap.Error(err))
			}
		},
	})
	if err != nil {
		return nil, nil, err
	}
	c := &FluentdClient{client: f, tagPrefix: prefix}
	cleanup := func() {
		if err := c.Close(); err != nil {
			logger.Warn("close fluentd client failed", zap.Error(err))
		}
	}
	return c, cleanup, nil
}

func (c *FluentdClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Post sends a record to Fluentd; the tag is prefixed with TagPrefix by the library.
func (c *FluentdClient) Post(ctx context.Context, tag string, message any) error {
	return c.client.Post(tag, message)
}

// --------------------
// Noop client (disabled mode)
// --------------------

type NoopClient struct{}

func (n *NoopClient) Post(ctx context.Context, tag string, message any) error { return nil }
func (n *NoopClient) Close() error                                           { return nil }
