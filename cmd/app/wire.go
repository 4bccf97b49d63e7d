//go:build wireinject
// +build wireinject

package main

import (
	"gateway/config"
	"gateway/internal/command"
	"gateway/internal/cron"
	"gateway/internal/database"
	"gateway/internal/handler"
	"gateway/internal/middleware"
	"gateway/internal/router"
	"gateway/internal/service"
	"gateway/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			newHttpServer,
			newHttpClient,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(
		wire.Build(
			service.ProviderSet,
			newHttpClient,
			telemetry.ProviderSet,
			command.ProviderSet,
		),
	)
}
