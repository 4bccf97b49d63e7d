package service

import (
	"gateway/internal/service/auth"
	"gateway/internal/service/chat"
	"gateway/internal/service/completion"
	"gateway/internal/service/embedding"
	"gateway/internal/service/images"
	"gateway/internal/service/models"
	"gateway/internal/service/upstream"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	upstream.NewClient,
	chat.NewOpenAIService,
	completion.NewOpenAIService,
	images.NewOpenAIService,
	embedding.NewOpenAIService,
	models.NewOpenAIService,
	NewOpenAIAdapter,
	wire.Bind(new(Adapter), new(*OpenAIAdapter)),
	auth.NewAccessKeyGate,
	wire.Bind(new(auth.Gate), new(*auth.AccessKeyGate)),
	auth.NewAuthService,
	NewHealthService,
)
