package handler

import (
	"gateway/internal/handler/proxy"

	"github.com/google/wire"
)

// ProviderSet Provider对象集合
var ProviderSet = wire.NewSet(
	proxy.NewChatHandler,
	proxy.NewCompletionHandler,
	proxy.NewImageHandler,
	proxy.NewEmbeddingHandler,
	proxy.NewModelsHandler,
	NewAuthHandler,
	NewHealthHandler,
)
