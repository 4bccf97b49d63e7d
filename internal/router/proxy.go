package router

import (
	"gateway/internal/handler/proxy"
	"gateway/internal/middleware"
	"gateway/internal/pkg/request"
	"gateway/internal/service/chat"
	"gateway/internal/service/completion"
	"gateway/internal/service/embedding"
	"gateway/internal/service/images"

	"github.com/gin-gonic/gin"
)

type ProxyRouter struct {
	chatHandler       *proxy.ChatHandler
	completionHandler *proxy.CompletionHandler
	imageHandler      *proxy.ImageHandler
	embeddingHandler  *proxy.EmbeddingHandler
	modelHandler      *proxy.ModelsHandler
	authMiddleware    *middleware.Auth
}

func NewProxyRouter(
	chatHandler *proxy.ChatHandler,
	completionHandler *proxy.CompletionHandler,
	imageHandler *proxy.ImageHandler,
	embeddingHandler *proxy.EmbeddingHandler,
	modelHandler *proxy.ModelsHandler,
	authMiddleware *middleware.Auth,
) *ProxyRouter {
	return &ProxyRouter{
		chatHandler:       chatHandler,
		completionHandler: completionHandler,
		imageHandler:      imageHandler,
		embeddingHandler:  embeddingHandler,
		modelHandler:      modelHandler,
		authMiddleware:    authMiddleware,
	}
}

// RegisterRoutes 順序固定為：body 驗證 → access key → handler
func (proxyRouter *ProxyRouter) RegisterRoutes(engine *gin.Engine) {
	guard := proxyRouter.authMiddleware.Handler()

	engine.POST("/chat", request.Bind[chat.Request](), guard, proxyRouter.chatHandler.Chat)
	engine.POST("/completion", request.Bind[completion.Request](), guard, proxyRouter.completionHandler.Completion)

	image := engine.Group("/images")
	{
		image.POST("/generate", request.Bind[images.Request](), guard, proxyRouter.imageHandler.Generate)
	}

	engine.POST("/embeddings", request.Bind[embedding.Request](), guard, proxyRouter.embeddingHandler.Create)
	engine.GET("/models", guard, proxyRouter.modelHandler.ListModels)
}
