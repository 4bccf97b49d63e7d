package router

import (
	"path/filepath"

	docs "gateway/cmd/docs"
	"gateway/config"
	"gateway/internal/middleware"
	cErr "gateway/internal/pkg/error"
	"gateway/internal/pkg/response"
	"gateway/utils/path"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var ProviderSet = wire.NewSet(
	NewRouter,
	NewProxyRouter,
	NewAuthRouter,
	NewHealthRouter,
)

// NewRouter 組裝 middleware 與所有路由
func NewRouter(
	config *config.Configuration,
	traceEntry *middleware.TraceEntry,
	recovery *middleware.Recovery,
	cors *middleware.Cors,
	logger *middleware.Logger,
	responseMiddleware *middleware.Response,
	proxyRouter *ProxyRouter,
	authRouter *AuthRouter,
	healthRouter *HealthRouter,
) *gin.Engine {

	switch config.App.Env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(traceEntry.Handler())
	router.Use(logger.LoggerHandler())
	router.Use(cors.CorsHandler())
	router.Use(recovery.ErrorHandler())
	router.Use(responseMiddleware.FormatHandler())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if config.App.SwaggerEnabled {
		router.GET("/swagger/*any", func(c *gin.Context) {
			docs.SwaggerInfo.Host = c.Request.Host
			if config.App.Env == "production" {
				docs.SwaggerInfo.Schemes = []string{"https"}
			}
		}, ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	healthRouter.RegisterRoutes(router)
	authRouter.RegisterRoutes(router)
	proxyRouter.RegisterRoutes(router)
	registerStatic(router, config.App.StaticDir)

	if config.App.Env != "production" {
		pprof.Register(router)
	}
	return router
}

// registerStatic 前端靜態檔；目錄不存在時不掛載 /static，但 / 仍回 404 envelope
func registerStatic(router *gin.Engine, dir string) {
	if dir == "" {
		return
	}
	dir = path.Resolve(dir)
	if ok, _ := path.Exists(dir); ok {
		router.Static("/static", dir)
	}
	index := filepath.Join(dir, "index.html")
	router.GET("/", func(c *gin.Context) {
		if ok, _ := path.Exists(index); !ok {
			response.AbortWithError(c, cErr.NotFound("Frontend not found"))
			return
		}
		c.File(index)
	})
}
