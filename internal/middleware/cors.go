package middleware

import (
	"gateway/internal/core"
	"gateway/internal/telemetry"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Cors struct {
	trace *telemetry.Trace
}

func NewCors(trace *telemetry.Trace) *Cors {
	return &Cors{trace: trace}
}

// CorsHandler 設定 CORS，並以 WithSpan 紀錄設定（跳過特定路徑的 tracing，但仍套用 CORS）
func (m *Cors) CorsHandler() gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Authorization", "X-API-Key"},
		ExposeHeaders: []string{"X-Request-ID", "X-App-Version"},
	}
	corsHandler := cors.New(cfg)

	type corsMeta struct {
		AllowOrigins []string `trace:"http.cors.allow_origins"`
		AllowMethods []string `trace:"http.cors.allow_methods"`
		AllowHeaders []string `trace:"http.cors.allow_headers"`
	}

	return func(c *gin.Context) {
		// 這些路徑：不做 tracing，但仍需套用 CORS（避免 preflight 失敗）
		if isUntraced(c.FullPath()) {
			corsHandler(c)
			return
		}

		_, span, end := m.trace.WithSpan(m.trace.GetTraceContext(c), string(core.SpanCorsMiddleware))
		m.trace.ApplyTraceAttributes(span, corsMeta{
			AllowOrigins: cfg.AllowOrigins,
			AllowMethods: cfg.AllowMethods,
			AllowHeaders: cfg.AllowHeaders,
		})
		end(nil)

		// 執行實際的 CORS middleware（preflight 會直接 abort 204）
		corsHandler(c)
	}
}
