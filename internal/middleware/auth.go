package middleware

import (
	"strings"

	"gateway/internal/core"
	"gateway/internal/pkg/response"
	"gateway/internal/service/auth"
	"gateway/internal/telemetry"
	"gateway/utils/secret"

	"github.com/gin-gonic/gin"
)

// Auth 受保護路由的前置條件；每個請求都重新驗證，不保留 session
type Auth struct {
	trace       *telemetry.Trace
	authService *auth.AuthService
}

func NewAuth(trace *telemetry.Trace, authService *auth.AuthService) *Auth {
	return &Auth{trace: trace, authService: authService}
}

func (middleware *Auth) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, end := middleware.trace.WithSpan(middleware.trace.GetTraceContext(c), string(core.SpanAuthMiddleware))
		credential, from := readCredential(c)
		meta := core.TraceAuthMiddlewareMeta{
			Where:      from,
			ClientIP:   c.ClientIP(),
			Credential: secret.Mask(credential),
		}

		result := middleware.authService.Verify(ctx, c.FullPath(), credential)
		if !result.Authorized {
			meta.Status = string(result.Reason)
			middleware.trace.ApplyTraceAttributes(span, meta)
			cause := result.Err()
			end(cause)
			response.AbortWithError(c, cause)
			return
		}

		meta.Status = "success"
		middleware.trace.ApplyTraceAttributes(span, meta)
		end(nil)

		c.Set(core.ContextAuthorizedKey, true)
		c.Next()
	}
}

func readCredential(c *gin.Context) (key string, from string) {
	// 1) Authorization: Bearer <access_key>
	if h := strings.TrimSpace(c.GetHeader("Authorization")); h != "" {
		if len(h) > len("bearer ") && strings.EqualFold(h[:len("bearer ")], "bearer ") {
			return strings.TrimSpace(h[len("bearer "):]), "bearer"
		}
	}

	// 2) X-API-Key
	if x := strings.TrimSpace(c.GetHeader("X-API-Key")); x != "" {
		return x, "x-api-key"
	}
	return "", "none"
}
