package request

import (
	"gateway/internal/core"
	cErr "gateway/internal/pkg/error"
	"gateway/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Bind 在 auth 之前完成 body 綁定與驗證，失敗直接回 invalid_input
func Bind[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := RegisterValidations(); err != nil {
			response.AbortWithError(c, cErr.InternalServer("validator unavailable").Wrap(err))
			return
		}
		payload := new(T)
		if d, ok := any(payload).(Defaulter); ok {
			d.SetDefaults()
		}
		if err := c.ShouldBindJSON(payload); err != nil {
			response.AbortWithError(c, GetError(payload, err))
			return
		}
		c.Set(core.ContextPayloadKey, payload)
		c.Next()
	}
}

// Payload 取出 Bind 存放的請求物件
func Payload[T any](c *gin.Context) (*T, bool) {
	raw, ok := c.Get(core.ContextPayloadKey)
	if !ok {
		return nil, false
	}
	payload, ok := raw.(*T)
	return payload, ok && payload != nil
}
