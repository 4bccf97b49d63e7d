package handler

import (
	cErr "gateway/internal/pkg/error"
	"gateway/internal/pkg/request"
	"gateway/internal/pkg/response"
	"gateway/internal/service/auth"
	"gateway/internal/telemetry"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	trace       *telemetry.Trace
	authService *auth.AuthService
}

func NewAuthHandler(trace *telemetry.Trace, authService *auth.AuthService) *AuthHandler {
	return &AuthHandler{trace: trace, authService: authService}
}

// Login 驗證 access key
// @Summary 驗證 access key
// @Description 成功時回傳可作為 Bearer token 的 access key 本身
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body auth.LoginRequest true "access key"
// @Success 200 {object} auth.LoginReply
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Auth denied"
// @Router /auth [post]
func (handler *AuthHandler) Login(c *gin.Context) {
	ctx, _, end := handler.trace.WithSpan(c)
	payload, ok := request.Payload[auth.LoginRequest](c)
	if !ok {
		err := cErr.InvalidInput("request body is required")
		end(err)
		response.AbortWithError(c, err)
		return
	}

	reply, err := handler.authService.Authenticate(ctx, payload)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	end(nil)
	response.Success(c, reply)
}
