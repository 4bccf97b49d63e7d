package router

import (
	"gateway/internal/handler"
	"gateway/internal/pkg/request"
	"gateway/internal/service/auth"

	"github.com/gin-gonic/gin"
)

type AuthRouter struct {
	authHandler *handler.AuthHandler
}

func NewAuthRouter(authHandler *handler.AuthHandler) *AuthRouter {
	return &AuthRouter{authHandler: authHandler}
}

func (authRouter *AuthRouter) RegisterRoutes(r *gin.Engine) {
	r.POST("/auth", request.Bind[auth.LoginRequest](), authRouter.authHandler.Login)
}
