package auth

import (
	"context"

	"gateway/internal/pkg/request"
	"gateway/internal/telemetry"
	"gateway/utils/secret"

	"go.uber.org/zap"
)

// LoginRequest POST /auth
type LoginRequest struct {
	AccessKey string `json:"access_key" binding:"required" example:"secret123"`
}

func (r *LoginRequest) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"AccessKey.required": "access_key is required",
	}
}

// LoginReply token 即 access key 本身
type LoginReply struct {
	Authenticated bool   `json:"authenticated" example:"true"`
	Message       string `json:"message" example:"Authentication successful"`
	Token         string `json:"token" example:"secret123"`
}

type AuthService struct {
	gate   Gate
	metric *telemetry.Metric
	logger *zap.Logger
}

func NewAuthService(gate Gate, metric *telemetry.Metric, logger *zap.Logger) *AuthService {
	return &AuthService{gate: gate, metric: metric, logger: logger}
}

func (s *AuthService) Configured() bool {
	return s.gate.Configured()
}

// Verify 每個受保護請求都重新驗證
func (s *AuthService) Verify(ctx context.Context, where, credential string) Result {
	res := s.gate.Validate(credential)
	if res.Authorized {
		return res
	}
	if s.metric != nil && s.metric.AuthDeniedTotal != nil {
		s.metric.AuthDeniedTotal.WithLabelValues(string(res.Reason)).Inc()
	}
	s.logger.Info("authentication denied",
		zap.String("where", where),
		zap.String("reason", string(res.Reason)),
		zap.String("credential", secret.Mask(credential)),
		zap.String("trace_id", telemetry.TraceIDFromContext(ctx)),
	)
	return res
}

// Authenticate 驗證 access key，成功時回傳可重複使用的 bearer token
func (s *AuthService) Authenticate(ctx context.Context, req *LoginRequest) (*LoginReply, error) {
	if err := s.Verify(ctx, "login", req.AccessKey).Err(); err != nil {
		return nil, err
	}
	return &LoginReply{
		Authenticated: true,
		Message:       "Authentication successful",
		Token:         req.AccessKey,
	}, nil
}
