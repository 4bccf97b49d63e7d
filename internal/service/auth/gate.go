package auth

import (
	"crypto/sha256"
	"crypto/subtle"

	"gateway/config"
	cErr "gateway/internal/pkg/error"
)

// Reason 拒絕原因，同時作為 metric label
type Reason string

const (
	ReasonMissingCredential Reason = "missing_credential"
	ReasonMismatch          Reason = "mismatch"
	ReasonNotConfigured     Reason = "auth_not_configured"
)

// Result 單次驗證結果；不保留任何 session
type Result struct {
	Authorized bool
	Reason     Reason
}

func Authorized() Result { return Result{Authorized: true} }

func Denied(reason Reason) Result { return Result{Reason: reason} }

// Err 轉成對外的錯誤：缺少憑證 401，其餘 403
func (r Result) Err() error {
	if r.Authorized {
		return nil
	}
	switch r.Reason {
	case ReasonMissingCredential:
		return cErr.MissingCredential("missing access credential")
	case ReasonNotConfigured:
		return cErr.AuthNotConfigured("authentication is not configured on this server")
	default:
		return cErr.InvalidCredential("invalid access key")
	}
}

// Gate 驗證呈上的憑證；之後換成每人一把的憑證儲存只需替換實作
type Gate interface {
	Validate(presented string) Result
	Configured() bool
}

// AccessKeyGate 單一共用 access key
type AccessKeyGate struct {
	configured bool
	digest     [sha256.Size]byte
}

func NewAccessKeyGate(conf *config.Configuration) *AccessKeyGate {
	if !conf.AuthConfigured() {
		return &AccessKeyGate{}
	}
	return &AccessKeyGate{
		configured: true,
		digest:     sha256.Sum256([]byte(conf.Auth.AccessKey)),
	}
}

func (g *AccessKeyGate) Configured() bool {
	return g.configured
}

// Validate 未設定 access key 時一律拒絕。
// 比對的是兩邊的 SHA-256 digest，長度固定，不洩漏 key 長度。
func (g *AccessKeyGate) Validate(presented string) Result {
	if !g.configured {
		return Denied(ReasonNotConfigured)
	}
	if presented == "" {
		return Denied(ReasonMissingCredential)
	}
	sum := sha256.Sum256([]byte(presented))
	if subtle.ConstantTimeCompare(sum[:], g.digest[:]) != 1 {
		return Denied(ReasonMismatch)
	}
	return Authorized()
}
