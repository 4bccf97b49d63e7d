package response

import (
	cErr "gateway/internal/pkg/error"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	DataKey    = "data"
	MessageKey = "message"
)

// ErrorBody 所有路由共用的錯誤格式
type ErrorBody struct {
	Kind      cErr.Kind `json:"kind"`
	Message   string    `json:"message"`
	Code      int       `json:"code,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Success 交由 Response middleware 統一輸出；成功回應即為各端點的 payload 本身
func Success(c *gin.Context, data any) {
	c.Set(DataKey, data)
	c.Abort()
}

func AbortWithError(c *gin.Context, err error) {
	c.Error(err)
	c.Abort()
}

func Fail(c *gin.Context, requestID string, httpCode int, errorCode int, kind cErr.Kind, msg string) {
	c.JSON(httpCode, ErrorResponse{
		Error: ErrorBody{
			Kind:      kind,
			Message:   msg,
			Code:      errorCode,
			RequestID: requestID,
		},
	})
	c.Abort()
}

func FailByErr(c *gin.Context, requestID string, err error) {
	v := cErr.From(err)
	if v.HttpCode() >= http.StatusInternalServerError && v.Kind() == cErr.KindInternal {
		Fail(c, requestID, v.HttpCode(), v.ErrorCode(), v.Kind(), "internal server error")
		return
	}
	Fail(c, requestID, v.HttpCode(), v.ErrorCode(), v.Kind(), v.Message())
}
