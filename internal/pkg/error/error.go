package error

import (
	"errors"
	"net/http"
)

type Error struct {
	httpCode  int
	errorCode int
	kind      Kind
	errorMsg  string
	cause     error
}

func New(httpCode, errorCode int, kind Kind, errorMsg string) *Error {
	return &Error{
		httpCode:  httpCode,
		errorCode: errorCode,
		kind:      kind,
		errorMsg:  errorMsg,
	}
}

// From 將任意錯誤轉為 *Error；非 *Error 一律視為內部錯誤且不外洩細節
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return InternalServer("internal server error").Wrap(err)
}

// ✅ 用戶端錯誤 (400 系列)
func InvalidInput(errorMsg string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_BODY, KindInvalidInput, errorMsg)
}

func InvalidParams(errorMsg string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_PARAMS, KindInvalidInput, errorMsg)
}

// ✅ 權限錯誤 (401, 403)
func MissingCredential(errorMsg string) *Error {
	return New(http.StatusUnauthorized, MISSING_CREDENTIAL, KindAuthDenied, errorMsg)
}

func InvalidCredential(errorMsg string) *Error {
	return New(http.StatusForbidden, INVALID_CREDENTIAL, KindAuthDenied, errorMsg)
}

func AuthNotConfigured(errorMsg string) *Error {
	return New(http.StatusForbidden, AUTH_NOT_CONFIGURED, KindAuthDenied, errorMsg)
}

// ✅ 資源找不到 (404)
func NotFound(errorMsg string) *Error {
	return New(http.StatusNotFound, NOT_FOUND, KindNotFound, errorMsg)
}

// ✅ 伺服器內部錯誤 (500 系列)
func InternalServer(errorMsg string) *Error {
	return New(http.StatusInternalServerError, INTERNAL_ERROR, KindInternal, errorMsg)
}

func ServiceUnavailable(errorMsg string) *Error {
	return New(http.StatusServiceUnavailable, SERVICE_UNAVAILABLE, KindServiceUnavailable, errorMsg)
}

func UpstreamUnreachable(errorMsg string) *Error {
	return New(http.StatusServiceUnavailable, UPSTREAM_UNREACHABLE, KindServiceUnavailable, errorMsg)
}

// ✅ 上游錯誤 (502)
func UpstreamRejected(errorMsg string) *Error {
	return New(http.StatusBadGateway, UPSTREAM_REJECTED, KindUpstreamRejected, errorMsg)
}

func UpstreamError(errorMsg string) *Error {
	return New(http.StatusBadGateway, UPSTREAM_ERROR, KindUpstreamError, errorMsg)
}

func UpstreamResponseError(errorMsg string) *Error {
	return New(http.StatusBadGateway, UPSTREAM_RESPONSE_ERROR, KindUpstreamError, errorMsg)
}

func UpstreamTimeout(errorMsg string) *Error {
	return New(http.StatusBadGateway, UPSTREAM_TIMEOUT, KindUpstreamError, errorMsg)
}

// Wrap 保留原始錯誤供 log 使用，對外訊息不變
func (e *Error) Wrap(cause error) *Error {
	cp := *e
	cp.cause = cause
	return &cp
}

func (e *Error) HttpCode() int {
	return e.httpCode
}

func (e *Error) ErrorCode() int {
	return e.errorCode
}

func (e *Error) Kind() Kind {
	return e.kind
}

func (e *Error) Message() string {
	return e.errorMsg
}

func (e *Error) Error() string {
	if e.cause != nil {
		return string(e.kind) + ": " + e.errorMsg + ": " + e.cause.Error()
	}
	return string(e.kind) + ": " + e.errorMsg
}

func (e *Error) Unwrap() error {
	return e.cause
}

// MapHttpStatusToError 用於 handler 直接寫出非 2xx 但未附 *Error 的情況
func MapHttpStatusToError(status int, msg string) *Error {
	switch {
	case status == http.StatusBadRequest:
		return InvalidInput(msg)
	case status == http.StatusUnauthorized:
		return MissingCredential(msg)
	case status == http.StatusForbidden:
		return InvalidCredential(msg)
	case status == http.StatusNotFound:
		return NotFound(msg)
	case status == http.StatusServiceUnavailable:
		return ServiceUnavailable(msg)
	case status == http.StatusBadGateway || status == http.StatusGatewayTimeout:
		return UpstreamError(msg)
	default:
		return InternalServer(msg)
	}
}
