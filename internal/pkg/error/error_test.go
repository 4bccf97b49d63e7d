package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructors_StatusAndKind(t *testing.T) {
	cases := []struct {
		name   string
		err    *Error
		status int
		kind   Kind
	}{
		{"invalid input", InvalidInput("x"), http.StatusBadRequest, KindInvalidInput},
		{"missing credential", MissingCredential("x"), http.StatusUnauthorized, KindAuthDenied},
		{"mismatch", InvalidCredential("x"), http.StatusForbidden, KindAuthDenied},
		{"auth not configured", AuthNotConfigured("x"), http.StatusForbidden, KindAuthDenied},
		{"service unavailable", ServiceUnavailable("x"), http.StatusServiceUnavailable, KindServiceUnavailable},
		{"unreachable", UpstreamUnreachable("x"), http.StatusServiceUnavailable, KindServiceUnavailable},
		{"rejected", UpstreamRejected("x"), http.StatusBadGateway, KindUpstreamRejected},
		{"upstream error", UpstreamError("x"), http.StatusBadGateway, KindUpstreamError},
		{"timeout", UpstreamTimeout("x"), http.StatusBadGateway, KindUpstreamError},
		{"internal", InternalServer("x"), http.StatusInternalServerError, KindInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.status, tc.err.HttpCode())
			require.Equal(t, tc.kind, tc.err.Kind())
			require.Equal(t, "x", tc.err.Message())
		})
	}
}

func TestWrap_KeepsMessageAndExposesCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	base := UpstreamUnreachable("upstream unreachable")
	wrapped := base.Wrap(cause)

	require.Nil(t, base.Unwrap())
	require.ErrorIs(t, wrapped, cause)
	require.Equal(t, "upstream unreachable", wrapped.Message())
	require.Contains(t, wrapped.Error(), "connection refused")
}

func TestFrom(t *testing.T) {
	appErr := InvalidInput("messages must not be empty")
	require.Same(t, appErr, From(appErr))
	require.Same(t, appErr, From(fmt.Errorf("bind: %w", appErr)))

	converted := From(errors.New("boom"))
	require.Equal(t, KindInternal, converted.Kind())
	require.Equal(t, "internal server error", converted.Message())
}

func TestMapHttpStatusToError(t *testing.T) {
	require.Equal(t, KindInvalidInput, MapHttpStatusToError(http.StatusBadRequest, "").Kind())
	require.Equal(t, KindAuthDenied, MapHttpStatusToError(http.StatusUnauthorized, "").Kind())
	require.Equal(t, KindUpstreamError, MapHttpStatusToError(http.StatusGatewayTimeout, "").Kind())
	require.Equal(t, KindInternal, MapHttpStatusToError(http.StatusTeapot, "").Kind())
}
