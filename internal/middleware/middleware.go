package middleware

import (
	"strings"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewCors,
	NewLogger,
	NewRecovery,
	NewTraceEntry,
	NewAuth,
	NewResponse,
)

// 不做 tracing / log / 統一包裝的路徑
var untracedPrefixes = []string{
	"/swagger",
	"/metrics",
	"/version",
	"/debug/pprof",
	"/static",
}

func isUntraced(endpoint string) bool {
	for _, p := range untracedPrefixes {
		if strings.HasPrefix(endpoint, p) {
			return true
		}
	}
	return false
}
