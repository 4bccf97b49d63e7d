package error

// Kind 對外穩定的錯誤種類（回應 envelope 的 error.kind）
type Kind string

const (
	KindInvalidInput       Kind = "invalid_input"
	KindAuthDenied         Kind = "auth_denied"
	KindNotFound           Kind = "not_found"
	KindServiceUnavailable Kind = "service_unavailable"
	KindUpstreamRejected   Kind = "upstream_rejected"
	KindUpstreamError      Kind = "upstream_error"
	KindInternal           Kind = "internal_error"
)

const (
	// 0 ~ 999: 成功類別
	SUCCESS = 0 // 200 OK

	// 40000 ~ 40099: 用戶請求錯誤 (400 系列)
	BAD_REQUEST_BODY   = 40000 // 400 - 無效的請求體
	BAD_REQUEST_PARAMS = 40001 // 400 - 無效的請求參數

	// 40100 ~ 40399: 驗證與權限錯誤 (401 403 系列)
	MISSING_CREDENTIAL  = 40100 // 401 - 未提供存取金鑰
	INVALID_CREDENTIAL  = 40300 // 403 - 存取金鑰不符
	AUTH_NOT_CONFIGURED = 40301 // 403 - 伺服器未設定存取金鑰

	// 40400 ~ 40499: 資源錯誤 (404 系列)
	NOT_FOUND = 40400 // 404 - 資源未找到

	// 50000 ~ 50199: 伺服器內部錯誤 (500 系列)
	INTERNAL_ERROR       = 50000 // 500 - 內部錯誤
	SERVICE_UNAVAILABLE  = 50300 // 503 - 上游憑證未設定
	UPSTREAM_UNREACHABLE = 50301 // 503 - 上游無法連線

	// 50200 ~ 50299: 上游錯誤 (502 系列)
	UPSTREAM_REJECTED       = 50200 // 502 - 上游回應 4xx
	UPSTREAM_ERROR          = 50201 // 502 - 上游回應 5xx
	UPSTREAM_RESPONSE_ERROR = 50202 // 502 - 上游回應格式錯誤
	UPSTREAM_TIMEOUT        = 50203 // 502 - 上游逾時
)
