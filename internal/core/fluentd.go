package core

type FluentdSubTag string

const (
	FluentdRequest  FluentdSubTag = "request_log"
	FluentdResponse FluentdSubTag = "response_log"
	FluentUsage     FluentdSubTag = "gateway_usage_log"
)

// 寫入 fluentd 的時間格式
const FluentdTimeLayout = "2006-01-02 15:04:05.999999 UTC"
