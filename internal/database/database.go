package database

import (
	client "gateway/internal/database/client"
	fluentdRepo "gateway/internal/database/fluentd/repository"

	"github.com/google/wire"
)

// ProviderSet 只有 fluentd 紀錄轉送；本服務不落地任何資料
var ProviderSet = wire.NewSet(
	client.NewFluentdClient,
	fluentdRepo.ProviderSet,
)
