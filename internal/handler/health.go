package handler

import (
	"net/http"
	"runtime"

	"gateway/config"
	"gateway/internal/pkg/response"
	"gateway/internal/service"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthStatus *service.HealthService
	config       *config.Configuration
}

func NewHealthHandler(status *service.HealthService, config *config.Configuration) *HealthHandler {
	return &HealthHandler{healthStatus: status, config: config}
}

// Health 服務狀態
// @Summary 服務狀態
// @Description 回報上游憑證與 access key 是否設定，以及最近一次 probe 結果；不會呼叫上游
// @Tags Health
// @Produce json
// @Success 200 {object} service.HealthReport
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response.Success(c, h.healthStatus.Report())
}

func (h *HealthHandler) Liveness(c *gin.Context) {
	if h.healthStatus.IsLive() {
		c.JSON(http.StatusOK, gin.H{"status": "alive"})
		return
	}
	c.Status(http.StatusServiceUnavailable)
}

func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.healthStatus.IsReady() {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
		return
	}
	c.Status(http.StatusServiceUnavailable)
}

// Version 執行期資訊
func (h *HealthHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":       h.config.App.Name,
		"version":    h.config.App.Version,
		"env":        h.config.App.Env,
		"go_version": runtime.Version(),
	})
}
