package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"gateway/config"
	"gateway/internal/cron"
	"gateway/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RuntimeInfo struct {
	Env       string    `json:"env"`
	Name      string    `json:"name"`
	Version   string    `json:"version"`
	GoVersion string    `json:"go_version"`
	StartAt   time.Time `json:"start_at"`
}

type App struct {
	conf          *config.Configuration
	logger        *zap.Logger
	cronSrv       *cron.Cron
	httpSrv       *http.Server
	healthService *service.HealthService

	appInfo RuntimeInfo // 版本/環境快照（來源 = conf.App）
	done    chan error
}

func newHttpServer(
	conf *config.Configuration,
	router *gin.Engine,
) *http.Server {
	return &http.Server{
		Addr:              ":" + strconv.FormatUint(uint64(conf.App.Port), 10),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// newHttpClient 上游呼叫共用；逾時由每次呼叫的 context 控制
func newHttpClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   20,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: time.Second,
			// 由 upstream client 自行處理 br / zstd / gzip
			DisableCompression: true,
		},
	}
}

func newApp(
	conf *config.Configuration,
	logger *zap.Logger,
	httpSrv *http.Server,
	healthService *service.HealthService,
	cronSrv *cron.Cron,
) *App {
	return &App{
		conf:          conf,
		logger:        logger,
		httpSrv:       httpSrv,
		healthService: healthService,
		cronSrv:       cronSrv,
		appInfo: RuntimeInfo{
			Env:       conf.App.Env,
			Name:      conf.App.Name,
			Version:   conf.App.Version,
			GoVersion: runtime.Version(),
			StartAt:   time.Now(),
		},
		done: make(chan error, 1),
	}
}

func (a *App) Run() error {
	// 1) 啟動時寫入版本/環境資訊
	info := a.appInfo
	a.logger.Info("app runtime info",
		zap.String("env", info.Env),
		zap.String("name", info.Name),
		zap.String("version", info.Version),
		zap.String("go_version", info.GoVersion),
		zap.Time("start_at", info.StartAt),
		zap.Bool("upstream_configured", a.conf.UpstreamConfigured()),
		zap.Bool("auth_configured", a.conf.AuthConfigured()),
	)

	// 2) 啟動 cron
	if err := a.cronSrv.Run(); err != nil {
		return err
	}
	a.logger.Info("cron server started")

	// 3) 啟動 http server
	ln, err := net.Listen("tcp", a.httpSrv.Addr)
	if err != nil {
		return err
	}
	go func() {
		if err := a.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.done <- err
		}
	}()
	a.logger.Info("http server started", zap.String("addr", a.httpSrv.Addr))

	a.healthService.SetReady(true)
	return nil
}

// Done http server 非預期結束時回傳錯誤
func (a *App) Done() <-chan error {
	return a.done
}

func (a *App) Stop(ctx context.Context) error {
	if a.healthService != nil {
		a.healthService.SetReady(false)
	}
	var errs []error
	if a.httpSrv != nil {
		if err := a.httpSrv.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
		a.logger.Info("http server has been stop")
	}
	if a.cronSrv != nil {
		if err := a.cronSrv.Stop(ctx); err != nil {
			errs = append(errs, err)
		}
		a.logger.Info("cron server has been stop")
	}
	return errors.Join(errs...)
}
