package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/taoyao-code/sysex-kit/internal/api"
	"github.com/taoyao-code/sysex-kit/internal/api/middleware"
	"github.com/taoyao-code/sysex-kit/internal/app"
	cfgpkg "github.com/taoyao-code/sysex-kit/internal/config"
	"github.com/taoyao-code/sysex-kit/internal/httpserver"
	"github.com/taoyao-code/sysex-kit/internal/logging"
	"github.com/taoyao-code/sysex-kit/internal/metrics"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径（默认 configs/example.yaml）")
	flag.Parse()

	// 1) 加载配置
	cfg, err := cfgpkg.Load(*configPath)
	if err != nil {
		panic(err)
	}

	// 2) 初始化日志
	logger, err := logging.InitLogger(cfg.Logging)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)
	log := zap.L()

	serverID := app.GenerateServerID()
	log.Info("starting syxd", zap.String("serverID", serverID), zap.String("env", cfg.App.Env))

	// 3) 指标注册与处理器
	reg := metrics.NewRegistry()
	appMetrics := metrics.NewAppMetrics(reg)
	var metricsHandler = metrics.Handler(reg)
	if !cfg.Metrics.Enable {
		metricsHandler = nil
	}

	// 4) API 与 HTTP 服务
	handler := api.NewHandler(log, appMetrics)
	limiter := middleware.NewRateLimiter(cfg.Limits.RatePerSec, cfg.Limits.Burst)
	httpSrv := httpserver.New(cfg.HTTP, cfg.Metrics.Path, metricsHandler, func() bool { return true },
		func(r *gin.Engine) {
			api.RegisterRoutes(r, handler,
				middleware.RequestID(),
				middleware.BodyLimit(cfg.Limits.MaxBodyBytes),
				middleware.RateLimit(limiter, appMetrics.RateLimited.Inc),
			)
		})

	go func() {
		if err := httpSrv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server error", zap.Error(err))
		}
	}()
	log.Info("http server listening", zap.String("addr", cfg.HTTP.Addr))

	// 信号处理，优雅关闭
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(ctx)
	log.Info("syxd stopped")
}
