// Package app 提供应用程序的初始化和配置功能.
package app

import (
	contextPkg "context"
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yeisme/uploadvault/pkg/configs"
	"github.com/yeisme/uploadvault/pkg/internal/handle"
	"github.com/yeisme/uploadvault/pkg/internal/router"
	"github.com/yeisme/uploadvault/pkg/internal/service"
	"github.com/yeisme/uploadvault/pkg/internal/storage"
	"github.com/yeisme/uploadvault/pkg/log"
	"github.com/yeisme/uploadvault/pkg/metrics"
	"github.com/yeisme/uploadvault/pkg/middleware"
	"github.com/yeisme/uploadvault/pkg/scheduler"
	"github.com/yeisme/uploadvault/pkg/tracing"
)

const storageProbeInterval = 30 * time.Second

// App 聚合 gin 引擎与应用依赖的生命周期.
type App struct {
	Engine    *gin.Engine
	config    *configs.AppConfig
	storage   *storage.Manager
	scheduler *scheduler.Scheduler
}

// NewApp 按 配置 -> 日志 -> 追踪 -> 监控 -> 存储 -> 服务 -> 路由 的顺序组装应用.
func NewApp(configPath string) *App {
	ctx := contextPkg.Background()

	// 初始化配置
	config, err := configs.InitConfig(configPath)
	if err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志
	log.Init(config)

	// 初始化追踪
	if err := tracing.InitTracer(config.Tracing); err != nil {
		fmt.Printf("Error initializing tracing: %v\n", err)
		os.Exit(1)
	}

	// 初始化监控
	if err := metrics.InitMetrics(config.Metrics); err != nil {
		fmt.Printf("Error initializing metrics: %v\n", err)
		os.Exit(1)
	}

	// 初始化存储资源
	manager, err := storage.Init(ctx, config)
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	// 业务服务
	issuer := service.NewTokenIssuer(&config.Auth)
	userService := service.NewUserService(manager.GetDBClient(), manager.GetMQClient())
	authService := service.NewAuthService(userService, issuer)
	fileService := service.NewFileService(
		manager.GetDBClient(),
		manager.GetS3Client(),
		manager.GetMQClient(),
		config.S3.PresignExpirySeconds,
	)

	if err := userService.EnsureFirstSuperuser(ctx, &config.Auth); err != nil {
		fmt.Printf("Error ensuring first superuser: %v\n", err)
		os.Exit(1)
	}

	l := log.Logger()
	gin.DefaultWriter = log.NewGinWriter(l, zerolog.InfoLevel)
	gin.DefaultErrorWriter = log.NewGinWriter(l, zerolog.ErrorLevel)

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		gzip.Gzip(gzip.DefaultCompression),
		middleware.CORSMiddleware(config.Server),
		middleware.RequestIDMiddleware(),
		middleware.GinLoggerMiddleware(),
		middleware.TracingMiddleware(),
		middleware.PrometheusMiddleware(),
	)

	if config.RateLimit.Enable {
		engine.Use(middleware.RateLimitMiddleware(config.RateLimit))
	}

	if config.CircuitBreaker.Enable {
		engine.Use(middleware.CircuitBreakerMiddleware(config.CircuitBreaker))
	}

	engine.Use(middleware.AuthMiddleware(authService, &config.Auth))

	router.Register(engine, config, router.Handlers{
		Auth:   handle.NewAuthHandler(authService),
		Users:  handle.NewUserHandler(userService),
		Files:  handle.NewFileHandler(fileService),
		Health: handle.NewHealthHandler(manager),
	})

	if config.Metrics.Enable {
		metrics.RegisterMetricsRoutes(config.Metrics, engine)
	}

	sched := newStorageProbeScheduler(ctx, manager)

	return &App{
		Engine:    engine,
		config:    config,
		storage:   manager,
		scheduler: sched,
	}
}

// Run 启动 HTTP 服务，阻塞直至退出.
func (a *App) Run() error {
	if a.scheduler != nil {
		a.scheduler.Start()
	}

	return a.Engine.Run(fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port))
}

// Close 释放调度器与存储资源.
func (a *App) Close() error {
	if a.scheduler != nil {
		if err := a.scheduler.Stop(); err != nil {
			log.Logger().Warn().Err(err).Msg("scheduler stop failed")
		}
	}

	if a.storage != nil {
		return a.storage.Close()
	}

	return nil
}

// newStorageProbeScheduler 注册周期性存储健康探测任务.
// 探测失败只记录日志，不影响服务可用性.
func newStorageProbeScheduler(ctx contextPkg.Context, manager *storage.Manager) *scheduler.Scheduler {
	sched, err := scheduler.NewScheduler()
	if err != nil {
		log.Logger().Warn().Err(err).Msg("scheduler init failed, storage probe disabled")

		return nil
	}

	probe := func(ctx contextPkg.Context) {
		probeCtx, cancel := contextPkg.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := manager.GetDBClient().HealthCheck(probeCtx); err != nil {
			log.Logger().Warn().Err(err).Msg("db health probe failed")
		}

		if err := manager.GetS3Client().HealthCheck(probeCtx); err != nil {
			log.Logger().Warn().Err(err).Msg("s3 health probe failed")
		}
	}

	if err := sched.AddInterval(ctx, "storage-health-probe", storageProbeInterval, probe); err != nil {
		log.Logger().Warn().Err(err).Msg("register storage probe failed")
	}

	return sched
}
