package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"avery/internal/bot"
	"avery/internal/config"
	"avery/internal/constants"
	"avery/internal/logger"
	"avery/internal/notifier"
	"avery/internal/relay"
	"avery/pkg/bootstrap"
	"avery/pkg/health"
	"avery/pkg/metrics"
	"avery/pkg/middleware"
	"avery/pkg/ratelimit"
)

type App struct {
	config *config.Config
	logger logger.Logger
	base   *bootstrap.Base
	botAPI *tgbotapi.BotAPI
	bot    *bot.Bot
	server *http.Server
	router *gin.Engine
}

func NewApp(cfg *config.Config, log logger.Logger) *App {
	return &App{
		config: cfg,
		logger: log,
		base:   bootstrap.NewBase(cfg, log),
	}
}

func (a *App) Initialize(ctx context.Context) error {
	if err := a.base.InitStore(); err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}

	if err := a.initTelegram(ctx); err != nil {
		return fmt.Errorf("failed to initialize telegram: %w", err)
	}

	if err := a.initRouter(); err != nil {
		return fmt.Errorf("failed to initialize router: %w", err)
	}

	if err := a.initServer(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	return nil
}

func (a *App) initTelegram(ctx context.Context) error {
	api, err := bootstrap.InitTelegram(ctx, a.base)
	if err != nil {
		return err
	}
	a.botAPI = api
	return nil
}

func (a *App) initRouter() error {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware(a.logger))
	router.Use(middleware.LoggerMiddleware(a.logger))
	router.Use(middleware.RequestIDMiddleware())

	if len(a.config.Server.CORSOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = a.config.Server.CORSOrigins
		corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
		router.Use(cors.New(corsConfig))
	}

	if a.config.RateLimit.Enabled {
		rateLimitConfig := ratelimit.RateLimitConfig{
			RPS:             a.config.RateLimit.RPS,
			Burst:           a.config.RateLimit.Burst,
			CleanupInterval: time.Duration(a.config.RateLimit.CleanupInterval) * time.Second,
			MaxAge:          time.Duration(a.config.RateLimit.MaxAge) * time.Second,
		}
		router.Use(ratelimit.RateLimitMiddleware(rateLimitConfig))
		a.logger.InfowCtx(context.Background(), "Rate limiting enabled", "rps", rateLimitConfig.RPS, "burst", rateLimitConfig.Burst)
	}

	adminNotifier := notifier.NewCircuitBreakerNotifier(
		notifier.NewTelegramNotifier(a.botAPI, a.config.Telegram.AdminChatID),
		a.config.CircuitBreaker,
	)

	svc := relay.NewService(a.base.Store, adminNotifier, a.logger)

	handler := relay.NewHandler(svc, a.logger)
	handler.RegisterRoutes(router)

	dispatcher := bot.NewDispatcher(a.botAPI, svc, a.config.Storefront, a.logger)
	a.bot = bot.New(a.botAPI, dispatcher, a.logger, a.config.Telegram.PollTimeoutSeconds)

	metrics.RegisterRelayMetrics()
	metrics.RegisterCircuitBreakerMetrics()

	healthRegistry := health.NewCheckerRegistry()
	healthRegistry.Register(health.NewStoreChecker(a.base.Store))
	healthRegistry.Register(health.NewTelegramChecker(a.botAPI))

	router.GET("/health", func(c *gin.Context) {
		h := healthRegistry.Check(c.Request.Context())
		statusCode := http.StatusOK
		if h.Status == health.StatusUnhealthy {
			statusCode = http.StatusServiceUnavailable
		}
		c.JSON(statusCode, h)
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	a.router = router
	return nil
}

func (a *App) initServer() error {
	a.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  time.Duration(a.config.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(a.config.Server.WriteTimeoutSeconds) * time.Second,
	}
	return nil
}

func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.InfowCtx(gctx, "Server listening", "port", a.config.Server.Port)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return a.bot.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		return a.Shutdown(gctx)
	})

	return g.Wait()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.InfowCtx(ctx, "Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	var errs []error

	if a.server != nil {
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("server shutdown error: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}

	a.logger.InfowCtx(ctx, "Server exited successfully")
	return nil
}
