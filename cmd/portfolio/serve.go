package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"portfolio/internal/handler"
	"portfolio/internal/service"

	_ "portfolio/docs"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	logger := a.logger
	cfg := a.cfg

	b, err := openStore(cfg, cfg.Store.Driver, logger)
	if err != nil {
		return err
	}
	defer b.close()

	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	portfolioSvc := &service.PortfolioService{Store: b.store, Logger: logger}
	analyticsSvc := &service.AnalyticsService{Portfolio: portfolioSvc}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(handler.CORS(cfg.Server.CORSOrigin))
	engine.Use(handler.RequestLogger(logger))

	health := &handler.HealthHandler{Store: b.store, DB: b.conn}
	health.Register(engine)

	portfolio := &handler.PortfolioHandler{Service: portfolioSvc, Logger: logger}
	portfolio.Register(engine)

	analytics := &handler.AnalyticsHandler{Service: analyticsSvc, Logger: logger}
	analytics.Register(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case serveErr = <-errCh:
		logger.Error("server error", zap.Error(serveErr))
	}

	timeout := cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	return serveErr
}
