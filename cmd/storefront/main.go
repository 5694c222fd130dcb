package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"storefront/internal/backend"
	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/config"
	"storefront/internal/httpserver"
	"storefront/internal/ordering"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to YAML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	base := backend.Resolve(cfg.Backend.URL, cfg.Backend.Override, cfg.Server.Origin)
	if base == "" {
		logger.Warn("ordering service base URL unresolved, menu and checkout will fail until configured")
	} else {
		logger.Info("ordering service resolved", zap.String("base", base))
	}

	client := ordering.New(base, logger, cfg.RequestTimeout(), cfg.SubmitTimeout())
	loader := catalog.NewLoader(client, logger)
	carts := cart.NewStore(cfg.SessionTTL())
	defer carts.Close()
	submitter := checkout.New(client, logger)

	srv := httpserver.New(cfg.Server.Addr, logger, httpserver.Deps{
		Loader:      loader,
		Carts:       carts,
		Submitter:   submitter,
		BackendBase: base,
	}, httpserver.Options{
		SessionTTL:       cfg.SessionTTL(),
		CORSAllowOrigins: cfg.CORS.AllowOrigins,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting storefront", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("server stopped")
	}
}
