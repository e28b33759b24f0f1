package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nikolayk812/storefront-cart/internal/cart"
	"github.com/nikolayk812/storefront-cart/internal/config"
	"github.com/nikolayk812/storefront-cart/internal/countdown"
	"github.com/nikolayk812/storefront-cart/internal/logging"
	"github.com/nikolayk812/storefront-cart/internal/render"
	"github.com/nikolayk812/storefront-cart/internal/web"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		return fmt.Errorf("logging.New: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, closeKV, err := openBackend(ctx, cfg)
	if err != nil {
		return fmt.Errorf("openBackend: %w", err)
	}
	defer closeKV()

	store, err := cart.New(kv,
		cart.WithKey(cfg.CartKey),
		cart.WithLogger(logger.Named("cart")))
	if err != nil {
		return fmt.Errorf("cart.New: %w", err)
	}

	unit, err := render.ParseCurrency(cfg.Currency)
	if err != nil {
		return fmt.Errorf("render.ParseCurrency: %w", err)
	}

	api, err := web.NewAPI(web.Dependencies{
		Store:    store,
		Renderer: render.New(render.WithCurrency(unit)),
		Sale:     countdown.NewSale(time.Now().Add(cfg.SaleDuration), nil),
		Logger:   logger.Named("web"),
	})
	if err != nil {
		return fmt.Errorf("web.NewAPI: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening",
			zap.String("addr", cfg.Addr),
			zap.String("backend", cfg.Backend))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown: %w", err)
	}

	return nil
}
