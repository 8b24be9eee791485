// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the Coffee Bloom Estates site.
// It loads configuration, connects to Valkey, sets up routing, and runs
// the HTTP servers with graceful shutdown support.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"coffeebloom/internal/cache"
	"coffeebloom/internal/catalog"
	"coffeebloom/internal/config"
	"coffeebloom/internal/handlers"
	"coffeebloom/internal/metrics"
	"coffeebloom/internal/middleware"
	"coffeebloom/internal/router"
	"coffeebloom/internal/session"
	"coffeebloom/web"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Structured logger: text in development, JSON elsewhere.
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var logger *slog.Logger
	if cfg.IsDev() {
		logger = slog.New(slog.NewTextHandler(os.Stdout, opts))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	slog.SetDefault(logger)

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"transition_delay", cfg.TransitionDelay,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	// Valkey holds visitor sessions and the page cache.
	valkeyClient, err := cache.ConnectValkey(ctx, cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword, cfg.ValkeyDB)
	if err != nil {
		return err
	}
	defer valkeyClient.Close()

	// In non-development environments, mark cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessions := session.NewStore(valkeyClient, secureCookies)

	// Rendered pages depend on the embedded catalog, so anything cached by
	// a previous build is stale.
	pageCache := cache.NewPageCache(valkeyClient, cfg.PageCacheTTL)
	pageCache.InvalidateAll(ctx)

	limiter := middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
	defer limiter.Stop()

	site := handlers.NewSite(cat, sessions, pageCache, handlers.Options{
		WhatsAppNumber:  cfg.WhatsAppNumber,
		TransitionDelay: cfg.TransitionDelay,
	})

	static := web.Static()
	for _, name := range web.MissingAssets(static) {
		slog.Warn("static asset missing; run make vendor-js", "asset", name)
	}

	metricsHandler := metrics.Handler(metrics.NewRegistry())
	rcfg := router.Config{
		Sessions:      sessions,
		Limiter:       limiter,
		Static:        static,
		SecureCookies: secureCookies,
	}
	if cfg.MetricsAddr == "" {
		rcfg.Metrics = metricsHandler
	}

	servers := []*http.Server{{
		Addr:         cfg.Addr(),
		Handler:      router.New(rcfg, site),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}}
	if cfg.MetricsAddr != "" {
		servers = append(servers, &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           metricsHandler,
			ReadHeaderTimeout: 5 * time.Second,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		g.Go(func() error {
			slog.Info("server starting", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	// Graceful shutdown: wait for SIGINT/SIGTERM or a failed listener, then
	// drain connections.
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutdown started")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("server stopped gracefully")
	return nil
}
