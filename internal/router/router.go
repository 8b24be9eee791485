// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// Coffee Bloom site.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"coffeebloom/internal/handlers"
	"coffeebloom/internal/middleware"
	"coffeebloom/internal/session"
)

// Config carries what New needs beyond the handlers.
type Config struct {
	Sessions *session.Store
	// Limiter guards booking submissions. Nil disables rate limiting.
	Limiter *middleware.RateLimiter
	// Static is served at /static/. Nil disables static files.
	Static fs.FS
	// Metrics, when not nil, is mounted at /metrics on the site listener.
	Metrics http.Handler
	// SecureCookies marks the CSRF cookie Secure.
	SecureCookies bool
}

// New creates the configured chi router.
func New(cfg Config, site *handlers.Site) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(middleware.SecureHeaders)

	// Health, metrics and static assets need no visitor session.
	r.Get("/health", healthHandler)
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}
	if cfg.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", staticHandler(cfg.Static)))
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.NewCSRF(cfg.SecureCookies))
		r.Use(middleware.LoadVisitor(cfg.Sessions))

		// Pages.
		r.Get("/", site.Home)
		r.Get("/{page}", site.Page)

		// Transitions and overlays.
		r.Post("/navigate/{page}", site.Navigate)
		r.Post("/mode/{mode}", site.SwitchMode)
		r.Post("/lightbox/close", site.CloseLightbox)
		r.Post("/lightbox/{index}", site.OpenLightbox)
		r.Post("/booking/open", site.OpenBooking)
		r.Post("/booking/close", site.CloseBooking)

		// Inquiries.
		r.Group(func(r chi.Router) {
			if cfg.Limiter != nil {
				r.Use(cfg.Limiter.Middleware)
			}
			r.Post("/booking", site.SubmitBooking)
		})
		r.Get("/inquiry", site.GeneralInquiry)
		r.Get("/inquiry/qr.png", site.InquiryQR)

		r.Get("/api/state", site.State)
	})

	return r
}

// staticHandler serves embedded assets with a long cache lifetime.
func staticHandler(fsys fs.FS) http.Handler {
	files := http.FileServerFS(fsys)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=86400")
		files.ServeHTTP(w, r)
	})
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
