// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers serves the public site. Every state-changing request
// restores the visitor's navigation controller from their session, applies
// one action, waits for the transition to settle and saves the result.
package handlers

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"coffeebloom/internal/cache"
	"coffeebloom/internal/catalog"
	"coffeebloom/internal/engine"
	"coffeebloom/internal/inquiry"
	"coffeebloom/internal/metrics"
	"coffeebloom/internal/middleware"
	"coffeebloom/internal/models"
	"coffeebloom/internal/navigation"
	"coffeebloom/internal/render"
	"coffeebloom/internal/session"
)

// csrfPlaceholder stands in for the visitor's CSRF token in cached pages
// and is substituted on every response.
const csrfPlaceholder = "__csrf_token__"

// Options tune a Site.
type Options struct {
	// WhatsAppNumber receives inquiries. Required.
	WhatsAppNumber string
	// TransitionDelay defaults to navigation.DefaultTransitionDelay.
	TransitionDelay time.Duration
	// Scheduler overrides the transition timer source. Tests only.
	Scheduler navigation.Scheduler
}

// Site groups the public handlers. The page cache may be nil.
type Site struct {
	catalog  *catalog.Catalog
	sessions *session.Store
	pages    *cache.PageCache
	opts     Options
}

// NewSite creates the site handlers.
func NewSite(cat *catalog.Catalog, sessions *session.Store, pages *cache.PageCache, opts Options) *Site {
	if opts.TransitionDelay <= 0 {
		opts.TransitionDelay = navigation.DefaultTransitionDelay
	}
	return &Site{catalog: cat, sessions: sessions, pages: pages, opts: opts}
}

// Home renders the home page.
func (s *Site) Home(w http.ResponseWriter, r *http.Request) {
	s.show(w, r, models.PageHome)
}

// Page renders /{page}. A direct load switches page without a fade.
func (s *Site) Page(w http.ResponseWriter, r *http.Request) {
	page, err := models.ParsePageID(chi.URLParam(r, "page"))
	if err != nil || page == models.PageHome {
		// Home lives at "/" only.
		http.NotFound(w, r)
		return
	}
	s.show(w, r, page)
}

func (s *Site) show(w http.ResponseWriter, r *http.Request, page models.PageID) {
	visitor := s.visitor(r)

	prev := visitor.State
	st := prev
	st.Page = page
	c := s.controller(st, nil)
	defer c.Close()
	c.Mount()
	visitor.State = c.Snapshot()

	if prev.Page != page || !prev.Loaded {
		if err := s.save(r.Context(), visitor); err != nil {
			// A concurrent action won; this view is not worth replaying.
			slog.Debug("page view not saved", "page", page, "error", err)
		}
	}
	s.render(w, r, visitor.State, http.StatusOK, nil)
}

// visitor returns the session loaded by middleware.LoadVisitor, or an
// unsaved fresh one.
func (s *Site) visitor(r *http.Request) *session.Data {
	if v := middleware.VisitorFromCtx(r.Context()); v != nil {
		return v
	}
	return &session.Data{State: navigation.Initial()}
}

// controller restores a navigation controller for st. onScroll, when not
// nil, runs after each completed transition.
func (s *Site) controller(st navigation.State, onScroll func()) *navigation.Controller {
	opts := []navigation.Option{
		navigation.WithDelay(s.opts.TransitionDelay),
		navigation.WithGallery(s.catalog.GallerySize),
		navigation.WithTransitionHook(metrics.ObserveTransition),
	}
	if s.opts.Scheduler != nil {
		opts = append(opts, navigation.WithScheduler(s.opts.Scheduler))
	}
	if onScroll != nil {
		opts = append(opts, navigation.WithViewport(navigation.ViewportFunc(onScroll)))
	}
	return navigation.Restore(st, opts...)
}

// save stores the visitor state. Failures other than session.ErrConflict
// are logged and swallowed; the response still reflects the new state.
func (s *Site) save(ctx context.Context, visitor *session.Data) error {
	if visitor.ID == "" {
		return nil
	}
	err := s.sessions.Update(ctx, visitor)
	switch {
	case errors.Is(err, session.ErrConflict):
		return err
	case err != nil:
		slog.Warn("visitor session save failed", "error", err)
	}
	return nil
}

// render writes the page for st. Pages without an open overlay are served
// from and stored in the page cache.
func (s *Site) render(w http.ResponseWriter, r *http.Request, st navigation.State, status int, formErrs *inquiry.ValidationError) {
	ctx := r.Context()
	token := middleware.CSRFTokenFromCtx(ctx)

	cacheable := s.pages != nil && status == http.StatusOK && st.Lightbox == nil && !st.BookingOpen
	key := cache.PageKey(st.Mode, st.Page, render.Variant(r))
	if cacheable {
		if body, ok := s.pages.Get(ctx, key); ok {
			render.HTML(w, status, withToken(body, token))
			return
		}
	}

	v := engine.NewView(s.catalog, st, csrfPlaceholder)
	v.FormErrors = formErrs
	body, err := render.Bytes(r, v)
	if err != nil {
		slog.Error("render page failed", "page", st.Page, "mode", st.Mode, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if cacheable {
		s.pages.Set(ctx, key, body)
	}
	render.HTML(w, status, withToken(body, token))
}

func withToken(body []byte, token string) []byte {
	return bytes.ReplaceAll(body, []byte(csrfPlaceholder), []byte(token))
}
