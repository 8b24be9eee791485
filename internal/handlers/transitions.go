// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/go-chi/chi/v5"

	"coffeebloom/internal/models"
	"coffeebloom/internal/navigation"
	"coffeebloom/internal/render"
	"coffeebloom/internal/session"
)

// scrollEvent is the HX-Trigger event the client answers by scrolling to
// the top of the page.
const scrollEvent = "scrollTop"

// Navigate runs a timed page transition.
func (s *Site) Navigate(w http.ResponseWriter, r *http.Request) {
	page, err := models.ParsePageID(chi.URLParam(r, "page"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	s.act(w, r, func(c *navigation.Controller) error {
		return c.Navigate(page)
	})
}

// SwitchMode runs a timed property switch. Switching to the current mode
// changes nothing.
func (s *Site) SwitchMode(w http.ResponseWriter, r *http.Request) {
	mode, err := models.ParseMode(chi.URLParam(r, "mode"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	s.act(w, r, func(c *navigation.Controller) error {
		_, err := c.SwitchMode(mode)
		return err
	})
}

// OpenLightbox shows gallery image {index} of the current property.
func (s *Site) OpenLightbox(w http.ResponseWriter, r *http.Request) {
	k, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	s.act(w, r, func(c *navigation.Controller) error {
		return c.OpenLightbox(k)
	})
}

func (s *Site) CloseLightbox(w http.ResponseWriter, r *http.Request) {
	s.act(w, r, func(c *navigation.Controller) error {
		c.CloseLightbox()
		return nil
	})
}

func (s *Site) OpenBooking(w http.ResponseWriter, r *http.Request) {
	s.act(w, r, func(c *navigation.Controller) error {
		c.OpenBooking()
		return nil
	})
}

func (s *Site) CloseBooking(w http.ResponseWriter, r *http.Request) {
	s.act(w, r, func(c *navigation.Controller) error {
		c.CloseBooking()
		return nil
	})
}

// maxActAttempts bounds how often act replays an action that lost a race
// with another request from the same visitor.
const maxActAttempts = 3

// act applies one action to the visitor's controller, waits out any fade,
// saves the new state and answers with the refreshed app region (HTMX) or
// a redirect to the current page. When another request saved the session
// in the meantime, the action is replayed on the fresh state so neither
// change is lost.
func (s *Site) act(w http.ResponseWriter, r *http.Request, action func(c *navigation.Controller) error) {
	ctx := r.Context()
	visitor := s.visitor(r)

	var scrolled bool
	for attempt := 1; ; attempt++ {
		var err error
		scrolled, err = s.apply(ctx, visitor, action)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrUnknownPage),
				errors.Is(err, models.ErrUnknownMode),
				errors.Is(err, navigation.ErrLightboxIndex):
				http.NotFound(w, r)
			case ctx.Err() != nil:
				// Client went away mid-fade; nothing is saved.
				slog.Debug("transition abandoned", "path", r.URL.Path, "error", err)
			default:
				slog.Error("navigation action failed", "path", r.URL.Path, "error", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		// Save on a context that outlives a client disconnect after settling.
		err = s.save(context.WithoutCancel(ctx), visitor)
		if err == nil || attempt == maxActAttempts {
			if err != nil {
				slog.Warn("visitor session save kept losing races", "path", r.URL.Path, "attempts", attempt)
			}
			break
		}
		fresh, lerr := s.sessions.Load(ctx, visitor.ID)
		if lerr != nil || fresh == nil {
			slog.Warn("visitor session reload failed", "error", lerr)
			break
		}
		*visitor = *fresh
	}

	if !render.IsHTMX(r) {
		http.Redirect(w, r, visitor.State.Page.Path(), http.StatusSeeOther)
		return
	}
	if scrolled {
		w.Header().Set("HX-Trigger", scrollEvent)
	}
	s.render(w, r, visitor.State, http.StatusOK, nil)
}

// apply restores a controller from visitor, runs action, waits for any
// transition to settle and stores the resulting state in visitor. It
// reports whether the viewport scrolled.
func (s *Site) apply(ctx context.Context, visitor *session.Data, action func(c *navigation.Controller) error) (bool, error) {
	var scrolled atomic.Bool
	c := s.controller(visitor.State, func() { scrolled.Store(true) })
	defer c.Close()

	if err := action(c); err != nil {
		return false, err
	}
	if err := c.Settled(ctx); err != nil {
		return false, err
	}
	visitor.State = c.Snapshot()
	return scrolled.Load(), nil
}
