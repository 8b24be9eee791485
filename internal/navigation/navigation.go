// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package navigation owns a visitor's presentation state: which page is
// shown, which property mode is selected, whether content is faded in,
// the open lightbox image and the booking modal. Page and mode changes run
// a fade-out, swap, fade-in sequence with a fixed delay in the middle.
//
// Every scheduled swap carries a generation token. Requesting another
// transition while one is pending stops the old timer and folds the new
// change into the pending target, so the final state reflects all requests
// in order and a late timer can never apply a stale change.
package navigation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"coffeebloom/internal/inquiry"
	"coffeebloom/internal/models"
)

// DefaultTransitionDelay is how long content stays faded out during a swap.
const DefaultTransitionDelay = 400 * time.Millisecond

// ErrLightboxIndex is returned when a lightbox index is outside the gallery.
var ErrLightboxIndex = errors.New("lightbox index out of range")

// Transition kinds reported to the transition hook.
const (
	KindNavigate = "navigate"
	KindMode     = "mode"
)

// State is a snapshot of everything the page renderers need.
type State struct {
	Page        models.PageID `json:"page"`
	Mode        models.Mode   `json:"mode"`
	Loaded      bool          `json:"loaded"`
	Lightbox    *int          `json:"lightbox,omitempty"`
	BookingOpen bool          `json:"booking_open"`
	Form        *inquiry.Form `json:"form,omitempty"`
}

// Initial is the state of a first visit before the page has mounted.
func Initial() State {
	return State{Page: models.PageHome, Mode: models.DefaultMode}
}

// LightboxIndex returns the open lightbox index, if any.
func (s State) LightboxIndex() (int, bool) {
	if s.Lightbox == nil {
		return 0, false
	}
	return *s.Lightbox, true
}

func (s State) clone() State {
	out := s
	if s.Lightbox != nil {
		k := *s.Lightbox
		out.Lightbox = &k
	}
	if s.Form != nil {
		f := *s.Form
		out.Form = &f
	}
	return out
}

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. f must not run synchronously inside
// AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Viewport is told to jump to the top after every completed transition.
type Viewport interface {
	ScrollToTop()
}

// ViewportFunc adapts a function to Viewport.
type ViewportFunc func()

// ScrollToTop calls f.
func (f ViewportFunc) ScrollToTop() { f() }

type target struct {
	page models.PageID
	mode models.Mode
}

type pending struct {
	target target
	gen    uint64
	timer  Timer
}

// Controller is the single writer of a visitor's State. Renderers read
// snapshots; user actions go through its methods.
type Controller struct {
	mu      sync.Mutex
	state   State
	pending *pending
	gen     uint64
	idle    chan struct{}
	closed  bool

	sched       Scheduler
	delay       time.Duration
	viewport    Viewport
	gallerySize func(models.Mode) int
	hook        func(kind string)
}

// Option configures a Controller.
type Option func(*Controller)

// WithScheduler replaces the wall-clock scheduler.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.sched = s }
}

// WithDelay overrides DefaultTransitionDelay.
func WithDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.delay = d
		}
	}
}

// WithViewport sets the scroll target reset after transitions.
func WithViewport(v Viewport) Option {
	return func(c *Controller) { c.viewport = v }
}

// WithGallery enables lightbox bounds checks using the gallery size of
// each mode.
func WithGallery(size func(models.Mode) int) Option {
	return func(c *Controller) { c.gallerySize = size }
}

// WithTransitionHook is called with KindNavigate or KindMode whenever a
// transition is scheduled.
func WithTransitionHook(fn func(kind string)) Option {
	return func(c *Controller) { c.hook = fn }
}

// New returns a controller in the Initial state. Call Mount once the
// first render is done.
func New(opts ...Option) *Controller {
	return newController(Initial(), opts)
}

// Restore returns a controller resuming a previously saved state. Saved
// states are always settled, so the result is loaded. Invalid page or
// mode values are replaced with the defaults.
func Restore(s State, opts ...Option) *Controller {
	s = s.clone()
	if !s.Page.Valid() {
		s.Page = models.PageHome
	}
	if !s.Mode.Valid() {
		s.Mode = models.DefaultMode
		s.Lightbox = nil
	}
	switch {
	case !s.BookingOpen:
		s.Form = nil
	case s.Form == nil:
		f := inquiry.NewForm(s.Mode)
		s.Form = &f
	}
	s.Loaded = true
	return newController(s, opts)
}

func newController(s State, opts []Option) *Controller {
	c := &Controller{
		state: s,
		sched: realScheduler{},
		delay: DefaultTransitionDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Mount marks the first render as complete.
func (c *Controller) Mount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		c.state.Loaded = true
	}
}

// Navigate fades out, switches to page after the transition delay,
// scrolls to the top and fades back in.
func (c *Controller) Navigate(page models.PageID) error {
	if !page.Valid() {
		return fmt.Errorf("navigate: %w: %q", models.ErrUnknownPage, page)
	}
	c.schedule(KindNavigate, func(t *target) bool {
		t.page = page
		return true
	})
	return nil
}

// SwitchMode runs the same fade sequence swapping the property mode. It
// is a no-op, returning false, when m is already the mode being shown or
// the mode a pending transition is heading to.
func (c *Controller) SwitchMode(m models.Mode) (bool, error) {
	if !m.Valid() {
		return false, fmt.Errorf("switch mode: %w: %q", models.ErrUnknownMode, m)
	}
	changed := c.schedule(KindMode, func(t *target) bool {
		if t.mode == m {
			return false
		}
		t.mode = m
		return true
	})
	return changed, nil
}

// schedule applies mutate to the pending target (or the current state when
// nothing is pending) and restarts the transition timer. It does nothing
// when mutate reports no change.
func (c *Controller) schedule(kind string, mutate func(*target) bool) bool {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}

	t := target{page: c.state.Page, mode: c.state.Mode}
	if c.pending != nil {
		t = c.pending.target
	}
	if !mutate(&t) {
		c.mu.Unlock()
		return false
	}
	if c.pending != nil {
		c.pending.timer.Stop()
	}

	c.gen++
	gen := c.gen
	c.state.Loaded = false
	if c.idle == nil {
		c.idle = make(chan struct{})
	}
	p := &pending{target: t, gen: gen}
	c.pending = p
	p.timer = c.sched.AfterFunc(c.delay, func() { c.apply(gen) })
	hook := c.hook
	c.mu.Unlock()

	if hook != nil {
		hook(kind)
	}
	return true
}

// apply performs the swap for generation gen, unless a newer transition
// or Close has invalidated it.
func (c *Controller) apply(gen uint64) {
	c.mu.Lock()
	if c.closed || c.pending == nil || c.pending.gen != gen {
		c.mu.Unlock()
		return
	}

	t := c.pending.target
	c.state.Page = t.page
	if t.mode != c.state.Mode {
		c.state.Mode = t.mode
		// The open image belongs to the old property's gallery.
		c.state.Lightbox = nil
	}
	c.state.Loaded = true
	c.pending = nil
	idle := c.idle
	c.idle = nil
	vp := c.viewport
	c.mu.Unlock()

	if vp != nil {
		vp.ScrollToTop()
	}
	if idle != nil {
		close(idle)
	}
}

// Pending reports whether a transition is waiting for its timer.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}

// Settled blocks until no transition is pending or ctx is done.
func (c *Controller) Settled(ctx context.Context) error {
	c.mu.Lock()
	idle := c.idle
	c.mu.Unlock()
	if idle == nil {
		return nil
	}
	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close cancels any pending transition. Later timer callbacks are ignored
// and waiters in Settled are released.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.pending != nil {
		c.pending.timer.Stop()
		c.pending = nil
	}
	if c.idle != nil {
		close(c.idle)
		c.idle = nil
	}
}

// OpenLightbox shows gallery image k of the current property.
func (c *Controller) OpenLightbox(k int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gallerySize != nil {
		if n := c.gallerySize(c.state.Mode); k < 0 || k >= n {
			return fmt.Errorf("%w: %d of %d", ErrLightboxIndex, k, n)
		}
	}
	c.state.Lightbox = &k
	return nil
}

// CloseLightbox hides the lightbox.
func (c *Controller) CloseLightbox() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Lightbox = nil
}

// OpenBooking shows the booking modal. A closed-to-open transition starts
// a fresh form preselected for the current mode.
func (c *Controller) OpenBooking() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.BookingOpen {
		return
	}
	f := inquiry.NewForm(c.state.Mode)
	c.state.BookingOpen = true
	c.state.Form = &f
}

// CloseBooking hides the booking modal and discards the form.
func (c *Controller) CloseBooking() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.BookingOpen = false
	c.state.Form = nil
}

// SubmitBooking validates f and hands its deep link to opener. An
// incomplete form keeps the modal open with the entered values; otherwise
// the modal closes whether or not the hand-off succeeded.
func (c *Controller) SubmitBooking(ctx context.Context, opener inquiry.Opener, number string, f inquiry.Form) (string, error) {
	link, err := inquiry.Dispatch(ctx, opener, number, f)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		kept := f
		c.state.BookingOpen = true
		c.state.Form = &kept
		return "", err
	}
	c.state.BookingOpen = false
	c.state.Form = nil
	return link, nil
}
