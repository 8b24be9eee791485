// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for the site
// handlers. Valkey is replaced by miniredis.
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"coffeebloom/internal/cache"
	"coffeebloom/internal/catalog"
	"coffeebloom/internal/middleware"
	"coffeebloom/internal/session"
)

const (
	testNumber = "918921142220"
	testToken  = "test-csrf-token"
)

type testEnv struct {
	MR      *miniredis.Miniredis
	Catalog *catalog.Catalog
	Site    *Site
	Handler http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWith(t, Options{TransitionDelay: time.Millisecond})
}

// newTestEnvWith builds a test site with opts; the WhatsApp number is
// always testNumber.
func newTestEnvWith(t *testing.T, opts Options) *testEnv {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cat := catalog.MustLoad()
	opts.WhatsAppNumber = testNumber
	site := NewSite(cat, session.NewStore(client, false), cache.NewPageCache(client, time.Minute), opts)

	r := chi.NewRouter()
	r.Use(middleware.NewCSRF(false))
	r.Use(middleware.LoadVisitor(session.NewStore(client, false)))
	r.Get("/", site.Home)
	r.Get("/{page}", site.Page)
	r.Post("/navigate/{page}", site.Navigate)
	r.Post("/mode/{mode}", site.SwitchMode)
	r.Post("/lightbox/close", site.CloseLightbox)
	r.Post("/lightbox/{index}", site.OpenLightbox)
	r.Post("/booking/open", site.OpenBooking)
	r.Post("/booking/close", site.CloseBooking)
	r.Post("/booking", site.SubmitBooking)
	r.Get("/inquiry", site.GeneralInquiry)
	r.Get("/inquiry/qr.png", site.InquiryQR)
	r.Get("/api/state", site.State)

	return &testEnv{MR: mr, Catalog: cat, Site: site, Handler: r}
}

// request describes one call made on behalf of a visitor.
type request struct {
	method  string
	path    string
	form    url.Values
	htmx    bool
	noCSRF  bool
	visitor string
	token   string
}

func (e *testEnv) do(t *testing.T, rq request) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if rq.form != nil {
		req = httptest.NewRequest(rq.method, rq.path, strings.NewReader(rq.form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(rq.method, rq.path, nil)
	}
	token := rq.token
	if token == "" {
		token = testToken
	}
	req.AddCookie(&http.Cookie{Name: middleware.CSRFCookieName, Value: token})
	if !rq.noCSRF {
		req.Header.Set(middleware.CSRFHeaderName, token)
	}
	if rq.htmx {
		req.Header.Set("HX-Request", "true")
	}
	if rq.visitor != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: rq.visitor})
	}

	rec := httptest.NewRecorder()
	e.Handler.ServeHTTP(rec, req)
	return rec
}

// newVisitor makes a first visit and returns the visitor cookie value.
func (e *testEnv) newVisitor(t *testing.T) string {
	t.Helper()
	rec := e.do(t, request{method: http.MethodGet, path: "/"})
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			return c.Value
		}
	}
	t.Fatal("first visit did not set a visitor cookie")
	return ""
}

func (e *testEnv) state(t *testing.T, visitor string) stateResponse {
	t.Helper()
	rec := e.do(t, request{method: http.MethodGet, path: "/api/state", visitor: visitor})
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/state: %d", rec.Code)
	}
	var st stateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &st); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	return st
}
