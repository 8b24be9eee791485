// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"coffeebloom/internal/metrics"
)

func TestLogger(t *testing.T) {
	t.Run("passes through status", func(t *testing.T) {
		var called bool
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusNotFound)
		})

		rr := httptest.NewRecorder()
		Logger(inner).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		if !called {
			t.Error("next handler should have been called")
		}
		if rr.Code != http.StatusNotFound {
			t.Errorf("status: got %d, want 404", rr.Code)
		}
	})

	t.Run("write without WriteHeader", func(t *testing.T) {
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("hello"))
		})

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/navigate/gallery", nil)
		req.Header.Set("HX-Request", "true")
		Logger(inner).ServeHTTP(rr, req)

		if rr.Code != http.StatusOK || rr.Body.String() != "hello" {
			t.Errorf("got %d %q", rr.Code, rr.Body.String())
		}
	})
}

func TestResponseWriter(t *testing.T) {
	t.Run("first WriteHeader wins", func(t *testing.T) {
		rw := &responseWriter{ResponseWriter: httptest.NewRecorder(), statusCode: http.StatusOK}
		rw.WriteHeader(http.StatusNotFound)
		rw.WriteHeader(http.StatusInternalServerError)
		if rw.statusCode != http.StatusNotFound || !rw.written {
			t.Errorf("statusCode: got %d, want 404", rw.statusCode)
		}
	})

	t.Run("Write defaults to 200", func(t *testing.T) {
		rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}
		n, err := rw.Write([]byte("test"))
		if err != nil || n != 4 {
			t.Fatalf("Write: %d, %v", n, err)
		}
		if rw.statusCode != http.StatusOK {
			t.Errorf("statusCode: got %d, want 200", rw.statusCode)
		}
	})

	t.Run("Unwrap", func(t *testing.T) {
		rr := httptest.NewRecorder()
		rw := &responseWriter{ResponseWriter: rr}
		if rw.Unwrap() != rr {
			t.Error("Unwrap should return the wrapped writer")
		}
	})
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Post("/lightbox/{index}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	series := metrics.HTTPRequests.WithLabelValues("/lightbox/{index}", "POST", "204")
	before := testutil.ToFloat64(series)

	for _, path := range []string{"/lightbox/1", "/lightbox/4"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, path, strings.NewReader("")))
		if rr.Code != http.StatusNoContent {
			t.Fatalf("%s: status %d", path, rr.Code)
		}
	}

	if got := testutil.ToFloat64(series) - before; got != 2 {
		t.Errorf("expected 2 observations on the route series, got %v", got)
	}
}
