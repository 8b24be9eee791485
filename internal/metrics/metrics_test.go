// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"coffeebloom/internal/metrics"
)

func TestRegistryAndHandler(t *testing.T) {
	reg := metrics.NewRegistry()

	metrics.ObserveHTTP("/contact", "GET", 200, 12*time.Millisecond)
	metrics.ObserveTransition("navigate")
	metrics.ObserveInquiry("VILLA", "dispatched")
	metrics.ObserveCache("page", "hit")

	rr := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	for _, name := range []string{
		"coffeebloom_http_requests_total",
		"coffeebloom_transitions_total",
		"coffeebloom_inquiries_total",
		"coffeebloom_cache_events_total",
	} {
		if !strings.Contains(out, name) {
			t.Errorf("expected %s in output", name)
		}
	}
}
