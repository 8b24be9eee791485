// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render writes site pages. It supports full-page and HTMX partial
// rendering, detecting the request type via the HX-Request header.
package render

import (
	"bytes"
	"log/slog"
	"net/http"

	g "maragu.dev/gomponents"

	"coffeebloom/internal/engine"
	"coffeebloom/internal/middleware"
)

// Variants of a rendered page. Used in page cache keys.
const (
	VariantFull    = "full"
	VariantPartial = "partial"
)

// Variant reports which rendering a request expects.
func Variant(r *http.Request) string {
	if IsHTMX(r) {
		return VariantPartial
	}
	return VariantFull
}

// Bytes renders the view for r: the application region for HTMX requests,
// the complete document otherwise. The CSRF token is taken from the
// request context when the view does not carry one.
func Bytes(r *http.Request, v engine.View) ([]byte, error) {
	if v.CSRFToken == "" {
		v.CSRFToken = middleware.CSRFTokenFromCtx(r.Context())
	}
	var node g.Node
	if IsHTMX(r) {
		node = engine.App(v)
	} else {
		node = engine.Document(v)
	}
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Page renders the view and writes it with the given status.
func Page(w http.ResponseWriter, r *http.Request, status int, v engine.View) {
	body, err := Bytes(r, v)
	if err != nil {
		slog.Error("render page failed", "page", v.State.Page, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	HTML(w, status, body)
}

// HTML writes already rendered markup.
func HTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// IsHTMX returns true if the request was made by HTMX (has HX-Request header).
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
