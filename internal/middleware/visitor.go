// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"coffeebloom/internal/navigation"
	"coffeebloom/internal/session"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// VisitorKey is the context key for the visitor session.
	VisitorKey contextKey = "visitor"
	csrfKey    contextKey = "csrf"
)

// LoadVisitor loads the visitor's session from Valkey, starting a new one
// on first visit, and stores it in the request context. A Valkey failure
// degrades to an unsaved in-memory session so the page still renders.
func LoadVisitor(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, err := store.Get(r.Context(), r)
			if err != nil {
				slog.Warn("visitor session load failed", "error", err)
			}
			if data == nil {
				data = &session.Data{State: navigation.Initial()}
				if _, err := store.Create(r.Context(), w, data); err != nil {
					slog.Warn("visitor session create failed", "error", err)
				}
			}
			ctx := context.WithValue(r.Context(), VisitorKey, data)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// VisitorFromCtx returns the visitor session, or nil outside LoadVisitor.
func VisitorFromCtx(ctx context.Context) *session.Data {
	data, _ := ctx.Value(VisitorKey).(*session.Data)
	return data
}
