// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package session provides Valkey-backed visitor sessions. A visitor is
// identified by a cookie; their navigation state (page, property mode,
// lightbox, booking modal) is stored as JSON in Valkey with a TTL.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"coffeebloom/internal/navigation"
)

const (
	// CookieName is the name of the visitor cookie sent to the browser.
	CookieName = "cbe_visitor"

	// DefaultTTL is how long an idle visitor session lives in Valkey.
	DefaultTTL = 7 * 24 * time.Hour

	// keyPrefix namespaces visitor keys in Valkey.
	keyPrefix = "visitor:"

	// idLength is the byte length of the random session ID (32 bytes = 64 hex chars).
	idLength = 32
)

// ErrConflict is returned by Update when the stored session changed since
// data was loaded.
var ErrConflict = errors.New("session changed concurrently")

// Data is the session payload stored in Valkey.
type Data struct {
	ID    string           `json:"-"`
	State navigation.State `json:"state"`
	// Version increments on every Update.
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store manages visitor session lifecycle in Valkey.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	secure bool
}

// NewStore creates a session store backed by the given Valkey client.
// When secure is true, cookies are marked Secure (HTTPS-only).
func NewStore(client *redis.Client, secure bool) *Store {
	return &Store{
		client: client,
		ttl:    DefaultTTL,
		secure: secure,
	}
}

// Create stores a new session for data, sets the visitor cookie and
// returns the session ID. data.ID is set only once the session is stored.
func (s *Store) Create(ctx context.Context, w http.ResponseWriter, data *Data) (string, error) {
	id, err := generateID()
	if err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}

	now := time.Now()
	data.CreatedAt = now
	data.UpdatedAt = now

	if err := s.put(ctx, id, data); err != nil {
		return "", err
	}
	data.ID = id

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	})

	return id, nil
}

// Get retrieves the visitor's session using the ID in the request cookie.
// Returns nil, nil when there is no cookie or the session has expired.
func (s *Store) Get(ctx context.Context, r *http.Request) (*Data, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}
	return s.Load(ctx, cookie.Value)
}

// Load retrieves a session by ID. Returns nil, nil when it has expired.
func (s *Store) Load(ctx context.Context, id string) (*Data, error) {
	payload, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}

	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("session unmarshal: %w", err)
	}
	data.ID = id

	return &data, nil
}

// Update replaces the stored state of an existing session and resets its
// TTL. It fails with ErrConflict when another request saved the session
// after data was loaded; data is left unchanged in that case. An expired
// session is written back as is.
func (s *Store) Update(ctx context.Context, data *Data) error {
	if data.ID == "" {
		return fmt.Errorf("session update: no session id")
	}
	key := keyPrefix + data.ID

	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return fmt.Errorf("session get: %w", err)
		default:
			var stored Data
			if err := json.Unmarshal(current, &stored); err != nil {
				return fmt.Errorf("session unmarshal: %w", err)
			}
			if stored.Version != data.Version {
				return ErrConflict
			}
		}

		next := *data
		next.Version++
		next.UpdatedAt = time.Now()
		payload, err := json.Marshal(&next)
		if err != nil {
			return fmt.Errorf("session marshal: %w", err)
		}
		if _, err := tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, key, payload, s.ttl)
			return nil
		}); err != nil {
			return err
		}
		*data = next
		return nil
	}, key)

	switch {
	case errors.Is(err, redis.TxFailedErr):
		return ErrConflict
	case errors.Is(err, ErrConflict):
		return err
	case err != nil:
		return fmt.Errorf("session store: %w", err)
	}
	return nil
}

func (s *Store) put(ctx context.Context, id string, data *Data) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("session marshal: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+id, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("session store: %w", err)
	}
	return nil
}

// generateID creates a cryptographically random session identifier.
func generateID() (string, error) {
	b := make([]byte, idLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
