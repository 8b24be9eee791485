// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package inquiry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/browser"
	"github.com/skip2/go-qrcode"
)

// Opener hands a deep link to whatever can open it: the OS browser, the
// visitor's browser via a redirect, or a test recorder.
type Opener interface {
	Open(ctx context.Context, link string) error
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(ctx context.Context, link string) error

// Open calls f.
func (f OpenerFunc) Open(ctx context.Context, link string) error { return f(ctx, link) }

// BrowserOpener opens links in the local default browser.
type BrowserOpener struct{}

// Open launches the system browser on link.
func (BrowserOpener) Open(_ context.Context, link string) error {
	if err := browser.OpenURL(link); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}

// Dispatch validates the form, builds its booking link and hands it to
// opener. Delivery is fire-and-forget: an opener failure is logged and the
// link is still returned, so callers close the modal either way.
func Dispatch(ctx context.Context, opener Opener, number string, f Form) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}

	link := BookingLink(number, f)
	ref := uuid.NewString()

	if err := opener.Open(ctx, link); err != nil {
		slog.Warn("inquiry hand-off failed", "ref", ref, "property", f.Property, "error", err)
		return link, nil
	}

	slog.Info("inquiry dispatched", "ref", ref, "property", f.Property, "guests", f.Normalize().Guests)
	return link, nil
}

// QRCode encodes a deep link as a PNG of size x size pixels.
func QRCode(link string, size int) ([]byte, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
