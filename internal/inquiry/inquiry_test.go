// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package inquiry

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"coffeebloom/internal/models"
)

func sampleForm() Form {
	return Form{
		Name:     "A",
		CheckIn:  "2025-12-01",
		CheckOut: "2025-12-05",
		Guests:   "2",
		Phone:    "P",
		Property: models.ModeVilla,
	}
}

func TestMessageFieldOrder(t *testing.T) {
	msg := Message(sampleForm())

	want := "Hi Coffee Bloom, I would like to reserve a stay.\n\n" +
		"Guest Name: A\n" +
		"Contact Number: P\n" +
		"Property: The Villa\n" +
		"Check-in: 2025-12-01\n" +
		"Check-out: 2025-12-05\n" +
		"Guests: 2"
	if msg != want {
		t.Fatalf("Message() =\n%s\nwant\n%s", msg, want)
	}

	// Every value appears, in order.
	last := -1
	for _, v := range []string{"A", "P", "The Villa", "2025-12-01", "2025-12-05", "Guests: 2"} {
		idx := strings.Index(msg[last+1:], v)
		if idx < 0 {
			t.Fatalf("%q missing or out of order in %q", v, msg)
		}
		last += idx + 1
	}
}

func TestMessageViewLabel(t *testing.T) {
	f := sampleForm()
	f.Property = models.ModeView
	if !strings.Contains(Message(f), "Property: The View") {
		t.Errorf("expected The View label in %q", Message(f))
	}
}

func TestBookingLinkRoundTrip(t *testing.T) {
	f := sampleForm()
	link := BookingLink("+91 89211 42220", f)

	if !strings.HasPrefix(link, "https://wa.me/918921142220?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}
	if strings.Contains(link, "+") {
		t.Errorf("spaces should be encoded as %%20, got %s", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	if got := u.Query().Get("text"); got != Message(f) {
		t.Errorf("decoded text = %q, want %q", got, Message(f))
	}
}

func TestEscapePreservesReservedCharacters(t *testing.T) {
	text := "Tom & Jerry + 1 = 2? #yes"
	u, err := url.Parse("https://wa.me/1?text=" + Escape(text))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := u.Query().Get("text"); got != text {
		t.Errorf("round trip = %q, want %q", got, text)
	}
}

func TestGeneralLink(t *testing.T) {
	link := GeneralLink("918921142220", "The View")
	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := "Hi Coffee Bloom, I would like to know more about The View."
	if got := u.Query().Get("text"); got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
	if u.Host != "wa.me" || u.Path != "/918921142220" {
		t.Errorf("unexpected target %s%s", u.Host, u.Path)
	}
}

func TestValidate(t *testing.T) {
	if err := sampleForm().Validate(); err != nil {
		t.Fatalf("complete form: %v", err)
	}

	f := sampleForm()
	f.Name = "   "
	f.Phone = ""
	err := f.Validate()
	if !errors.Is(err, ErrIncomplete) {
		t.Fatalf("error = %v, want ErrIncomplete", err)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error %T is not a *ValidationError", err)
	}
	if !ve.Has("name") || !ve.Has("phone") {
		t.Errorf("fields = %v, want name and phone", ve.Fields)
	}
	if ve.Has("check_in") {
		t.Errorf("check_in should be valid, fields = %v", ve.Fields)
	}
}

func TestValidateRejectsUnknownProperty(t *testing.T) {
	f := sampleForm()
	f.Property = "cabin"
	var ve *ValidationError
	if err := f.Validate(); !errors.As(err, &ve) || !ve.Has("property") {
		t.Fatalf("error = %v, want property failure", err)
	}
}

func TestValidateAcceptsLowercaseProperty(t *testing.T) {
	f := sampleForm()
	f.Property = "view"
	if err := f.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestNewFormDefaults(t *testing.T) {
	f := NewForm(models.ModeView)
	if f.Guests != DefaultGuests {
		t.Errorf("Guests = %q, want %q", f.Guests, DefaultGuests)
	}
	if f.Property != models.ModeView {
		t.Errorf("Property = %q, want VIEW", f.Property)
	}
	if len(GuestOptions()) != MaxGuests || GuestOptions()[0] != "1" {
		t.Errorf("GuestOptions() = %v", GuestOptions())
	}
}

func TestDispatch(t *testing.T) {
	var opened string
	opener := OpenerFunc(func(_ context.Context, link string) error {
		opened = link
		return nil
	})

	link, err := Dispatch(context.Background(), opener, "918921142220", sampleForm())
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if opened != link {
		t.Errorf("opener got %q, Dispatch returned %q", opened, link)
	}
}

func TestDispatchIgnoresOpenerFailure(t *testing.T) {
	opener := OpenerFunc(func(context.Context, string) error {
		return errors.New("no browser")
	})
	link, err := Dispatch(context.Background(), opener, "1", sampleForm())
	if err != nil {
		t.Fatalf("opener failure should not surface: %v", err)
	}
	if link == "" {
		t.Error("link should still be returned")
	}
}

func TestDispatchIncompleteDoesNotOpen(t *testing.T) {
	called := false
	opener := OpenerFunc(func(context.Context, string) error {
		called = true
		return nil
	})
	f := sampleForm()
	f.CheckOut = ""
	if _, err := Dispatch(context.Background(), opener, "1", f); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("error = %v, want ErrIncomplete", err)
	}
	if called {
		t.Error("opener must not be called for an incomplete form")
	}
}

func TestQRCode(t *testing.T) {
	png, err := QRCode(GeneralLink("1", "The Villa"), 256)
	if err != nil {
		t.Fatalf("QRCode: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}
