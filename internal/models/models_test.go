// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "VILLA", want: ModeVilla},
		{in: "villa", want: ModeVilla},
		{in: " View ", want: ModeView},
		{in: "", wantErr: true},
		{in: "cabin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownMode) {
					t.Fatalf("ParseMode(%q) error = %v, want ErrUnknownMode", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestModeLabel(t *testing.T) {
	if got := ModeVilla.Label(); got != "The Villa" {
		t.Errorf("ModeVilla.Label() = %q", got)
	}
	if got := ModeView.Label(); got != "The View" {
		t.Errorf("ModeView.Label() = %q", got)
	}
	if ModeVilla.Slug() != "villa" || ModeView.Slug() != "view" {
		t.Error("unexpected mode slugs")
	}
}

func TestParsePageID(t *testing.T) {
	for _, l := range Pages() {
		got, err := ParsePageID(string(l.ID))
		if err != nil {
			t.Fatalf("ParsePageID(%q): %v", l.ID, err)
		}
		if got != l.ID {
			t.Errorf("ParsePageID(%q) = %q", l.ID, got)
		}
	}

	if _, err := ParsePageID("admin"); !errors.Is(err, ErrUnknownPage) {
		t.Errorf("ParsePageID(admin) error = %v, want ErrUnknownPage", err)
	}
}

func TestPageIDPath(t *testing.T) {
	if PageHome.Path() != "/" {
		t.Errorf("home path = %q", PageHome.Path())
	}
	if PageContact.Path() != "/contact" {
		t.Errorf("contact path = %q", PageContact.Path())
	}
	if PageSustainability.Label() != "Our Earth" {
		t.Errorf("sustainability label = %q", PageSustainability.Label())
	}
}

func TestPagesReturnsCopy(t *testing.T) {
	p := Pages()
	p[0].Label = "changed"
	if Pages()[0].Label != "Home" {
		t.Error("Pages() exposed its backing array")
	}
}

func TestPropertyShortName(t *testing.T) {
	p := &Property{Name: "The Villa"}
	if got := p.ShortName(); got != "Villa" {
		t.Errorf("ShortName() = %q, want Villa", got)
	}
	p.Name = "Estate"
	if got := p.ShortName(); got != "Estate" {
		t.Errorf("ShortName() = %q, want Estate", got)
	}
}

func TestPropertyGalleryImage(t *testing.T) {
	p := &Property{Gallery: []string{"a", "b"}}
	if p.GalleryImage(1) != "b" {
		t.Error("GalleryImage(1) should be b")
	}
	if p.GalleryImage(2) != "" || p.GalleryImage(-1) != "" {
		t.Error("out of range index should return empty string")
	}
}
