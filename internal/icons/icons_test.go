// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package icons

import (
	"strings"
	"testing"

	"coffeebloom/internal/catalog"
)

func render(t *testing.T, gl Glyph) string {
	t.Helper()
	var b strings.Builder
	if err := gl.Node().Render(&b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func TestResolveKnownName(t *testing.T) {
	gl := Resolve("Waves", "#2C241B")
	if gl.Name != Waves {
		t.Errorf("Name = %q, want Waves", gl.Name)
	}
	if gl.Size != DefaultSize || gl.StrokeWidth != DefaultStrokeWidth {
		t.Errorf("defaults not applied: %+v", gl)
	}

	out := render(t, gl)
	if !strings.Contains(out, `stroke="#2C241B"`) {
		t.Errorf("colour missing from %s", out)
	}
	if !strings.Contains(out, `stroke-width="1.2"`) {
		t.Errorf("stroke width missing from %s", out)
	}
	if !strings.Contains(out, "icon-waves") {
		t.Errorf("class missing from %s", out)
	}
}

func TestResolveUnknownNameFallsBack(t *testing.T) {
	gl := Resolve("NotARealIcon", "red")
	if gl.Name != Default {
		t.Fatalf("Name = %q, want default %q", gl.Name, Default)
	}
	if gl.Color != "red" {
		t.Errorf("Color = %q, want red", gl.Color)
	}
	if out := render(t, gl); !strings.Contains(out, "icon-checkcircle") {
		t.Errorf("fallback glyph not rendered: %s", out)
	}
}

func TestResolveOptions(t *testing.T) {
	gl := Resolve("Menu", "", Size(32), StrokeWidth(1.5))
	if gl.Size != 32 || gl.StrokeWidth != 1.5 {
		t.Errorf("options not applied: %+v", gl)
	}
	out := render(t, gl)
	if !strings.Contains(out, `width="32"`) || !strings.Contains(out, `stroke="currentColor"`) {
		t.Errorf("unexpected svg: %s", out)
	}

	// Non-positive values keep the defaults.
	gl = Resolve("Menu", "", Size(0), StrokeWidth(-1))
	if gl.Size != DefaultSize || gl.StrokeWidth != DefaultStrokeWidth {
		t.Errorf("invalid options should be ignored: %+v", gl)
	}
}

func TestEveryNameHasShape(t *testing.T) {
	for n, markup := range shapes {
		if markup == "" {
			t.Errorf("glyph %q has no shape", n)
		}
	}
}

func TestCatalogIconsAreKnown(t *testing.T) {
	c := catalog.MustLoad()

	check := func(where, name string) {
		if _, ok := Lookup(name); !ok {
			t.Errorf("%s uses unknown icon %q", where, name)
		}
	}
	for mode, p := range c.Properties {
		for _, a := range p.Amenities {
			check(string(mode)+" amenity", a.Icon)
		}
		for _, ti := range p.TravelInfo {
			check(string(mode)+" travel info", ti.Icon)
		}
	}
	for _, e := range c.Experiences {
		check("experience "+e.Title, e.Icon)
	}
	for _, p := range c.Pillars {
		check("pillar "+p.Title, p.Icon)
	}
}
