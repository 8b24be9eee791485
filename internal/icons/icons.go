// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package icons resolves symbolic icon names from the content catalog to
// inline SVG glyphs. The set of names is closed; anything outside it
// resolves to the Default glyph instead of failing.
package icons

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
)

// Name is one of the known glyphs.
type Name string

const (
	Waves         Name = "Waves"
	Bed           Name = "Bed"
	Bath          Name = "Bath"
	Zap           Name = "Zap"
	Utensils      Name = "Utensils"
	ShieldCheck   Name = "ShieldCheck"
	Wifi          Name = "Wifi"
	Flame         Name = "Flame"
	Mountain      Name = "Mountain"
	CheckCircle   Name = "CheckCircle"
	MapIcon       Name = "Map"
	Coffee        Name = "Coffee"
	ParkingCircle Name = "ParkingCircle"
	CloudRain     Name = "CloudRain"
	Compass       Name = "Compass"
	Trees         Name = "Trees"
	Bird          Name = "Bird"
	Globe         Name = "Globe"
	MapPin        Name = "MapPin"
	Phone         Name = "Phone"
	Mail          Name = "Mail"
	Plane         Name = "Plane"
	Car           Name = "Car"
	Train         Name = "Train"
	Instagram     Name = "Instagram"
	Youtube       Name = "Youtube"
	Quote         Name = "Quote"
	Close         Name = "X"
	Menu          Name = "Menu"
)

// Default is the glyph used for names outside the known set.
const Default = CheckCircle

const (
	DefaultSize        = 20
	DefaultStrokeWidth = 1.2
)

// shapes holds the inner SVG markup of each glyph on a 24x24 grid.
var shapes = map[Name]string{
	Waves:         `<path d="M2 6c.6.5 1.2 1 2.5 1C7 7 7 5 9.5 5c2.6 0 2.4 2 5 2 2.5 0 2.5-2 5-2 1.3 0 1.9.5 2.5 1"/><path d="M2 12c.6.5 1.2 1 2.5 1 2.5 0 2.5-2 5-2 2.6 0 2.4 2 5 2 2.5 0 2.5-2 5-2 1.3 0 1.9.5 2.5 1"/><path d="M2 18c.6.5 1.2 1 2.5 1 2.5 0 2.5-2 5-2 2.6 0 2.4 2 5 2 2.5 0 2.5-2 5-2 1.3 0 1.9.5 2.5 1"/>`,
	Bed:           `<path d="M2 4v16"/><path d="M2 8h18a2 2 0 0 1 2 2v10"/><path d="M2 17h20"/><path d="M6 8v9"/>`,
	Bath:          `<path d="M9 6 6.5 3.5a1.5 1.5 0 0 0-1-.5C4.683 3 4 3.683 4 4.5V17a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2v-5"/><line x1="10" x2="8" y1="5" y2="7"/><line x1="2" x2="22" y1="12" y2="12"/><line x1="7" x2="7" y1="19" y2="21"/><line x1="17" x2="17" y1="19" y2="21"/>`,
	Zap:           `<polygon points="13 2 3 14 12 14 11 22 21 10 12 10 13 2"/>`,
	Utensils:      `<path d="M3 2v7c0 1.1.9 2 2 2h4a2 2 0 0 0 2-2V2"/><path d="M7 2v20"/><path d="M21 15V2a5 5 0 0 0-5 5v6c0 1.1.9 2 2 2h3Zm0 0v7"/>`,
	ShieldCheck:   `<path d="M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10"/><path d="m9 12 2 2 4-4"/>`,
	Wifi:          `<path d="M5 13a10 10 0 0 1 14 0"/><path d="M8.5 16.5a5 5 0 0 1 7 0"/><path d="M2 8.82a15 15 0 0 1 20 0"/><line x1="12" x2="12.01" y1="20" y2="20"/>`,
	Flame:         `<path d="M8.5 14.5A2.5 2.5 0 0 0 11 12c0-1.38-.5-2-1-3-1.072-2.143-.224-4.054 2-6 .5 2.5 2 4.9 4 6.5 2 1.6 3 3.5 3 5.5a7 7 0 1 1-14 0c0-1.153.433-2.294 1-3a2.5 2.5 0 0 0 2.5 2.5z"/>`,
	Mountain:      `<path d="m8 3 4 8 5-5 5 15H2L8 3z"/>`,
	CheckCircle:   `<path d="M22 11.08V12a10 10 0 1 1-5.93-9.14"/><path d="m9 11 3 3L22 4"/>`,
	MapIcon:       `<polygon points="3 6 9 3 15 6 21 3 21 18 15 21 9 18 3 21"/><line x1="9" x2="9" y1="3" y2="18"/><line x1="15" x2="15" y1="6" y2="21"/>`,
	Coffee:        `<path d="M17 8h1a4 4 0 1 1 0 8h-1"/><path d="M3 8h14v9a4 4 0 0 1-4 4H7a4 4 0 0 1-4-4Z"/><line x1="6" x2="6" y1="2" y2="4"/><line x1="10" x2="10" y1="2" y2="4"/><line x1="14" x2="14" y1="2" y2="4"/>`,
	ParkingCircle: `<circle cx="12" cy="12" r="10"/><path d="M9 17V7h4a3 3 0 0 1 0 6H9"/>`,
	CloudRain:     `<path d="M4 14.899A7 7 0 1 1 15.71 8h1.79a4.5 4.5 0 0 1 2.5 8.242"/><path d="M16 14v6"/><path d="M8 14v6"/><path d="M12 16v6"/>`,
	Compass:       `<circle cx="12" cy="12" r="10"/><polygon points="16.24 7.76 14.12 14.12 7.76 16.24 9.88 9.88 16.24 7.76"/>`,
	Trees:         `<path d="M10 10v.2A3 3 0 0 1 8.9 16H5a3 3 0 0 1-1-5.8V10a3 3 0 0 1 6 0Z"/><path d="M7 16v6"/><path d="M13 19v3"/><path d="M12 19h8.3a1 1 0 0 0 .7-1.7L18 14h.3a1 1 0 0 0 .7-1.7L16 9h.2a1 1 0 0 0 .8-1.7L13 3l-1.4 1.5"/>`,
	Bird:          `<path d="M16 7h.01"/><path d="M3.4 18H12a8 8 0 0 0 8-8V7a4 4 0 0 0-7.28-2.3L2 20"/><path d="m20 7 2 .5-2 .5"/><path d="M10 18v3"/><path d="M14 17.75V21"/><path d="M7 18a6 6 0 0 0 3.84-10.61"/>`,
	Globe:         `<circle cx="12" cy="12" r="10"/><path d="M12 2a14.5 14.5 0 0 0 0 20 14.5 14.5 0 0 0 0-20"/><path d="M2 12h20"/>`,
	MapPin:        `<path d="M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0Z"/><circle cx="12" cy="10" r="3"/>`,
	Phone:         `<path d="M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6 19.79 19.79 0 0 1-3.07-8.67A2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72 12.84 12.84 0 0 0 .7 2.81 2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45 12.84 12.84 0 0 0 2.81.7A2 2 0 0 1 22 16.92z"/>`,
	Mail:          `<rect width="20" height="16" x="2" y="4" rx="2"/><path d="m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"/>`,
	Plane:         `<path d="M17.8 19.2 16 11l3.5-3.5C21 6 21.5 4 21 3c-1-.5-3 0-4.5 1.5L13 8 4.8 6.2c-.5-.1-.9.1-1.1.5l-.3.5c-.2.5-.1 1 .3 1.3L9 12l-2 3H4l-1 1 3 2 2 3 1-1v-3l3-2 3.5 5.3c.3.4.8.5 1.3.3l.5-.2c.4-.3.6-.7.5-1.2z"/>`,
	Car:           `<path d="M19 17h2c.6 0 1-.4 1-1v-3c0-.9-.7-1.7-1.5-1.9C18.7 10.6 16 10 16 10s-1.3-1.4-2.2-2.3c-.5-.4-1.1-.7-1.8-.7H5c-.6 0-1.1.4-1.4.9l-1.4 2.9A3.7 3.7 0 0 0 2 12v4c0 .6.4 1 1 1h2"/><circle cx="7" cy="17" r="2"/><path d="M9 17h6"/><circle cx="17" cy="17" r="2"/>`,
	Train:         `<rect width="16" height="16" x="4" y="3" rx="2"/><path d="M4 11h16"/><path d="M12 3v8"/><path d="m8 19-2 3"/><path d="m18 22-2-3"/>`,
	Instagram:     `<rect width="20" height="20" x="2" y="2" rx="5" ry="5"/><path d="M16 11.37A4 4 0 1 1 12.63 8 4 4 0 0 1 16 11.37z"/><line x1="17.5" x2="17.51" y1="6.5" y2="6.5"/>`,
	Youtube:       `<path d="M2.5 17a24.12 24.12 0 0 1 0-10 2 2 0 0 1 1.4-1.4 49.56 49.56 0 0 1 16.2 0A2 2 0 0 1 21.5 7a24.12 24.12 0 0 1 0 10 2 2 0 0 1-1.4 1.4 49.55 49.55 0 0 1-16.2 0A2 2 0 0 1 2.5 17"/><path d="m10 15 5-3-5-3z"/>`,
	Quote:         `<path d="M3 21c3 0 7-1 7-8V5c0-1.25-.756-2.017-2-2H4c-1.25 0-2 .75-2 1.972V11c0 1.25.75 2 2 2 1 0 1 0 1 1v1c0 1-1 2-2 2s-1 .008-1 1.031V20c0 1 0 1 1 1z"/><path d="M15 21c3 0 7-1 7-8V5c0-1.25-.757-2.017-2-2h-4c-1.25 0-2 .75-2 1.972V11c0 1.25.75 2 2 2h.75c0 2.25.25 4-2.75 4v3c0 1 0 1 1 1z"/>`,
	Close:         `<path d="M18 6 6 18"/><path d="m6 6 12 12"/>`,
	Menu:          `<line x1="4" x2="20" y1="12" y2="12"/><line x1="4" x2="20" y1="6" y2="6"/><line x1="4" x2="20" y1="18" y2="18"/>`,
}

// Lookup reports whether s names a known glyph.
func Lookup(s string) (Name, bool) {
	n := Name(s)
	_, ok := shapes[n]
	return n, ok
}

// Glyph is a resolved icon with its rendering parameters.
type Glyph struct {
	Name        Name
	Color       string
	Size        int
	StrokeWidth float64
}

// Option adjusts a Glyph during resolution.
type Option func(*Glyph)

// Size overrides the rendered width and height in pixels.
func Size(px int) Option {
	return func(gl *Glyph) {
		if px > 0 {
			gl.Size = px
		}
	}
}

// StrokeWidth overrides the stroke width.
func StrokeWidth(w float64) Option {
	return func(gl *Glyph) {
		if w > 0 {
			gl.StrokeWidth = w
		}
	}
}

// Resolve maps an icon name to a glyph. It never fails: unknown names
// produce the Default glyph with the requested colour and size.
func Resolve(name, color string, opts ...Option) Glyph {
	n, ok := Lookup(name)
	if !ok {
		n = Default
	}
	gl := Glyph{
		Name:        n,
		Color:       color,
		Size:        DefaultSize,
		StrokeWidth: DefaultStrokeWidth,
	}
	for _, opt := range opts {
		opt(&gl)
	}
	return gl
}

// Icon is shorthand for Resolve(name, color, opts...).Node().
func Icon(name, color string, opts ...Option) g.Node {
	return Resolve(name, color, opts...).Node()
}

// Node renders the glyph as an inline SVG element.
func (gl Glyph) Node() g.Node {
	size := strconv.Itoa(gl.Size)
	color := gl.Color
	if color == "" {
		color = "currentColor"
	}
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("width", size),
		g.Attr("height", size),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", color),
		g.Attr("stroke-width", strconv.FormatFloat(gl.StrokeWidth, 'f', -1, 64)),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("class", "icon icon-"+strings.ToLower(string(gl.Name))),
		g.Attr("aria-hidden", "true"),
		g.Raw(shapes[gl.Name]),
	)
}
