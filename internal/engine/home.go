// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package engine

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"coffeebloom/internal/icons"
	"coffeebloom/internal/models"
	"coffeebloom/internal/slug"
)

// homeAmenities is how many amenities the home page lists.
const homeAmenities = 4

// HomePage renders the hero, the property story and the philosophy block.
func HomePage(v View) g.Node {
	p := v.Property
	return g.Group([]g.Node{
		Header(
			Class("hero"),
			Img(Class("hero-image"), Src(p.HeroImage), Alt(p.Name)),
			Div(
				Class("hero-copy"),
				Span(Class("eyebrow"), g.Text(p.Location)),
				H1(Class("hero-title"), g.Text(p.ShortName())),
				P(Class("hero-tagline"), g.Text(p.Tagline)),
				P(Class("hero-price"), g.Text(p.Price)),
			),
			ModeSwitch(v, "hero-switch"),
		),
		Section(
			ID("architecture"),
			Class("story"),
			Div(
				Class("story-text"),
				Span(Class("eyebrow"), g.Text("01. Architecture")),
				H2(g.Text("Refined "), Em(g.Text("Solitude"))),
				Div(Class("long-desc"), g.Raw(longCopy.html(p.LongDesc))),
				Ul(
					Class("amenities"),
					g.Map(firstAmenities(p.Amenities), func(a models.Amenity) g.Node {
						return Li(
							Class("amenity"),
							icons.Icon(a.Icon, v.Theme.Primary),
							Span(g.Text(a.Label)),
						)
					}),
				),
				g.If(len(p.RoomTypes) > 0, Ul(
					Class("room-types"),
					g.Map(p.RoomTypes, func(rt models.RoomType) g.Node {
						return Li(Strong(g.Text(strconv.Itoa(rt.Count))), g.Text(" "+rt.Name))
					}),
				)),
				g.If(len(p.RoomFeatures) > 0, Ul(
					Class("room-features"),
					g.Map(p.RoomFeatures, func(f string) g.Node { return Li(g.Text(f)) }),
				)),
				postButton(v, "/booking/open", "reserve", g.Text("Reserve Experience")),
			),
			Div(
				Class("story-images"),
				g.If(p.GalleryImage(1) != "", Img(Src(p.GalleryImage(1)), Alt("Estate View"))),
				g.If(p.GalleryImage(2) != "", Img(Src(p.GalleryImage(2)), Alt("Interior"))),
			),
		),
		g.If(len(p.Highlights) > 0, Section(
			Class("highlights"),
			g.Map(p.Highlights, func(h models.Highlight) g.Node {
				return Figure(
					ID(slug.Anchor("highlight", h.Title)),
					Img(Src(h.Image), Alt(h.Title), g.Attr("loading", "lazy")),
					FigCaption(g.Text(h.Title)),
				)
			}),
		)),
		Section(
			Class("philosophy"),
			g.If(p.GalleryImage(4) != "", Img(Class("philosophy-bg"), Src(p.GalleryImage(4)), Alt(""))),
			Span(Class("eyebrow"), g.Text("Our Philosophy")),
			icons.Icon(string(icons.Quote), "currentColor", icons.Size(32)),
			BlockQuote(g.Text(`"`+p.Philosophy.Quote+`"`)),
			P(g.Text(p.Philosophy.Description)),
			Div(Class("philosophy-title"), g.Text(p.Philosophy.Title)),
		),
		Section(
			Class("dwellings"),
			Span(Class("eyebrow"), g.Text("Our Dwellings")),
			ModeSwitch(v, "dwellings-switch"),
			socialLinks(v.Contact),
		),
	})
}

func firstAmenities(all []models.Amenity) []models.Amenity {
	if len(all) > homeAmenities {
		return all[:homeAmenities]
	}
	return all
}
