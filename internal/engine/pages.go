// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package engine

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"coffeebloom/internal/icons"
	"coffeebloom/internal/models"
	"coffeebloom/internal/slug"
)

const sustainabilityImage = "https://images.unsplash.com/photo-1444858291040-58f756a3bdd6?auto=format&fit=crop&q=80&w=1200"

func pageIntro(eyebrow, title, emphasis, lead string) g.Node {
	return Div(
		Class("page-intro"),
		Span(Class("eyebrow"), g.Text(eyebrow)),
		H2(g.Text(title+" "), Em(g.Text(emphasis))),
		g.If(lead != "", P(Class("lead"), g.Text(lead))),
	)
}

// ExperiencePage lists regional experiences, then the on-site ones of the
// current property.
func ExperiencePage(v View) g.Node {
	return Div(
		Class("page page-experience"),
		pageIntro("The Wayanad Way", "Beyond the", "Balcony",
			"Curated local experiences designed to immerse you in the heartbeat of the Western Ghats."),
		Div(
			Class("experiences"),
			g.Map(v.Experiences, func(e models.Experience) g.Node {
				return Article(
					ID(slug.Anchor("experience", e.Title)),
					Class("experience"),
					Div(Class("experience-copy"), H3(g.Text(e.Title)), P(g.Text(e.Description))),
					Div(
						Class("experience-media"),
						Img(Src(e.Image), Alt(e.Title), g.Attr("loading", "lazy")),
						Span(Class("experience-icon"), icons.Icon(e.Icon, v.Theme.Primary)),
					),
				)
			}),
		),
		g.If(len(v.Property.OnSiteExperiences) > 0, Section(
			Class("on-site"),
			H3(g.Text("At "+v.Property.Name)),
			Ul(g.Map(v.Property.OnSiteExperiences, func(s string) g.Node {
				return Li(icons.Icon(string(icons.Coffee), v.Theme.IconAccent, icons.Size(16)), g.Text(s))
			})),
		)),
	)
}

// GalleryPage renders the current property's images; each opens the lightbox.
func GalleryPage(v View) g.Node {
	gallery := make([]g.Node, 0, len(v.Property.Gallery))
	for i, img := range v.Property.Gallery {
		gallery = append(gallery, postButton(v, "/lightbox/"+strconv.Itoa(i), "gallery-item",
			Img(Src(img), Alt(v.Property.Name+" "+strconv.Itoa(i+1)), g.Attr("loading", "lazy")),
			Span(Class("gallery-hint"), g.Text("Expand View")),
		))
	}
	return Div(
		Class("page page-gallery"),
		pageIntro("Visual Story", "Wayanad", "Captured", ""),
		Div(Class("gallery-grid"), g.Group(gallery)),
	)
}

// SustainabilityPage renders the conservation pillars.
func SustainabilityPage(v View) g.Node {
	return Div(
		Class("page page-sustainability"),
		pageIntro("Our Earth", "Conservation", "& Community",
			"As stewards of the Nilgiri Biosphere, we believe luxury should leave no trace other than inspiration. Our commitment is to the land, the wildlife, and the people of Wayanad."),
		Div(
			Class("pillars"),
			g.Map(v.Pillars, func(p models.Pillar) g.Node {
				return Div(
					ID(slug.Anchor("pillar", p.Title)),
					Class("pillar"),
					Span(Class("pillar-icon"), icons.Icon(p.Icon, "currentColor")),
					H3(g.Text(p.Title)),
					P(g.Text(p.Desc)),
				)
			}),
		),
		Img(Class("pillars-image"), Src(sustainabilityImage), Alt(""), g.Attr("loading", "lazy")),
	)
}

// ContactPage renders the concierge details verbatim, the property's
// location and a general WhatsApp inquiry link with its QR code.
func ContactPage(v View) g.Node {
	c := v.Contact
	p := v.Property
	return Div(
		Class("page page-contact"),
		pageIntro("Concierge", "Let's craft your", "Journey", ""),
		Div(
			Class("contact-grid"),
			Div(
				Class("reach-us"),
				H4(g.Text("Reach Us")),
				P(Class("contact-phone"), icons.Icon(string(icons.Phone), v.Theme.IconAccent), A(Href("tel:"+telDigits(c.Phone)), g.Text(c.Phone))),
				P(Class("contact-email"), icons.Icon(string(icons.Mail), v.Theme.IconAccent), A(Href("mailto:"+c.Email), g.Text(c.Email))),
				H4(g.Text("Location")),
				P(Class("contact-address"), g.Text(c.Address)),
			),
			Div(
				Class("property-location"),
				H4(g.Text(p.Name)),
				P(icons.Icon(string(icons.MapPin), v.Theme.IconAccent), g.Text(p.Address)),
				A(Href(p.MapLink), Target("_blank"), Rel("noopener"), Class("map-link"),
					icons.Icon(string(icons.MapIcon), v.Theme.IconAccent), g.Text("Open in Maps")),
				Ul(
					Class("travel-info"),
					g.Map(p.TravelInfo, func(t models.TravelInfo) g.Node {
						return Li(icons.Icon(t.Icon, v.Theme.IconAccent), g.Text(t.Text))
					}),
				),
			),
			Div(
				Class("general-inquiry"),
				H4(g.Text("Message the Concierge")),
				A(Href("/inquiry"), Target("_blank"), Rel("noopener"), Class("whatsapp-link"),
					g.Text("Ask about "+p.Name+" on WhatsApp")),
				Img(Class("inquiry-qr"), Src("/inquiry/qr.png"), Alt("WhatsApp inquiry QR code"), Width("160"), Height("160")),
			),
		),
		socialLinks(c),
	)
}

func socialLinks(c models.ContactInfo) g.Node {
	return Div(
		Class("social"),
		g.If(c.Instagram != "", A(Href("https://instagram.com/"+strings.TrimPrefix(c.Instagram, "@")), Target("_blank"), Rel("noopener"),
			g.Attr("aria-label", "Instagram"), icons.Icon(string(icons.Instagram), "", icons.Size(20)))),
		g.If(c.Youtube != "", A(Href("https://youtube.com/"+c.Youtube), Target("_blank"), Rel("noopener"),
			g.Attr("aria-label", "YouTube"), icons.Icon(string(icons.Youtube), "", icons.Size(20)))),
	)
}

// telDigits keeps the leading plus and the digits of a display number.
func telDigits(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		if (r >= '0' && r <= '9') || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
