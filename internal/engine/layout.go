// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package engine

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"coffeebloom/internal/icons"
	"coffeebloom/internal/models"
)

// Navbar renders the brand mark, page links, mode switch and the inquiry
// button. Page links are real anchors so a direct load works without HTMX.
func Navbar(v View) g.Node {
	class := "navbar"
	if v.State.Page != models.PageHome {
		class += " navbar-dark"
	}
	return Nav(
		Class(class),
		Div(
			Class("navbar-inner"),
			navLink(models.PageHome, "brand",
				Span(Class("brand-mark"), g.Text("C.B.E")),
				Span(Class("brand-sub"), g.Text("Wayanad Luxury")),
			),
			Ul(
				Class("nav-links"),
				g.Map(models.Pages(), func(l models.NavLink) g.Node {
					class := "nav-link"
					if l.ID == v.State.Page {
						class += " active"
					}
					return Li(navLink(l.ID, class, g.Text(l.Label)))
				}),
			),
			ModeSwitch(v, "mode-switch"),
			postButton(v, "/booking/open", "nav-inquiry", g.Text("Start Inquiry")),
			Details(
				Class("mobile-menu"),
				Summary(g.Attr("aria-label", "Menu"), icons.Icon(string(icons.Menu), "", icons.Size(24), icons.StrokeWidth(1.5))),
				Ul(g.Map(models.Pages(), func(l models.NavLink) g.Node {
					return Li(navLink(l.ID, "mobile-link", g.Text(l.Label)))
				})),
			),
		),
	)
}

// navLink renders an anchor that HTMX upgrades into a timed transition.
func navLink(page models.PageID, class string, children ...g.Node) g.Node {
	return A(
		Href(page.Path()),
		Class(class),
		g.Attr("hx-post", "/navigate/"+string(page)),
		g.Attr("hx-target", "#"+AppID),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-push-url", page.Path()),
		g.Group(children),
	)
}

// ModeSwitch renders one button per property; the active one is marked.
func ModeSwitch(v View, class string) g.Node {
	return Div(
		Class(class),
		g.Map(models.Modes(), func(m models.Mode) g.Node {
			bc := "mode-button"
			if m == v.State.Mode {
				bc += " active"
			}
			return postButton(v, "/mode/"+m.Slug(), bc, g.Text(m.Label()))
		}),
	)
}

// SiteFooter is shown on every page except home.
func SiteFooter(v View) g.Node {
	return Footer(
		Class("site-footer"),
		H2(Class("footer-brand"), g.Text(SiteName)),
		Div(
			Class("footer-links"),
			navLink(models.PageHome, "footer-link", g.Text(models.PageHome.Label())),
			navLink(models.PageContact, "footer-link", g.Text(models.PageContact.Label())),
		),
		P(Class("footer-copy"), g.Raw("&copy; 2025 C.B.E Wayanad")),
	)
}
