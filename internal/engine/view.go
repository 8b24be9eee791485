// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package engine renders the public site. Every renderer is a pure
// function of a View; nothing here keeps state between requests.
package engine

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"coffeebloom/internal/catalog"
	"coffeebloom/internal/inquiry"
	"coffeebloom/internal/models"
	"coffeebloom/internal/navigation"
)

// SiteName is the brand shown in titles and the footer.
const SiteName = "Coffee Bloom Estates"

// AppID is the element id HTMX swaps on every transition.
const AppID = "app"

// View is everything a renderer needs for one response.
type View struct {
	State       navigation.State
	Property    *models.Property
	Theme       models.ThemeColors
	Contact     models.ContactInfo
	Experiences []models.Experience
	Pillars     []models.Pillar
	CSRFToken   string
	// FormErrors is set when a booking submission failed validation.
	FormErrors *inquiry.ValidationError
}

// NewView resolves the property and theme for the state's mode.
func NewView(cat *catalog.Catalog, s navigation.State, csrfToken string) View {
	return View{
		State:       s,
		Property:    cat.Property(s.Mode),
		Theme:       cat.Theme(s.Mode),
		Contact:     cat.Contact,
		Experiences: cat.Experiences,
		Pillars:     cat.Pillars,
		CSRFToken:   csrfToken,
	}
}

// Title is the document title for the current page.
func (v View) Title() string {
	if v.State.Page == models.PageHome {
		return fmt.Sprintf("%s | %s", v.Property.Name, SiteName)
	}
	return fmt.Sprintf("%s | %s | %s", v.State.Page.Label(), v.Property.Name, SiteName)
}

// Document renders a complete HTML page.
func Document(v View) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(v.Title())),
				Meta(Name("description"), Content(v.Property.ShortDesc)),
				Meta(g.Attr("property", "og:title"), Content(v.Title())),
				Meta(g.Attr("property", "og:image"), Content(v.Property.HeroImage)),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),
				Script(Src("/static/js/htmx.min.js"), g.Attr("defer")),
				Script(Src("/static/js/site.js"), g.Attr("defer")),
			),
			Body(
				g.Attr("hx-headers", fmt.Sprintf(`{"X-CSRF-Token": %q}`, v.CSRFToken)),
				App(v),
			),
		),
	})
}

// App renders the swappable application region: navbar, page content,
// footer and any open overlay. HTMX requests receive only this node.
func App(v View) g.Node {
	loaded := "false"
	if v.State.Loaded {
		loaded = "true"
	}
	return Div(
		ID(AppID),
		Class("app mode-"+v.State.Mode.Slug()),
		Data("page", string(v.State.Page)),
		Data("mode", string(v.State.Mode)),
		Data("loaded", loaded),
		Style(themeStyle(v.Theme)),
		Navbar(v),
		Main(
			ID("content"),
			Class("fade"),
			Page(v),
		),
		g.If(v.State.Page != models.PageHome, SiteFooter(v)),
		Lightbox(v),
		BookingModal(v),
	)
}

// Page renders the main content for the current page.
func Page(v View) g.Node {
	switch v.State.Page {
	case models.PageExperience:
		return ExperiencePage(v)
	case models.PageGallery:
		return GalleryPage(v)
	case models.PageSustainability:
		return SustainabilityPage(v)
	case models.PageContact:
		return ContactPage(v)
	default:
		return HomePage(v)
	}
}

func themeStyle(t models.ThemeColors) string {
	return fmt.Sprintf(
		"--primary:%s;--accent:%s;--background:%s;--text-dark:%s;--text-light:%s;--icon-accent:%s;color:%s;background-color:%s",
		t.Primary, t.Accent, t.Background, t.TextDark, t.TextLight, t.IconAccent, t.TextDark, t.Background,
	)
}

// postButton renders a one-button form so every control works without
// JavaScript; with HTMX loaded the form is submitted in place.
func postButton(v View, action, class string, children ...g.Node) g.Node {
	return g.El("form",
		Method("post"),
		Action(action),
		Class("inline-form"),
		g.Attr("hx-post", action),
		g.Attr("hx-target", "#"+AppID),
		g.Attr("hx-swap", "outerHTML"),
		csrfField(v.CSRFToken),
		Button(Type("submit"), Class(class), g.Group(children)),
	)
}

// csrfField carries the token for plain form posts; HTMX sends the header.
func csrfField(token string) g.Node {
	return Input(Type("hidden"), Name("csrf_token"), Value(token))
}
