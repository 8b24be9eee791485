// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package engine

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"coffeebloom/internal/icons"
	"coffeebloom/internal/inquiry"
	"coffeebloom/internal/models"
)

// Lightbox renders the full-screen image overlay, or nothing when closed.
func Lightbox(v View) g.Node {
	i, ok := v.State.LightboxIndex()
	if !ok {
		return nil
	}
	img := v.Property.GalleryImage(i)
	if img == "" {
		return nil
	}
	return Div(
		ID("lightbox"),
		Class("lightbox"),
		g.Attr("role", "dialog"),
		g.Attr("aria-modal", "true"),
		postButton(v, "/lightbox/close", "lightbox-close",
			g.Attr("aria-label", "Close"),
			icons.Icon(string(icons.Close), "currentColor", icons.Size(40)),
		),
		Img(Class("lightbox-image"), Src(img), Alt(v.Property.Name)),
	)
}

// BookingModal renders the inquiry form, or nothing when closed. Field
// errors from a failed submission are marked on their inputs.
func BookingModal(v View) g.Node {
	if !v.State.BookingOpen {
		return nil
	}
	f := inquiry.NewForm(v.State.Mode)
	if v.State.Form != nil {
		f = *v.State.Form
	}
	return Div(
		ID("booking"),
		Class("modal"),
		g.Attr("role", "dialog"),
		g.Attr("aria-modal", "true"),
		postButton(v, "/booking/close", "modal-backdrop", g.Attr("aria-label", "Close")),
		Div(
			Class("modal-panel"),
			postButton(v, "/booking/close", "modal-close",
				g.Attr("aria-label", "Close"),
				icons.Icon(string(icons.Close), "currentColor", icons.Size(24)),
			),
			H3(Style("color:"+v.Theme.Primary), g.Text("Reserve Your Stay")),
			P(Class("modal-lead"), g.Text("Inquire about availability for "+v.Property.Name+" via WhatsApp.")),
			g.If(v.FormErrors != nil, P(Class("form-error"), g.Attr("role", "alert"),
				g.Text(formErrorText(v.FormErrors)))),
			g.El("form",
				Method("post"),
				Action("/booking"),
				// Without JavaScript the deep link opens in its own tab.
				Target("_blank"),
				Class("booking-form"),
				g.Attr("hx-post", "/booking"),
				g.Attr("hx-target", "#"+AppID),
				g.Attr("hx-swap", "outerHTML"),
				csrfField(v.CSRFToken),
				Input(Type("hidden"), Name("property"), Value(string(f.Property))),
				field(v, "name", "Your Name", Input(Type("text"), Name("name"), ID("name"), Placeholder("Full Name"), Value(f.Name), Required())),
				Div(
					Class("form-row"),
					field(v, "check_in", "Check-in", Input(Type("date"), Name("check_in"), ID("check_in"), Value(f.CheckIn), Required())),
					field(v, "check_out", "Check-out", Input(Type("date"), Name("check_out"), ID("check_out"), Value(f.CheckOut), Required())),
				),
				Div(
					Class("form-row"),
					field(v, "guests", "Guests", Select(
						Name("guests"), ID("guests"),
						g.Map(inquiry.GuestOptions(), func(n string) g.Node {
							return Option(Value(n), g.If(n == f.Guests, Selected()), g.Text(n))
						}),
					)),
					field(v, "phone", "Phone", Input(Type("tel"), Name("phone"), ID("phone"), Placeholder("+91"), Value(f.Phone), Required())),
				),
				Button(Type("submit"), Class("submit"), Style("background-color:"+v.Theme.Primary), g.Text("Send to WhatsApp")),
			),
		),
	)
}

func field(v View, name, label string, input g.Node) g.Node {
	class := "field"
	if v.FormErrors != nil && v.FormErrors.Has(name) {
		class += " field-error"
	}
	return Div(
		Class(class),
		Label(g.Attr("for", name), g.Text(label)),
		input,
	)
}

// formErrorText explains a failed submission. An invalid property is
// called out on its own since it has no visible input to mark.
func formErrorText(ve *inquiry.ValidationError) string {
	if ve == nil {
		return ""
	}
	if ve.Has("property") {
		choices := make([]string, 0, len(models.Modes()))
		for _, m := range models.Modes() {
			choices = append(choices, m.Label())
		}
		msg := "Please choose a property: " + strings.Join(choices, " or ") + "."
		if len(ve.Fields) > 1 {
			msg += " Every other field is required too."
		}
		return msg
	}
	return "Please complete every field before sending."
}
