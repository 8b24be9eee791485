// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package inquiry

import (
	"net/url"
	"strings"

	"coffeebloom/internal/models"
)

// BaseURL is the WhatsApp click-to-chat endpoint.
const BaseURL = "https://wa.me/"

// Field labels and order are read by the concierge team; keep them stable.
const (
	greeting      = "Hi Coffee Bloom, I would like to reserve a stay."
	labelName     = "Guest Name"
	labelPhone    = "Contact Number"
	labelProperty = "Property"
	labelCheckIn  = "Check-in"
	labelCheckOut = "Check-out"
	labelGuests   = "Guests"
)

// Message renders the booking inquiry text.
func Message(f Form) string {
	f = f.Normalize()

	var b strings.Builder
	b.WriteString(greeting)
	b.WriteString("\n\n")
	line := func(label, value string) {
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("\n")
	}
	line(labelName, f.Name)
	line(labelPhone, f.Phone)
	line(labelProperty, propertyLabel(f.Property))
	line(labelCheckIn, f.CheckIn)
	line(labelCheckOut, f.CheckOut)
	line(labelGuests, f.Guests)
	return strings.TrimSuffix(b.String(), "\n")
}

// GeneralMessage is the short free-text inquiry about one property.
func GeneralMessage(propertyName string) string {
	return "Hi Coffee Bloom, I would like to know more about " + propertyName + "."
}

// BookingLink returns the deep link that opens WhatsApp with the booking
// message addressed to number.
func BookingLink(number string, f Form) string {
	return link(number, Message(f))
}

// GeneralLink returns the deep link for a general inquiry about a property.
func GeneralLink(number, propertyName string) string {
	return link(number, GeneralMessage(propertyName))
}

func link(number, text string) string {
	return BaseURL + Digits(number) + "?text=" + Escape(text)
}

// Escape percent-encodes text for the deep link query. Spaces become %20
// rather than "+", matching what the messaging app expects.
func Escape(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// Digits strips everything but digits from a phone number, turning
// "+91 89211 42220" into "918921142220".
func Digits(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func propertyLabel(m models.Mode) string {
	if !m.Valid() {
		return string(m)
	}
	return m.Label()
}
