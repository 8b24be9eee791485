// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"unicode/utf8"

	"coffeebloom/internal/inquiry"
)

// Length limits for booking form input. Presence is checked by the
// inquiry package; these only bound what ends up in a deep link.
const (
	maxNameLen  = 120
	maxPhoneLen = 32
	maxDateLen  = 32
	maxGuestLen = 2
	maxModeLen  = 8
)

// validateLengths returns the first length violation, or "".
func validateLengths(f inquiry.Form) string {
	switch {
	case utf8.RuneCountInString(f.Name) > maxNameLen:
		return "Name is too long (max 120 characters)."
	case utf8.RuneCountInString(f.Phone) > maxPhoneLen:
		return "Phone number is too long (max 32 characters)."
	case utf8.RuneCountInString(f.CheckIn) > maxDateLen, utf8.RuneCountInString(f.CheckOut) > maxDateLen:
		return "Dates are too long (max 32 characters)."
	case utf8.RuneCountInString(f.Guests) > maxGuestLen:
		return "Guest count is invalid."
	case utf8.RuneCountInString(string(f.Property)) > maxModeLen:
		return "Property is invalid."
	}
	return ""
}
