// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug builds URL-fragment identifiers from display titles.
package slug

import (
	"regexp"
	"strings"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, space or hyphen.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Edakkal Caves & Heritage" -> "edakkal-caves-heritage"
func Generate(s string) string {
	result := strings.ToLower(s)
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.Join(strings.Fields(result), "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// Anchor returns an element id for a titled section, e.g.
// Anchor("experience", "Tholpetty Safari") -> "experience-tholpetty-safari".
// An empty title yields the prefix alone.
func Anchor(prefix, title string) string {
	s := Generate(title)
	if s == "" {
		return prefix
	}
	if prefix == "" {
		return s
	}
	return prefix + "-" + s
}
